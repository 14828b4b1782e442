// Package mock holds gomock doubles for the store, service and adapter interfaces.
//
// Regenerate with go generate after changing an interface.
package mock

//go:generate mockgen -source=../store/interfaces.go -destination=mock_store.go -package=mock -exclude_interfaces=ErrorClassificator
//go:generate mockgen -source=../service/interfaces.go -destination=mock_service.go -package=mock
//go:generate mockgen -source=../adapter/interfaces.go -destination=mock_adapter.go -package=mock
