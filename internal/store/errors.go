package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrImageNotFound is returned when the requested gallery image does not
	// exist or has already expired.
	ErrImageNotFound = errors.New("gallery image was not found")

	// ErrImageAlreadyExists is returned when an image ID collides with a
	// stored one.
	ErrImageAlreadyExists = errors.New("gallery image already exists")

	// ErrImageNotSaved is returned when an INSERT completes without error but
	// affects no rows.
	ErrImageNotSaved = errors.New("gallery image was not saved")

	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan gallery image row")
)
