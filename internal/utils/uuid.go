package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for gallery images and trace IDs.
// Time-ordered v7 UUIDs are preferred so that gallery rows cluster by
// insertion time.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) New() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}

func (g *UUIDGenerator) Generate() string {
	return g.New().String()
}
