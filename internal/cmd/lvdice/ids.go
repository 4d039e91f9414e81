package lvdice

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_ids.go github.com/katalvlaran/lvdice/internal/cmd/lvdice IDGenerator

// IDGenerator names generated plot files.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator implements IDGenerator with random UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator returns the default IDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new UUID string.
func (g *UUIDGenerator) NewID() string {
	return uuid.New().String()
}
