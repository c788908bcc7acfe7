package service

import "github.com/google/uuid"

// UUIDGenerator allocates random identifiers. Injected rather than called
// inline so tests can pin ids.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() uuid.UUID {
	return uuid.New()
}
