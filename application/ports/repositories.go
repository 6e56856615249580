package ports

import (
	"context"

	"gardenbook/domain/core/entities"
	"gardenbook/domain/core/valueobjects"
)

// GardenRepository defines the interface for garden persistence.
// This is a port in hexagonal architecture - the domain doesn't know about
// the implementation. It mirrors the contract of the backing keyed store:
// get, full-value replace-on-write, remove, and scan.
type GardenRepository interface {
	// FindByID retrieves a garden by its ID. Returns a NotFound error when
	// no record exists, and a StoreRead error when the lookup itself fails.
	FindByID(ctx context.Context, id valueobjects.GardenID) (*entities.Garden, error)

	// Save persists a garden, replacing the full record (create or update).
	// Returns a StoreWrite error on persistence failure.
	Save(ctx context.Context, garden *entities.Garden) error

	// Delete removes a garden from the store
	Delete(ctx context.Context, id valueobjects.GardenID) error

	// FindAll retrieves every garden in the store, in store iteration
	// order. Iteration order is the store's internal key order, not
	// insertion order.
	FindAll(ctx context.Context) ([]*entities.Garden, error)

	// FindByOwner retrieves all gardens owned by the given identity
	FindByOwner(ctx context.Context, owner string) ([]*entities.Garden, error)
}
