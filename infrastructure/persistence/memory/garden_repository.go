package memory

import (
	"context"
	"sort"
	"sync"

	"gardenbook/application/ports"
	"gardenbook/domain/core/entities"
	"gardenbook/domain/core/valueobjects"
	pkgerrors "gardenbook/pkg/errors"
)

// GardenRepository is an ordered in-memory implementation of the garden
// store, used by tests and local development. Iteration follows sorted
// key order, mirroring an ordered key-value store rather than insertion
// order.
type GardenRepository struct {
	mu      sync.RWMutex
	records map[string]*entities.Garden

	// Failure injection for store-error paths. When set, the matching
	// operations return that error wrapped as a Store*Error.
	ReadErr  error
	WriteErr error
}

// NewGardenRepository creates an empty in-memory repository
func NewGardenRepository() *GardenRepository {
	return &GardenRepository{
		records: make(map[string]*entities.Garden),
	}
}

var _ ports.GardenRepository = (*GardenRepository)(nil)

// FindByID retrieves a garden by its ID
func (r *GardenRepository) FindByID(ctx context.Context, id valueobjects.GardenID) (*entities.Garden, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.ReadErr != nil {
		return nil, pkgerrors.NewStoreReadError("get", r.ReadErr)
	}

	garden, ok := r.records[id.String()]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("garden", id.String())
	}
	return clone(garden), nil
}

// Save persists a garden, replacing the full record
func (r *GardenRepository) Save(ctx context.Context, garden *entities.Garden) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.WriteErr != nil {
		return pkgerrors.NewStoreWriteError("insert", r.WriteErr)
	}

	r.records[garden.ID().String()] = clone(garden)
	return nil
}

// Delete removes a garden from the store
func (r *GardenRepository) Delete(ctx context.Context, id valueobjects.GardenID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.WriteErr != nil {
		return pkgerrors.NewStoreWriteError("remove", r.WriteErr)
	}

	if _, ok := r.records[id.String()]; !ok {
		return pkgerrors.NewNotFoundError("garden", id.String())
	}
	delete(r.records, id.String())
	return nil
}

// FindAll retrieves every garden, iterating keys in sorted order
func (r *GardenRepository) FindAll(ctx context.Context) ([]*entities.Garden, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.ReadErr != nil {
		return nil, pkgerrors.NewStoreReadError("scan", r.ReadErr)
	}

	keys := make([]string, 0, len(r.records))
	for k := range r.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	gardens := make([]*entities.Garden, 0, len(keys))
	for _, k := range keys {
		gardens = append(gardens, clone(r.records[k]))
	}
	return gardens, nil
}

// FindByOwner retrieves all gardens owned by the given identity
func (r *GardenRepository) FindByOwner(ctx context.Context, owner string) ([]*entities.Garden, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]*entities.Garden, 0, len(all))
	for _, g := range all {
		if g.Owner() == owner {
			owned = append(owned, g)
		}
	}
	return owned, nil
}

// Len reports the number of stored records
func (r *GardenRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// clone snapshots a garden so callers never alias stored state. Each
// write commits the entire record, so reads never observe a partial
// mutation.
func clone(g *entities.Garden) *entities.Garden {
	return entities.ReconstructGarden(
		g.ID(),
		g.Owner(),
		g.Name(),
		g.Location(),
		g.Plants(),
		g.Image(),
		g.CreatedAt(),
		g.UpdatedAt(),
	)
}
