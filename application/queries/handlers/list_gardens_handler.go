package handlers

import (
	"context"

	"go.uber.org/zap"

	"gardenbook/application/ports"
	"gardenbook/application/queries"
	"gardenbook/domain/core/entities"
)

// ListGardensHandler handles full and owner-scoped garden listings
type ListGardensHandler struct {
	gardenRepo ports.GardenRepository
	logger     *zap.Logger
}

// NewListGardensHandler creates a new handler instance
func NewListGardensHandler(gardenRepo ports.GardenRepository, logger *zap.Logger) *ListGardensHandler {
	return &ListGardensHandler{gardenRepo: gardenRepo, logger: logger}
}

// Handle executes the list gardens query
func (h *ListGardensHandler) Handle(ctx context.Context, query queries.ListGardensQuery) (queries.ListGardensResult, error) {
	var (
		gardens []*entities.Garden
		err     error
	)
	if query.Owner != "" {
		gardens, err = h.gardenRepo.FindByOwner(ctx, query.Owner)
	} else {
		gardens, err = h.gardenRepo.FindAll(ctx)
	}
	if err != nil {
		return queries.ListGardensResult{}, err
	}

	views := make([]queries.GardenView, 0, len(gardens))
	for _, g := range gardens {
		views = append(views, queries.NewGardenView(g))
	}

	return queries.ListGardensResult{Gardens: views, Total: len(views)}, nil
}
