package handlers

import (
	"context"

	"go.uber.org/zap"

	"gardenbook/application/ports"
	"gardenbook/application/queries"
	"gardenbook/domain/core/valueobjects"
)

// ListPlantsHandler handles plant-list lookups
type ListPlantsHandler struct {
	gardenRepo ports.GardenRepository
	logger     *zap.Logger
}

// NewListPlantsHandler creates a new handler instance
func NewListPlantsHandler(gardenRepo ports.GardenRepository, logger *zap.Logger) *ListPlantsHandler {
	return &ListPlantsHandler{gardenRepo: gardenRepo, logger: logger}
}

// Handle executes the list plants query
func (h *ListPlantsHandler) Handle(ctx context.Context, query queries.ListPlantsQuery) (queries.ListPlantsResult, error) {
	id, err := valueobjects.NewGardenIDFromString(query.GardenID)
	if err != nil {
		return queries.ListPlantsResult{}, err
	}

	garden, err := h.gardenRepo.FindByID(ctx, id)
	if err != nil {
		return queries.ListPlantsResult{}, err
	}

	return queries.ListPlantsResult{
		GardenID: query.GardenID,
		Plants:   garden.Plants(),
	}, nil
}
