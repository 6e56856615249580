package handlers

import (
	"context"

	"go.uber.org/zap"

	"gardenbook/application/ports"
	"gardenbook/application/queries"
	"gardenbook/domain/core/valueobjects"
)

// GetGardenHandler handles single-garden lookups
type GetGardenHandler struct {
	gardenRepo ports.GardenRepository
	logger     *zap.Logger
}

// NewGetGardenHandler creates a new handler instance
func NewGetGardenHandler(gardenRepo ports.GardenRepository, logger *zap.Logger) *GetGardenHandler {
	return &GetGardenHandler{gardenRepo: gardenRepo, logger: logger}
}

// Handle executes the get garden query
func (h *GetGardenHandler) Handle(ctx context.Context, query queries.GetGardenQuery) (queries.GardenView, error) {
	id, err := valueobjects.NewGardenIDFromString(query.GardenID)
	if err != nil {
		return queries.GardenView{}, err
	}

	garden, err := h.gardenRepo.FindByID(ctx, id)
	if err != nil {
		return queries.GardenView{}, err
	}

	return queries.NewGardenView(garden), nil
}
