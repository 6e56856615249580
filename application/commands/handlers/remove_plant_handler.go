package handlers

import (
	"context"

	"go.uber.org/zap"

	"gardenbook/application/commands"
	"gardenbook/application/ports"
	"gardenbook/domain/core/entities"
	"gardenbook/domain/core/valueobjects"
	pkgerrors "gardenbook/pkg/errors"
)

// RemovePlantHandler handles plant removal commands
type RemovePlantHandler struct {
	gardenRepo ports.GardenRepository
	publisher  ports.EventPublisher
	clock      ports.Clock
	logger     *zap.Logger
}

// NewRemovePlantHandler creates a new handler instance
func NewRemovePlantHandler(
	gardenRepo ports.GardenRepository,
	publisher ports.EventPublisher,
	clock ports.Clock,
	logger *zap.Logger,
) *RemovePlantHandler {
	return &RemovePlantHandler{
		gardenRepo: gardenRepo,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

// Handle executes the remove plant command and returns the updated record.
// Like AddPlantHandler, the membership check precedes the ownership check.
func (h *RemovePlantHandler) Handle(ctx context.Context, cmd commands.RemovePlantCommand) (*entities.Garden, error) {
	id, err := valueobjects.NewGardenIDFromString(cmd.GardenID)
	if err != nil {
		return nil, err
	}

	garden, err := h.gardenRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !garden.HasPlant(cmd.Plant) {
		return nil, pkgerrors.NewNotFoundInListError(cmd.Plant, "garden "+cmd.GardenID)
	}

	if !garden.IsOwnedBy(cmd.Caller) {
		return nil, pkgerrors.NewAuthorizationError("only the owner may remove plants")
	}

	if err := garden.RemovePlant(cmd.Plant, h.clock()); err != nil {
		return nil, err
	}

	if err := h.gardenRepo.Save(ctx, garden); err != nil {
		h.logger.Error("Failed to persist plant removal",
			zap.String("gardenID", cmd.GardenID),
			zap.String("plant", cmd.Plant),
			zap.Error(err),
		)
		return nil, err
	}

	publishEvents(ctx, h.publisher, h.logger, garden)

	return garden, nil
}
