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

// AddPlantHandler handles plant addition commands
type AddPlantHandler struct {
	gardenRepo ports.GardenRepository
	publisher  ports.EventPublisher
	clock      ports.Clock
	logger     *zap.Logger
}

// NewAddPlantHandler creates a new handler instance
func NewAddPlantHandler(
	gardenRepo ports.GardenRepository,
	publisher ports.EventPublisher,
	clock ports.Clock,
	logger *zap.Logger,
) *AddPlantHandler {
	return &AddPlantHandler{
		gardenRepo: gardenRepo,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

// Handle executes the add plant command and returns the updated record.
// The duplicate check runs before the ownership check, so a non-owner
// sees a duplicate error rather than an authorization error for a plant
// already in the list.
func (h *AddPlantHandler) Handle(ctx context.Context, cmd commands.AddPlantCommand) (*entities.Garden, error) {
	id, err := valueobjects.NewGardenIDFromString(cmd.GardenID)
	if err != nil {
		return nil, err
	}

	garden, err := h.gardenRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if garden.HasPlant(cmd.Plant) {
		return nil, pkgerrors.NewDuplicateError(cmd.Plant, "garden "+cmd.GardenID)
	}

	if !garden.IsOwnedBy(cmd.Caller) {
		return nil, pkgerrors.NewAuthorizationError("only the owner may add plants")
	}

	if err := garden.AddPlant(cmd.Plant, h.clock()); err != nil {
		return nil, err
	}

	if err := h.gardenRepo.Save(ctx, garden); err != nil {
		h.logger.Error("Failed to persist plant addition",
			zap.String("gardenID", cmd.GardenID),
			zap.String("plant", cmd.Plant),
			zap.Error(err),
		)
		return nil, err
	}

	publishEvents(ctx, h.publisher, h.logger, garden)

	return garden, nil
}
