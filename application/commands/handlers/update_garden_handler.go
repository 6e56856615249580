package handlers

import (
	"context"

	"go.uber.org/zap"

	"gardenbook/application/commands"
	"gardenbook/application/ports"
	"gardenbook/domain/core/entities"
	"gardenbook/domain/core/valueobjects"
)

// UpdateGardenHandler handles wholesale garden replacement.
// Note: this path has no ownership gate; any authenticated caller may
// overwrite any garden's content.
type UpdateGardenHandler struct {
	gardenRepo ports.GardenRepository
	publisher  ports.EventPublisher
	clock      ports.Clock
	logger     *zap.Logger
}

// NewUpdateGardenHandler creates a new handler instance
func NewUpdateGardenHandler(
	gardenRepo ports.GardenRepository,
	publisher ports.EventPublisher,
	clock ports.Clock,
	logger *zap.Logger,
) *UpdateGardenHandler {
	return &UpdateGardenHandler{
		gardenRepo: gardenRepo,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

// Handle executes the update garden command and returns the updated record
func (h *UpdateGardenHandler) Handle(ctx context.Context, cmd commands.UpdateGardenCommand) (*entities.Garden, error) {
	id, err := valueobjects.NewGardenIDFromString(cmd.GardenID)
	if err != nil {
		return nil, err
	}

	garden, err := h.gardenRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := garden.Replace(cmd.Name, cmd.Location, cmd.Plants, cmd.Image, h.clock()); err != nil {
		return nil, err
	}

	if err := h.gardenRepo.Save(ctx, garden); err != nil {
		h.logger.Error("Failed to persist updated garden",
			zap.String("gardenID", cmd.GardenID),
			zap.Error(err),
		)
		return nil, err
	}

	publishEvents(ctx, h.publisher, h.logger, garden)

	return garden, nil
}
