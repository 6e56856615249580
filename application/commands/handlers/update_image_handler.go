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

// UpdateImageHandler handles image replacement commands. This path has
// neither field validation nor an ownership gate.
type UpdateImageHandler struct {
	gardenRepo ports.GardenRepository
	publisher  ports.EventPublisher
	clock      ports.Clock
	logger     *zap.Logger
}

// NewUpdateImageHandler creates a new handler instance
func NewUpdateImageHandler(
	gardenRepo ports.GardenRepository,
	publisher ports.EventPublisher,
	clock ports.Clock,
	logger *zap.Logger,
) *UpdateImageHandler {
	return &UpdateImageHandler{
		gardenRepo: gardenRepo,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

// Handle executes the update image command and returns the updated record
func (h *UpdateImageHandler) Handle(ctx context.Context, cmd commands.UpdateImageCommand) (*entities.Garden, error) {
	id, err := valueobjects.NewGardenIDFromString(cmd.GardenID)
	if err != nil {
		// An unparseable id can only mean the garden does not exist.
		return nil, pkgerrors.NewNotFoundError("garden", cmd.GardenID)
	}

	garden, err := h.gardenRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	garden.SetImage(cmd.Image, h.clock())

	if err := h.gardenRepo.Save(ctx, garden); err != nil {
		h.logger.Error("Failed to persist image update",
			zap.String("gardenID", cmd.GardenID),
			zap.Error(err),
		)
		return nil, err
	}

	publishEvents(ctx, h.publisher, h.logger, garden)

	return garden, nil
}
