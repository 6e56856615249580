package handlers

import (
	"context"

	"go.uber.org/zap"

	"gardenbook/application/commands"
	"gardenbook/application/ports"
	"gardenbook/domain/core/entities"
	"gardenbook/domain/core/valueobjects"
	"gardenbook/domain/events"
	pkgerrors "gardenbook/pkg/errors"
)

// DeleteGardenHandler handles garden deletion commands
type DeleteGardenHandler struct {
	gardenRepo ports.GardenRepository
	publisher  ports.EventPublisher
	clock      ports.Clock
	logger     *zap.Logger
}

// NewDeleteGardenHandler creates a new handler instance
func NewDeleteGardenHandler(
	gardenRepo ports.GardenRepository,
	publisher ports.EventPublisher,
	clock ports.Clock,
	logger *zap.Logger,
) *DeleteGardenHandler {
	return &DeleteGardenHandler{
		gardenRepo: gardenRepo,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

// Handle executes the delete garden command and returns the record as it
// existed immediately before deletion
func (h *DeleteGardenHandler) Handle(ctx context.Context, cmd commands.DeleteGardenCommand) (*entities.Garden, error) {
	id, err := valueobjects.NewGardenIDFromString(cmd.GardenID)
	if err != nil {
		return nil, err
	}

	garden, err := h.gardenRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !garden.IsOwnedBy(cmd.Caller) {
		return nil, pkgerrors.NewAuthorizationError("only the owner may delete a garden")
	}

	if err := h.gardenRepo.Delete(ctx, id); err != nil {
		h.logger.Error("Failed to delete garden",
			zap.String("gardenID", cmd.GardenID),
			zap.Error(err),
		)
		return nil, err
	}

	h.logger.Info("Garden deleted",
		zap.String("gardenID", cmd.GardenID),
		zap.String("owner", garden.Owner()),
	)

	deleted := events.NewGardenDeleted(cmd.GardenID, garden.Owner(), h.clock())
	if err := h.publisher.Publish(ctx, deleted); err != nil {
		h.logger.Warn("Failed to publish deletion event",
			zap.String("gardenID", cmd.GardenID),
			zap.Error(err),
		)
	}

	return garden, nil
}
