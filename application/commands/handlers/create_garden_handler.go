package handlers

import (
	"context"

	"go.uber.org/zap"

	"gardenbook/application/commands"
	"gardenbook/application/ports"
	"gardenbook/domain/core/entities"
	"gardenbook/domain/core/valueobjects"
)

// CreateGardenHandler handles garden creation commands
type CreateGardenHandler struct {
	gardenRepo ports.GardenRepository
	publisher  ports.EventPublisher
	clock      ports.Clock
	logger     *zap.Logger
}

// NewCreateGardenHandler creates a new handler instance
func NewCreateGardenHandler(
	gardenRepo ports.GardenRepository,
	publisher ports.EventPublisher,
	clock ports.Clock,
	logger *zap.Logger,
) *CreateGardenHandler {
	return &CreateGardenHandler{
		gardenRepo: gardenRepo,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

// Handle executes the create garden command and returns the created record
func (h *CreateGardenHandler) Handle(ctx context.Context, cmd commands.CreateGardenCommand) (*entities.Garden, error) {
	var garden *entities.Garden
	var err error
	if cmd.GardenID != "" {
		id, idErr := valueobjects.NewGardenIDFromString(cmd.GardenID)
		if idErr != nil {
			return nil, idErr
		}
		garden, err = entities.NewGardenWithID(id, cmd.Owner, cmd.Name, cmd.Location, cmd.Plants, cmd.Image, h.clock())
	} else {
		garden, err = entities.NewGarden(cmd.Owner, cmd.Name, cmd.Location, cmd.Plants, cmd.Image, h.clock())
	}
	if err != nil {
		return nil, err
	}

	if err := h.gardenRepo.Save(ctx, garden); err != nil {
		h.logger.Error("Failed to persist new garden",
			zap.String("gardenID", garden.ID().String()),
			zap.Error(err),
		)
		return nil, err
	}

	h.logger.Info("Garden created",
		zap.String("gardenID", garden.ID().String()),
		zap.String("owner", cmd.Owner),
	)

	publishEvents(ctx, h.publisher, h.logger, garden)

	return garden, nil
}
