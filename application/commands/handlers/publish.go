package handlers

import (
	"context"

	"go.uber.org/zap"

	"gardenbook/application/ports"
	"gardenbook/domain/core/entities"
)

// publishEvents flushes the garden's uncommitted events. Publishing is
// best-effort: the record is already durable, so a publish failure is
// logged and swallowed.
func publishEvents(ctx context.Context, publisher ports.EventPublisher, logger *zap.Logger, garden *entities.Garden) {
	pending := garden.GetUncommittedEvents()
	if len(pending) == 0 {
		return
	}

	if err := publisher.PublishBatch(ctx, pending); err != nil {
		logger.Warn("Failed to publish domain events",
			zap.String("gardenID", garden.ID().String()),
			zap.Int("count", len(pending)),
			zap.Error(err),
		)
	}

	garden.MarkEventsAsCommitted()
}
