package noop

import (
	"context"

	"gardenbook/application/ports"
	"gardenbook/domain/events"
)

// Publisher discards every event. Used when no event bus is configured
// and by tests that don't assert on events.
type Publisher struct{}

// NewPublisher creates a no-op publisher
func NewPublisher() ports.EventPublisher {
	return Publisher{}
}

// Publish implements ports.EventPublisher
func (Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return nil
}

// PublishBatch implements ports.EventPublisher
func (Publisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	return nil
}
