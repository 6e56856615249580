package ports

import (
	"context"
	"time"

	"gardenbook/domain/events"
)

// EventPublisher publishes domain events to interested consumers.
// Publishing is best-effort: a failure is logged by the caller, never
// surfaced to the client.
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// Clock supplies the current time for createdAt/updatedAt stamps. It is
// injected so handlers never reach for the wall clock directly.
type Clock func() time.Time

// SystemClock is the production clock
func SystemClock() time.Time {
	return time.Now()
}
