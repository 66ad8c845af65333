package ports

import (
	"context"

	"fulfillment/internal/core/domain/events"
)

// EventPublisher defines the messaging contract for integration events.
// Publishing happens after the owning transaction commits; a publish
// failure is logged, never propagated into the request that caused it.
type EventPublisher interface {
	PublishPickListCompleted(ctx context.Context, event events.PickListCompleted) error
	PublishLoadDispatched(ctx context.Context, event events.LoadDispatched) error
	PublishLoadRecalled(ctx context.Context, event events.LoadRecalled) error
}
