package kafka

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/events"
)

// NoopPublisher satisfies ports.EventPublisher without a broker. Used when
// no Kafka host is configured, for example in local development; events are
// logged at debug level and dropped.
type NoopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher creates a publisher that drops all events.
func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger.With("component", "noop_publisher")}
}

func (p *NoopPublisher) PublishPickListCompleted(ctx context.Context, event events.PickListCompleted) error {
	p.logger.DebugContext(ctx, "Dropping event, Kafka not configured",
		"event_type", "picklist.completed", "pick_list_id", event.PickListID)
	return nil
}

func (p *NoopPublisher) PublishLoadDispatched(ctx context.Context, event events.LoadDispatched) error {
	p.logger.DebugContext(ctx, "Dropping event, Kafka not configured",
		"event_type", "load.dispatched", "load_id", event.LoadID)
	return nil
}

func (p *NoopPublisher) PublishLoadRecalled(ctx context.Context, event events.LoadRecalled) error {
	p.logger.DebugContext(ctx, "Dropping event, Kafka not configured",
		"event_type", "load.recalled", "load_id", event.LoadID)
	return nil
}
