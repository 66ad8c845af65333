// Package kafka publishes integration events to Kafka. Events go out after
// the owning database transaction has committed; the command handlers log
// and swallow publish failures, so a broker outage degrades to missing
// notifications, never to failed picks or dispatches.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/events"

	"github.com/IBM/sarama"
)

// Topics names the Kafka topics the service publishes to.
type Topics struct {
	PickListCompleted string
	LoadDispatched    string
	LoadRecalled      string
}

// Publisher implements ports.EventPublisher on a synchronous Kafka producer.
// Messages are keyed by aggregate identifier so all events of one pick list
// or one delivery run land on the same partition, in order.
type Publisher struct {
	producer sarama.SyncProducer
	topics   Topics
	logger   *slog.Logger
}

// NewPublisher creates a Publisher connected to the given brokers.
func NewPublisher(brokers []string, topics Topics, logger *slog.Logger) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &Publisher{
		producer: producer,
		topics:   topics,
		logger:   logger.With("component", "kafka_publisher"),
	}, nil
}

// PublishPickListCompleted emits the completion of a pick list.
func (p *Publisher) PublishPickListCompleted(ctx context.Context, event events.PickListCompleted) error {
	return p.send(ctx, p.topics.PickListCompleted, "picklist.completed", event.PickListID, event)
}

// PublishLoadDispatched emits the departure of a delivery run.
func (p *Publisher) PublishLoadDispatched(ctx context.Context, event events.LoadDispatched) error {
	return p.send(ctx, p.topics.LoadDispatched, "load.dispatched", event.LoadID, event)
}

// PublishLoadRecalled emits the recall of a dispatched delivery run.
func (p *Publisher) PublishLoadRecalled(ctx context.Context, event events.LoadRecalled) error {
	return p.send(ctx, p.topics.LoadRecalled, "load.recalled", event.LoadID, event)
}

// Close shuts down the underlying producer.
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

func (p *Publisher) send(ctx context.Context, topic, eventType, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send %s event to Kafka: %w", eventType, err)
	}

	p.logger.InfoContext(ctx, "Event published",
		"event_type", eventType,
		"topic", topic,
		"key", key,
		"partition", partition,
		"offset", offset,
	)
	return nil
}
