package kafka

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/domain/events"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTopics() Topics {
	return Topics{
		PickListCompleted: "fulfillment.picklist.completed",
		LoadDispatched:    "fulfillment.load.dispatched",
		LoadRecalled:      "fulfillment.load.recalled",
	}
}

func newTestPublisher(t *testing.T) (*Publisher, *mocks.SyncProducer) {
	t.Helper()

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, config)

	publisher := &Publisher{
		producer: producer,
		topics:   testTopics(),
		logger:   slog.Default(),
	}
	return publisher, producer
}

func Test_Publisher_PublishPickListCompleted(t *testing.T) {
	publisher, producer := newTestPublisher(t)

	event := events.PickListCompleted{
		PickListID: "5e0a5a9f-60f7-4c98-9b1a-0e6f9a3f7f11",
		OrderID:    "7c7c2f6a-2a30-4a8c-8303-1e1c8e5d2b42",
		Sequence:   7,
		Trolleys:   4,
		OccurredAt: time.Date(2026, time.February, 2, 9, 30, 0, 0, time.UTC),
	}

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var got events.PickListCompleted
		if err := json.Unmarshal(value, &got); err != nil {
			return err
		}
		assert.Equal(t, event, got)
		return nil
	})

	err := publisher.PublishPickListCompleted(t.Context(), event)
	require.NoError(t, err)
}

func Test_Publisher_PublishLoadDispatched_SendFailure(t *testing.T) {
	publisher, producer := newTestPublisher(t)

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := publisher.PublishLoadDispatched(t.Context(), events.LoadDispatched{
		LoadID:     "5e0a5a9f-60f7-4c98-9b1a-0e6f9a3f7f11",
		Carrier:    "Van Veen Transport",
		OccurredAt: time.Now(),
	})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func Test_NoopPublisher_DropsEverything(t *testing.T) {
	publisher := NewNoopPublisher(slog.Default())

	require.NoError(t, publisher.PublishPickListCompleted(t.Context(), events.PickListCompleted{}))
	require.NoError(t, publisher.PublishLoadDispatched(t.Context(), events.LoadDispatched{}))
	require.NoError(t, publisher.PublishLoadRecalled(t.Context(), events.LoadRecalled{}))
}
