package kafkabus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/murkotick/storefront-service/internal/app/storefront/contracts"
)

type fakeWriter struct {
	got    []kafka.Message
	err    error
	closes int
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.got = append(w.got, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closes++
	return nil
}

func event(id, aggregate string) contracts.OutboxEvent {
	return contracts.OutboxEvent{
		EventID:      id,
		EventType:    "order.placed",
		AggregateID:  aggregate,
		PayloadJSON:  `{"total_cents":1300}`,
		Status:       contracts.OutboxStatusPending,
		CreatedAtUTC: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func header(m kafka.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestPublish_MapsEventsToMessages(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, "storefront.events")

	require.NoError(t, p.Publish(context.Background(), []contracts.OutboxEvent{event("e1", "order-1"), event("e2", "order-2")}))

	require.Len(t, w.got, 2)
	m := w.got[0]
	assert.Equal(t, "order-1", string(m.Key))
	assert.JSONEq(t, `{"total_cents":1300}`, string(m.Value))
	assert.Equal(t, "e1", header(m, HeaderEventID))
	assert.Equal(t, "order.placed", header(m, HeaderEventType))
	assert.Equal(t, "e2", header(w.got[1], HeaderEventID))
}

func TestPublish_EmptyBatchSkipsWriter(t *testing.T) {
	w := &fakeWriter{err: errors.New("must not be called")}
	p := newPublisher(w, "t")
	assert.NoError(t, p.Publish(context.Background(), nil))
}

func TestPublish_WrapsWriterError(t *testing.T) {
	boom := errors.New("broker down")
	p := newPublisher(&fakeWriter{err: boom}, "storefront.events")

	err := p.Publish(context.Background(), []contracts.OutboxEvent{event("e1", "a")})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "storefront.events")
}

func TestClose_Idempotent(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, "t")

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, w.closes)

	err := p.Publish(context.Background(), []contracts.OutboxEvent{event("e1", "a")})
	assert.ErrorIs(t, err, ErrPublisherClosed)
}

func TestNewPublisher_Validates(t *testing.T) {
	log := zaptest.NewLogger(t)

	_, err := NewPublisher(Config{Topic: "t"}, log)
	assert.Error(t, err)

	_, err = NewPublisher(Config{Brokers: []string{"localhost:9092"}}, log)
	assert.Error(t, err)

	p, err := NewPublisher(Config{Brokers: []string{"localhost:9092"}, Topic: "t"}, log)
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}
