// Package kafkabus publishes outbox events to a Kafka topic.
package kafkabus

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/murkotick/storefront-service/internal/app/storefront/contracts"
)

// Header keys set on every published message.
const (
	HeaderEventID   = "event_id"
	HeaderEventType = "event_type"
)

var ErrPublisherClosed = errors.New("kafkabus: publisher closed")

type Config struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
	MaxAttempts  int
}

func (c Config) Validate() error {
	if len(c.Brokers) == 0 {
		return errors.New("kafkabus: at least one broker is required")
	}
	if c.Topic == "" {
		return errors.New("kafkabus: topic is required")
	}
	return nil
}

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher is a contracts.EventPublisher backed by a synchronous kafka.Writer.
// Messages are keyed by aggregate id so one aggregate's events stay ordered
// within a partition.
type Publisher struct {
	writer messageWriter
	topic  string
	closed atomic.Bool
}

func NewPublisher(cfg Config, logger *zap.Logger) (*Publisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = 50 * time.Millisecond
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}

	sugar := logger.Named("kafka").Sugar()
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		MaxAttempts:  cfg.MaxAttempts,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			sugar.Errorf(msg, args...)
		}),
	}
	return newPublisher(w, cfg.Topic), nil
}

func newPublisher(w messageWriter, topic string) *Publisher {
	return &Publisher{writer: w, topic: topic}
}

// Publish writes events in order and blocks until the brokers acknowledge
// all of them.
func (p *Publisher) Publish(ctx context.Context, events []contracts.OutboxEvent) error {
	if p.closed.Load() {
		return ErrPublisherClosed
	}
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, len(events))
	for i, e := range events {
		msgs[i] = Message(e)
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish %d events to %s: %w", len(events), p.topic, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}

// Message converts an outbox event to its wire form.
func Message(e contracts.OutboxEvent) kafka.Message {
	return kafka.Message{
		Key:   []byte(e.AggregateID),
		Value: []byte(e.PayloadJSON),
		Time:  e.CreatedAtUTC,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(e.EventID)},
			{Key: HeaderEventType, Value: []byte(e.EventType)},
		},
	}
}

var _ contracts.EventPublisher = (*Publisher)(nil)
