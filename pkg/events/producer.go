package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"

	"github.com/E11SH/RENTHUB/pkg/logger"
)

const (
	TypePropertyCreated = "property.created"
	TypePropertyDeleted = "property.deleted"
	TypeBookingCreated  = "booking.created"
	TypeUserRegistered  = "user.registered"
)

// Event is the envelope written to the event topic. Payload carries the
// affected record.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Producer publishes domain events. A nil *Producer is a no-op so the
// service runs unchanged when no brokers are configured.
type Producer struct {
	writer *kafka.Writer
	log    *logger.Logger
	mu     sync.Mutex
	closed bool
}

func NewProducer(brokers []string, topic string, log *logger.Logger) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Compression:  compress.Snappy,
		BatchTimeout: 50 * time.Millisecond,
	}

	return &Producer{
		writer: writer,
		log:    log,
	}, nil
}

// Publish writes one event keyed by entity ID. Failures are logged and
// swallowed: event delivery is best effort and must not fail the request
// that triggered it.
func (p *Producer) Publish(ctx context.Context, eventType, key string, payload any) {
	if p == nil {
		return
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	event := Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Failed to marshal event", "type", eventType, "error", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		p.log.Error("Failed to publish event", "type", eventType, "key", key, "error", err)
		return
	}

	p.log.Debug("Event published", "type", eventType, "key", key)
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}
