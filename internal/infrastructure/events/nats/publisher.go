package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/narwhalmedia/catalog/internal/domain/video"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// Publisher implements interfaces.EventPublisher on JetStream
type Publisher struct {
	js       jetstream.JetStream
	subjects map[string]string
	logger   *zap.Logger
}

// NewPublisher creates a new NATS event publisher
func NewPublisher(client *Client, cfg config.NATSConfig, logger *zap.Logger) *Publisher {
	return &Publisher{
		js:       client.JetStream(),
		subjects: Subjects(cfg),
		logger:   logger.Named("publisher"),
	}
}

var _ interfaces.EventPublisher = (*Publisher)(nil)

// Subjects maps each published event type to its subject.
func Subjects(cfg config.NATSConfig) map[string]string {
	return map[string]string{
		video.MediaCreatedEventType: cfg.MediaCreatedSubject,
	}
}

// Publish sends the event wrapped in an envelope. The envelope ID doubles as
// the JetStream deduplication ID.
func (p *Publisher) Publish(ctx context.Context, event interfaces.Event) error {
	subject, ok := p.subjects[event.EventType()]
	if !ok {
		return fmt.Errorf("no subject for event type %s", event.EventType())
	}

	envelope, err := NewEnvelope(event)
	if err != nil {
		return err
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ack, err := p.js.Publish(pubCtx, subject, data, jetstream.WithMsgID(envelope.ID))
	if err != nil {
		p.logger.Error("failed to publish event",
			zap.Error(err),
			zap.String("event_id", envelope.ID),
			zap.String("event_type", envelope.EventType),
			zap.String("subject", subject),
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Info("event published",
		zap.String("event_id", envelope.ID),
		zap.String("event_type", envelope.EventType),
		zap.String("subject", subject),
		zap.Uint64("sequence", ack.Sequence),
		zap.String("stream", ack.Stream),
	)
	return nil
}

// EventEnvelope wraps an event with metadata for transport
type EventEnvelope struct {
	ID          string          `json:"id"`
	AggregateID string          `json:"aggregate_id"`
	EventType   string          `json:"event_type"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Data        json.RawMessage `json:"data"`
}

// NewEnvelope wraps event under a fresh ID.
func NewEnvelope(event interfaces.Event) (*EventEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event data: %w", err)
	}

	return &EventEnvelope{
		ID:          uuid.NewString(),
		AggregateID: event.AggregateID(),
		EventType:   event.EventType(),
		OccurredAt:  time.Unix(event.Timestamp(), 0).UTC(),
		Data:        data,
	}, nil
}
