package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"founders-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

// Producer handles publishing billable events to Kafka
type Producer struct {
	writer *kafka.Writer
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:        kafka.TCP(config.Brokers...),
		Topic:       config.Topic,
		Balancer:    &kafka.LeastBytes{},
		Async:       false,
		Compression: kafka.Snappy,
		BatchSize:   100,
	}

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// BillableEvent is the wire format for revenue events that may generate
// referral commissions.
type BillableEvent struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	MemberEmail string                 `json:"member_email"`
	Amount      string                 `json:"amount"`
	Currency    string                 `json:"currency"`
	Data        map[string]interface{} `json:"data,omitempty"`
	OccurredAt  string                 `json:"occurred_at"`
}

// PublishEvent publishes a billable event to Kafka
func (p *Producer) PublishEvent(ctx context.Context, event BillableEvent) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
	)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal event", err)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		// Partition by member email so events for one member stay ordered
		Key:   []byte(event.MemberEmail),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	err = p.writer.WriteMessages(ctx, msg)
	if err != nil {
		p.logger.Error(ctx, "failed to write message to kafka", err)
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("published event %s to kafka", event.Type))
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
