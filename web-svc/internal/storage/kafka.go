package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"overcooked-simplified/web-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// Publish writes the event keyed by cafe so one cafe's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.UIEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode ui event: %w", err)
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.RestaurantID)),
		Value: payload,
	})
}
