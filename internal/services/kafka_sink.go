package services

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

//go:generate mockgen -source=kafka_sink.go -destination=kafka_sink_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaAlertSink publishes alert events to a Kafka topic.
type KafkaAlertSink struct {
	writer KafkaWriter
}

// NewKafkaAlertSink creates a new KafkaAlertSink.
func NewKafkaAlertSink(writer KafkaWriter) *KafkaAlertSink {
	return &KafkaAlertSink{writer: writer}
}

// PublishAlert writes the event as JSON keyed by its ID.
func (s *KafkaAlertSink) PublishAlert(ctx context.Context, event models.AlertEvent) error {
	if s.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "alert_id", event.ID)
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal alert for Kafka", "alert_id", event.ID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.ID),
		Value: data,
	}

	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish alert to Kafka", "alert_id", event.ID, "error", err)
		return err
	}

	logger.Log.Infow("Alert published to Kafka", "alert_id", event.ID, "from", event.From, "to", event.To, "rate", event.Rate)
	return nil
}

// Close closes the underlying writer.
func (s *KafkaAlertSink) Close() error {
	if s.writer == nil {
		return nil
	}
	return s.writer.Close()
}
