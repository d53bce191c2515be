package producer

import (
	"context"
	"encoding/json"
	"time"

	"go-attendo/internal/events"
	"go-attendo/internal/messaging/kafka"
	"go-attendo/internal/notifier"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafkago.Writer the dispatcher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func newReminderFiredEnvelope(topic string, due notifier.Due, firedAt time.Time) (kafka.Envelope, error) {
	event := events.ReminderFiredEvent{
		EventType:      events.ReminderFiredEventType,
		NotificationID: due.ID,
		UserID:         due.Payload.UserID,
		ShiftID:        due.Payload.ShiftID,
		ReminderType:   string(due.Payload.Type),
		Source:         due.Payload.ReminderType,
		ScheduledTime:  due.Payload.ScheduledTime,
		FiredAt:        firedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Envelope{}, err
	}
	env := kafka.Envelope{
		Topic:     topic,
		Key:       due.Payload.UserID,
		EventType: events.ReminderFiredEventType,
		Payload:   payload,
	}
	return env, kafka.ValidateEnvelope(env)
}

func publishEvent(ctx context.Context, writer MessageWriter, env kafka.Envelope) error {
	return writer.WriteMessages(ctx, env.Message())
}
