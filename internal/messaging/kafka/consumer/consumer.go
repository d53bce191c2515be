package consumer

import (
	"context"
	"encoding/json"

	"go-attendo/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// FiredReminderMarker drops the bookkeeping of a delivered reminder.
type FiredReminderMarker interface {
	MarkFired(ctx context.Context, userID, id string) error
}

// FiredReminderHandler reacts to a delivered reminder without touching work state.
type FiredReminderHandler interface {
	HandleReminderFired(ctx context.Context, event events.ReminderFiredEvent) error
}

func ConsumeReminderFired(
	ctx context.Context,
	reader MessageReader,
	reminders FiredReminderMarker,
	status FiredReminderHandler,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.reminder_fired")
	log.Info("reminder fired consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("reminder fired consumer stopped")
				return
			}
			log.Error("fetch reminder fired message failed", zap.Error(err))
			continue
		}

		if err := HandleMessage(ctx, msg, reminders, status, log); err != nil {
			log.Error("handle reminder fired failed",
				zap.String("key", string(msg.Key)),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit reminder fired message failed", zap.Error(err))
		}
	}
}

// HandleMessage processes one record. Undecodable records return nil so they get committed.
func HandleMessage(
	ctx context.Context,
	msg kafkago.Message,
	reminders FiredReminderMarker,
	status FiredReminderHandler,
	logger *zap.Logger,
) error {
	var event events.ReminderFiredEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		logger.Error("decode reminder fired event failed", zap.Error(err))
		return nil
	}
	if event.UserID == "" || event.NotificationID == "" {
		logger.Warn("reminder fired event missing ids, skipping", zap.String("key", string(msg.Key)))
		return nil
	}

	if err := reminders.MarkFired(ctx, event.UserID, event.NotificationID); err != nil {
		return err
	}
	if err := status.HandleReminderFired(ctx, event); err != nil {
		return err
	}

	logger.Info("reminder fired handled",
		zap.String("notification_id", event.NotificationID),
		zap.String("user_id", event.UserID),
		zap.String("reminder_type", event.ReminderType),
	)
	return nil
}
