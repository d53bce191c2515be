package producer

import (
	"context"
	"time"

	"go-attendo/internal/notifier"
	"go-attendo/internal/shared/clock"

	"go.uber.org/zap"
)

// DueSource is the side of the reminder queue the dispatcher drains.
type DueSource interface {
	ListDue(ctx context.Context, now time.Time, limit int) ([]notifier.Due, error)
	Ack(ctx context.Context, due ...notifier.Due) error
}

type DispatchConfig struct {
	Topic        string
	PollInterval time.Duration
	BatchSize    int
}

// ProcessDueReminders publishes fired reminders until ctx is done.
func ProcessDueReminders(
	ctx context.Context,
	queue DueSource,
	writer MessageWriter,
	clk clock.Clock,
	cfg DispatchConfig,
	logger *zap.Logger,
) {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 15 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}

	log := logger.Named("kafka.producer.reminder_dispatcher")
	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	log.Info("reminder dispatcher started",
		zap.Duration("poll_interval", cfg.PollInterval),
		zap.String("topic", cfg.Topic),
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("reminder dispatcher stopped")
			return
		case <-ticker.C:
			if _, err := DispatchDue(ctx, queue, writer, clk, cfg, log); err != nil {
				log.Error("dispatch due reminders failed", zap.Error(err))
			}
		}
	}
}

// DispatchDue runs one drain pass and reports how many reminders were acked.
// A reminder is acked only after its event is written, so delivery is at least once.
func DispatchDue(
	ctx context.Context,
	queue DueSource,
	writer MessageWriter,
	clk clock.Clock,
	cfg DispatchConfig,
	logger *zap.Logger,
) (int, error) {
	now := clk.Now()
	due, err := queue.ListDue(ctx, now, cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	if len(due) == 0 {
		return 0, nil
	}

	logger.Info("processing due reminders", zap.Int("count", len(due)))

	sent := 0
	for _, d := range due {
		env, err := newReminderFiredEnvelope(cfg.Topic, d, now)
		if err != nil {
			logger.Error("build reminder event failed", zap.String("notification_id", d.ID), zap.Error(err))
			continue
		}

		if err := publishEvent(ctx, writer, env); err != nil {
			logger.Error("publish reminder event failed",
				zap.String("notification_id", d.ID),
				zap.String("topic", env.Topic),
				zap.Error(err),
			)
			continue
		}

		if err := queue.Ack(ctx, d); err != nil {
			logger.Error("ack reminder failed",
				zap.String("notification_id", d.ID),
				zap.Error(err),
			)
			continue
		}
		sent++

		logger.Info("reminder event sent",
			zap.String("notification_id", d.ID),
			zap.String("user_id", d.Payload.UserID),
			zap.String("type", string(d.Payload.Type)),
		)
	}

	return sent, nil
}
