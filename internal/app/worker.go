package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-attendo/config"
	"go-attendo/internal/messaging/kafka/producer"
	"go-attendo/internal/shared/clock"
	"go-attendo/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker drains due reminders from the queue onto Kafka until SIGINT/SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	if cfg.Store.Driver == "memory" {
		return fmt.Errorf("worker needs a shared store, store.driver is %q", cfg.Store.Driver)
	}
	loc, err := cfg.TimeLocation()
	if err != nil {
		return err
	}

	be, err := openBackend(cfg, log)
	if err != nil {
		return err
	}
	defer be.close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.ProcessDueReminders(
			ctx,
			be.queue,
			kafkaWriter,
			clock.New(loc),
			producer.DispatchConfig{
				Topic:        cfg.Kafka.Topic,
				PollInterval: cfg.Reminder.PollInterval,
				BatchSize:    cfg.Reminder.BatchSize,
			},
			logger,
		)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("worker shutting down")
	cancel()
	<-done

	return nil
}
