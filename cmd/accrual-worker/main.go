package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"founders-server/internal/accrual"
	commissionProcessor "founders-server/internal/commission/processor"
	"founders-server/internal/config"
	"founders-server/internal/observability"
	"founders-server/internal/store"
)

// Standalone accrual worker. Runs the billable-event consumers without the
// HTTP server, for deployments that scale ingestion separately.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	logger := observability.NewLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "Starting accrual worker...")

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to database", err)
	}

	commissionProc := commissionProcessor.New(&dataStore, logger)
	accrualService := accrual.NewService(cfg.Kafka, &dataStore, &commissionProc, logger)

	logger.Info(ctx, fmt.Sprintf(`Accrual worker configuration:
  - Workers: %d
  - Kafka brokers: %s
  - Kafka topic: %s
  - Consumer group: %s`,
		cfg.Kafka.AccrualWorkers, cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.ConsumerGroup))

	accrualService.Start(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	logger.Info(ctx, "Received shutdown signal, stopping accrual workers...")
	cancel()

	accrualService.Stop()
	logger.Info(ctx, "Accrual worker stopped")
}
