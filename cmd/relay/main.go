package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/murkotick/storefront-service/internal/app/storefront/queries/pending_outbox"
	"github.com/murkotick/storefront-service/internal/app/storefront/repo"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/relay_outbox"
	"github.com/murkotick/storefront-service/internal/config"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	committer "github.com/murkotick/storefront-service/internal/pkg/committer"
	"github.com/murkotick/storefront-service/internal/pkg/kafkabus"
	"github.com/murkotick/storefront-service/internal/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		return fmt.Errorf("spanner.NewClient: %w", err)
	}
	defer client.Close()

	pub, err := kafkabus.NewPublisher(kafkabus.Config{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.OutboxTopic,
	}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := pub.Close(); err != nil {
			logger.Warn("kafka writer close", zap.Error(err))
		}
	}()

	relay := relay_outbox.NewInteractor(
		pending_outbox.NewSpannerPendingOutboxQuery(client),
		repo.NewOutboxRepo(),
		pub,
		committer.NewAdapter(client),
		clock.RealClock{},
		logger,
		cfg.RelayBatchSize,
	)

	logger.Info("outbox relay started",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.OutboxTopic),
		zap.Duration("interval", cfg.RelayInterval))
	err = relay.Run(ctx, cfg.RelayInterval)
	logger.Info("outbox relay stopped")
	return err
}
