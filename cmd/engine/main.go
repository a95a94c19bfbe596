package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/paystream/txengine/internal/config"
	"github.com/paystream/txengine/internal/events"
	eventskafka "github.com/paystream/txengine/internal/events/kafka"
	"github.com/paystream/txengine/internal/hub"
	"github.com/paystream/txengine/internal/interfaces"
	"github.com/paystream/txengine/internal/models"
	"github.com/paystream/txengine/internal/storage/memory"
	"github.com/paystream/txengine/internal/storage/postgres"
	"github.com/paystream/txengine/internal/stream"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	cfg := config.Load()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: engine <transactions.csv>")
		os.Exit(1)
	}

	file, err := os.Open(os.Args[1])
	if err != nil {
		log.WithError(err).Fatal("failed to open transactions file")
	}
	defer file.Close()

	ctx := context.Background()

	factory, cleanup, err := ledgerFactory(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize ledger backend")
	}
	defer cleanup()

	var publisher interfaces.EventPublisher = events.Nop{}
	if len(cfg.Kafka.Brokers) > 0 {
		kp := eventskafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kp.Close()
		publisher = kp
		log.WithFields(logrus.Fields{
			"brokers": cfg.Kafka.Brokers,
			"topic":   cfg.Kafka.Topic,
		}).Info("publishing settlement events")
	}

	accounts := hub.New(factory, cfg.QueueSize, func(r hub.Result) {
		if r.Err != nil {
			log.WithError(r.Err).WithFields(logrus.Fields{
				"client": r.Client,
				"tx":     r.Action.Tx,
				"type":   r.Action.Type.String(),
			}).Info("action rejected")
		}
		if err := publisher.Publish(cfg.Kafka.Topic, events.FromResult(r)); err != nil {
			log.WithError(err).Warn("failed to publish settlement event")
		}
	})

	if err := stream.Process(ctx, file, accounts, log); err != nil {
		log.WithError(err).Fatal("processing failed")
	}

	if err := stream.WriteSummary(os.Stdout, accounts.Summarize()); err != nil {
		log.WithError(err).Fatal("failed to write summary")
	}
}

// ledgerFactory selects the store backend for new accounts. The returned
// cleanup closes whatever the backend holds open.
func ledgerFactory(ctx context.Context, cfg *config.Config) (hub.LedgerFactory, func(), error) {
	switch cfg.Ledger.Backend {
	case "", "memory":
		factory := func(models.ClientID) (interfaces.Ledger, error) {
			return memory.NewStore(), nil
		}
		return factory, func() {}, nil

	case "postgres":
		db, err := postgres.Open(cfg.Ledger.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		factory := func(client models.ClientID) (interfaces.Ledger, error) {
			return postgres.NewStore(db, client), nil
		}
		return factory, func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown ledger backend %q", cfg.Ledger.Backend)
	}
}
