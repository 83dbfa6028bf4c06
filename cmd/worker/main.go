package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/linenlady/inventory/pkg/app"
	"github.com/linenlady/inventory/pkg/cache"
	"github.com/linenlady/inventory/pkg/config"
	"github.com/linenlady/inventory/pkg/database"
	"github.com/linenlady/inventory/pkg/events"
	"github.com/linenlady/inventory/pkg/logger"
	"github.com/linenlady/inventory/pkg/telemetry"
	pkgworkflows "github.com/linenlady/inventory/pkg/workflows"
	appsvcs "github.com/linenlady/inventory/services/inventory/application/services"
	invworkflows "github.com/linenlady/inventory/services/inventory/application/workflows"
	invevents "github.com/linenlady/inventory/services/inventory/domain/events"
)

// maintenanceCron drives session sweep/purge when Temporal is enabled. Each
// run handles one bounded batch.
const maintenanceCron = "*/5 * * * *"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	// Storage is left nil: no subscriber or maintenance path issues upload
	// URLs. A future handler that needs the signer must wire MinIO here the
	// way cmd/api does.
	appConfig := &app.Application{
		Cfg:      cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}
	svcs := appsvcs.New(appConfig)

	if err := registerSubscribers(ctx, appConfig, svcs); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	maintenanceCtx, cancelMaintenance := context.WithCancel(ctx)
	defer cancelMaintenance()

	if cfg.TemporalEnabled {
		temporalClient, err := pkgworkflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()

		w, err := startMaintenanceWorker(ctx, temporalClient, svcs)
		if err != nil {
			log.Error("failed to start maintenance worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer w.Stop()
		log.Info("temporal maintenance worker started", "task_queue", invworkflows.MaintenanceTaskQueue, "cron", maintenanceCron)
	} else {
		go runMaintenanceLoop(maintenanceCtx, appConfig, svcs)
		log.Info("ticker maintenance loop started", "interval", cfg.SessionSweepInterval)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelMaintenance()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more events are published.
func registerSubscribers(ctx context.Context, a *app.Application, svcs *appsvcs.Services) error {
	topics := map[string]func(context.Context, *message.Message) error{
		invevents.TopicSessionConsumed: handleSessionConsumed(a, svcs),
		invevents.TopicItemPublished:   handleItemPublished(a, svcs),
	}

	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		// Drain subscriber errors in background so the channel never blocks.
		go func() {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
	}

	a.Logger.Info("event subscribers registered",
		"topics", []string{invevents.TopicSessionConsumed, invevents.TopicItemPublished})
	return nil
}

// handleSessionConsumed warms the Redis read-model cache for the item a
// session promoted into, so the first read after promotion is served hot.
// Handlers must be idempotent — the EventBus retries up to 3× on failure.
func handleSessionConsumed(a *app.Application, svcs *appsvcs.Services) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt invevents.SessionConsumedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		// GetByID warms the cache as a side effect of the read-through path.
		if _, err := svcs.Items.GetByID(ctx, evt.ItemID); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for session.consumed",
				"item_id", evt.ItemID, "session_id", evt.SessionID, "error", err)
			return nil
		}
		a.Logger.InfoContext(ctx, "cache warmed after promotion",
			"item_id", evt.ItemID, "session_id", evt.SessionID, "photos", evt.PhotoCount)
		return nil
	}
}

// handleItemPublished refreshes the item's search embedding. The refresh is
// hash-gated, so redelivered events cost one hash comparison and no API call.
func handleItemPublished(a *app.Application, svcs *appsvcs.Services) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt invevents.ItemPublishedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		_, outcome, err := svcs.Embeddings.Refresh(ctx, evt.ItemID, "", false)
		if err != nil {
			// Returning the error triggers redelivery with backoff; the
			// embedding catches up once the API recovers.
			return err
		}
		a.Logger.InfoContext(ctx, "embedding refreshed on publish",
			"item_id", evt.ItemID, "outcome", outcome)
		return nil
	}
}

// startMaintenanceWorker registers the maintenance workflow and activities on
// the task queue and starts the cron schedule. Starting an already-running
// cron workflow id is a no-op.
func startMaintenanceWorker(ctx context.Context, tc *pkgworkflows.TemporalClient, svcs *appsvcs.Services) (worker.Worker, error) {
	w := worker.New(tc.Client, invworkflows.MaintenanceTaskQueue, worker.Options{})
	w.RegisterWorkflow(invworkflows.SessionMaintenanceWorkflow)
	w.RegisterActivity(&invworkflows.MaintenanceActivities{Sessions: svcs.Sessions})

	if err := w.Start(); err != nil {
		return nil, err
	}

	_, err := tc.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:           "session-maintenance",
		TaskQueue:    invworkflows.MaintenanceTaskQueue,
		CronSchedule: maintenanceCron,
	}, invworkflows.SessionMaintenanceWorkflow)
	if err != nil {
		w.Stop()
		return nil, err
	}
	return w, nil
}

// runMaintenanceLoop sweeps expired sessions and purges old terminal ones on
// a fixed interval. Used when Temporal scheduling is disabled. Safe to run on
// multiple workers — batch claims skip locked rows.
func runMaintenanceLoop(ctx context.Context, a *app.Application, svcs *appsvcs.Services) {
	ticker := time.NewTicker(a.Cfg.SessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.Logger.Info("maintenance loop shutting down")
			return
		case <-ticker.C:
			swept, err := svcs.Sessions.SweepExpired(ctx)
			if err != nil {
				a.Logger.ErrorContext(ctx, "session sweep failed", "error", err)
			} else if swept > 0 {
				a.Logger.InfoContext(ctx, "expired sessions swept", "count", swept)
			}

			purged, err := svcs.Sessions.PurgeOld(ctx)
			if err != nil {
				a.Logger.ErrorContext(ctx, "session purge failed", "error", err)
			} else if purged > 0 {
				a.Logger.InfoContext(ctx, "old sessions purged", "count", purged)
			}
		}
	}
}
