package app

import (
	"github.com/gorilla/sessions"

	"github.com/linenlady/inventory/pkg/cache"
	"github.com/linenlady/inventory/pkg/config"
	"github.com/linenlady/inventory/pkg/database"
	"github.com/linenlady/inventory/pkg/events"
	"github.com/linenlady/inventory/pkg/logger"
	"github.com/linenlady/inventory/pkg/storage"
	"github.com/linenlady/inventory/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing item", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Cfg            *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	Storage        *storage.ObjectStore
	TemporalClient *workflows.TemporalClient // nil when Temporal scheduling is disabled
	SessionStore   sessions.Store            // Redis-backed session store; nil in worker process
}
