package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/grocerylist/pkg/cache"
	"github.com/ghuser/grocerylist/pkg/config"
	"github.com/ghuser/grocerylist/pkg/database"
	"github.com/ghuser/grocerylist/pkg/events"
	"github.com/ghuser/grocerylist/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to each service's route registration during server initialization.
//
// Db, EventBus and Redis are nil when STORE_BACKEND=memory; services fall back
// to in-process implementations in that case.
//
// The Context logging methods add trace_id, span_id and request_id:
//
//	app.Logger.InfoContext(ctx, "item added", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config       *config.Config
	Db           *database.Database
	Logger       logger.Logger
	EventBus     *events.EventBus
	Redis        *cache.RedisClient
	SessionStore sessions.Store // flash notices; nil in worker process
}

// IsProduction reports whether the application runs with ENVIRONMENT=production.
func (a *Application) IsProduction() bool {
	return a.Config != nil && a.Config.Environment == config.EnvProduction
}
