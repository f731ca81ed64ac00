package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ghuser/grocerylist/pkg/logger"
)

// Command names accepted by Run.
const (
	CommandUp     = "up"
	CommandDown   = "down"
	CommandStatus = "status"
)

// Run opens dbURL and applies command ("up", "down" or "status") using the goose
// migrations found at the root of files.
func Run(ctx context.Context, dbURL string, files fs.FS, command string, log logger.Logger) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	provider, err := goose.NewProvider(goose.DialectPostgres, db, files)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	switch command {
	case CommandUp:
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("failed to up migrations: %w", err)
		}
		for _, r := range results {
			log.InfoContext(ctx, "migration applied", "version", r.Source.Version, "duration", r.Duration)
		}
	case CommandDown:
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("failed to down migration: %w", err)
		}
		log.InfoContext(ctx, "migration rolled back", "version", r.Source.Version)
	case CommandStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}
		for _, s := range statuses {
			log.InfoContext(ctx, "migration status", "version", s.Source.Version, "state", string(s.State))
		}
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	return nil
}
