// Command grocery-migrate applies the grocery schema migrations.
//
//	go run ./migrations/grocery [up|down|status]
package main

import (
	"context"
	"embed"
	"log/slog"
	"os"

	"github.com/ghuser/grocerylist/pkg/config"
	"github.com/ghuser/grocerylist/pkg/logger"
	"github.com/ghuser/grocerylist/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	command := migrator.CommandUp
	if arg := cfg.Args.Num(0); arg != "" {
		command = arg
	}

	if err := migrator.Run(context.Background(), cfg.DatabaseURL, MigrationsFS, command, log); err != nil {
		log.Error("migration failed", "command", command, "error", err)
		os.Exit(1)
	}
}
