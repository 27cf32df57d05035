package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"
	"github.com/rmercado/kahera/infra"
	infrarepository "github.com/rmercado/kahera/infra/repository"
	"github.com/rmercado/kahera/pkg/app"
	"github.com/rmercado/kahera/pkg/config"
	"github.com/rmercado/kahera/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infrarepository.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	a := app.New(&app.Deps{
		Uow:    infrarepository.NewUoW(db),
		Logger: logger,
	}, cfg)

	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)

	return fiberApp.Listen(addr)
}
