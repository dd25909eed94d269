package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/heartmarshall/partkeeper/internal/adapter/postgres"
	"github.com/heartmarshall/partkeeper/internal/adapter/postgres/auditlog"
	"github.com/heartmarshall/partkeeper/internal/adapter/postgres/component"
	"github.com/heartmarshall/partkeeper/internal/config"
	"github.com/heartmarshall/partkeeper/internal/domain"
	"github.com/heartmarshall/partkeeper/internal/event"
	"github.com/heartmarshall/partkeeper/internal/service/inventory"
	"github.com/heartmarshall/partkeeper/internal/transport/cli"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and the database pool, runs migrations, wires the event bus,
// repositories, and the inventory service, then hands control to the
// interactive console until the operator exits or the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting partkeeper",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// All subscriptions happen here, before any publisher runs.
	bus := event.NewBus()
	if err := bus.Subscribe(event.LowStock, cli.NewLowStockPrinter(os.Stdout)); err != nil {
		return fmt.Errorf("subscribe low stock printer: %w", err)
	}

	svc := inventory.NewService(
		logger,
		component.New(pool),
		auditlog.New(pool),
		postgres.NewTxManager(pool),
		bus,
	)

	user, err := domain.NewUser(nil, cfg.Inventory.DefaultUserName)
	if err != nil {
		return fmt.Errorf("operator identity: %w", err)
	}

	menu := cli.NewMenu(logger, svc, user, cfg.Inventory.LogListLimit, os.Stdin, os.Stdout)
	if err := menu.Run(ctx); err != nil {
		return fmt.Errorf("console: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
