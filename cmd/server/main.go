package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	backendroot "github.com/vip102a/backend"
	"github.com/vip102a/backend/internal/config"
	"github.com/vip102a/backend/internal/handler"
	"github.com/vip102a/backend/internal/middleware"
	"github.com/vip102a/backend/internal/repository"
	"github.com/vip102a/backend/internal/service"
	"github.com/vip102a/backend/internal/telegram"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration; a missing BOT_TOKEN is fatal before listening
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting", "token_prefix", cfg.TokenPrefix())

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := handler.Deps{
		Cfg: cfg,
		TG:  telegram.NewClient(cfg),
	}

	// Payment ledger is optional; without DATABASE_URL the service runs as a
	// stateless relay
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		migrationsFS, err := fs.Sub(backendroot.MigrationsFS, "migrations")
		if err != nil {
			slog.Error("failed to load embedded migrations", "error", err)
			os.Exit(1)
		}
		if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		deps.Billing = service.NewBillingService(repository.NewLedger(pool))
		deps.DB = pool
	} else {
		slog.Warn("DATABASE_URL not set, payment ledger disabled")
	}

	h := handler.New(deps)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.Logging())
	h.Register(app)

	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()
	slog.Info("server listening", "port", cfg.Port)

	<-ctx.Done()

	// Graceful shutdown: stop accepting requests, then drain detached
	// webhook work
	if err := app.ShutdownWithTimeout(config.ShutdownTimeout); err != nil {
		slog.Error("shutdown", "error", err)
	}
	h.Drain()
	slog.Info("server stopped gracefully")
}
