package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "promo-ledger/internal/adapter/http"
	"promo-ledger/internal/adapter/postgres"
	"promo-ledger/internal/adapter/provider"
	redisadapter "promo-ledger/internal/adapter/redis"
	"promo-ledger/internal/adapter/usecase"
	"promo-ledger/internal/config"
	"promo-ledger/internal/db"
)

// main is the entry point of the promo-ledger service. It loads
// configuration, optionally runs database migrations, initializes the
// database pool, repositories and usecases, then starts the HTTP
// server and the settlement reconciliation loop. On receiving a
// termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	redisClient, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		// withdrawals fall back to uncapped when the counter store is down
		logger.Warn("redis connection failed, withdrawal limits disabled", slog.Any("error", err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	repo := postgres.NewLedgerRepository(pool)
	rail := provider.New(cfg.Provider)
	limiter := redisadapter.NewWithdrawalLimiter(redisClient, cfg.Redis.DailyWithdrawalCapCents)

	wallets := usecase.NewWalletUseCase(repo, limiter, cfg.Funding, logger)
	charges := usecase.NewChargeUseCase(repo, rail, logger)
	budgets := usecase.NewBudgetUseCase(repo, wallets, logger)
	payouts := usecase.NewPayoutUseCase(repo, rail, cfg.Funding, cfg.Provider.SettlementWindow, logger)

	handler := httpadapter.NewHandler(wallets, charges, budgets, payouts, cfg.Provider.WebhookSecret, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	// Periodically fail and compensate settlements that never confirmed.
	go func() {
		ticker := time.NewTicker(cfg.Provider.SettlementWindow / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, rErr := payouts.ReconcileStale(ctx); rErr != nil {
					logger.Error("reconciliation sweep error", slog.Any("error", rErr))
				} else if n > 0 {
					logger.Info("reconciled stale settlements", slog.Int("count", n))
				}
			}
		}
	}()

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
