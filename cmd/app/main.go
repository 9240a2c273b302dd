package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"

	"github.com/gameworld/gameworld/internal/auth"
	"github.com/gameworld/gameworld/internal/config"
	"github.com/gameworld/gameworld/internal/database"
	"github.com/gameworld/gameworld/internal/database/postgres"
	"github.com/gameworld/gameworld/internal/inventory"
	"github.com/gameworld/gameworld/internal/quest"
	"github.com/gameworld/gameworld/internal/server"
	"github.com/gameworld/gameworld/internal/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	pool, err := connectWithRetry(cfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	playerRepo := postgres.NewPlayerRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	questRepo := postgres.NewQuestRepository(pool)

	tokenIssuer := auth.NewTokenIssuer(cfg.SessionSecret, cfg.SessionTTL)
	authService := auth.NewService(playerRepo, tokenIssuer)
	inventoryService := inventory.NewService(inventoryRepo)
	questService := quest.NewService(questRepo, cfg.QuestForwardOnly)
	sessionService := session.NewService(inventoryService, questService)

	srv := server.NewServer(cfg.Port, pool, tokenIssuer, authService, inventoryService, questService, sessionService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// connectWithRetry opens the pgx pool, retrying with backoff so the service
// survives the database coming up after it (compose, k8s).
func connectWithRetry(cfg *config.Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool

	backoff := retry.WithMaxRetries(5, retry.NewExponential(time.Second))
	err := retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		var err error
		pool, err = database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
		if err != nil {
			slog.Warn("Database not reachable yet, retrying", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pool, nil
}
