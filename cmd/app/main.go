package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wagerlab/predictgate/internal/bootstrap"
	"github.com/wagerlab/predictgate/internal/config"
	"github.com/wagerlab/predictgate/internal/database"
	"github.com/wagerlab/predictgate/internal/handler"
	"github.com/wagerlab/predictgate/internal/ledger"
	"github.com/wagerlab/predictgate/internal/ledger/postgres"
	"github.com/wagerlab/predictgate/internal/ledger/redisstore"
	"github.com/wagerlab/predictgate/internal/network"
	"github.com/wagerlab/predictgate/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings(cfg)
	if err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		slog.Warn(warning)
	}

	store, err := buildStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize ledger store", "error", err)
		os.Exit(1)
	}

	networks, err := buildRegistry(cfg)
	if err != nil {
		slog.Error("Failed to load network profiles", "error", err)
		os.Exit(1)
	}

	handler.InitValidator()

	ledgerService := ledger.NewService(store, networks, ledger.Rules{
		MinimumDeposit:     cfg.MinimumDeposit,
		PredictionsAwarded: cfg.PredictionsAwarded,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		AffiliateLink:  cfg.AffiliateLink,
	}, store, ledgerService, networks)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server: srv,
		Store:  store,
	})
}

// buildStore selects the ledger store backend from configuration.
func buildStore(cfg *config.Config) (ledger.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendRedis:
		slog.Info("Using redis ledger store", "addr", cfg.RedisAddr)
		return redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB), nil

	case config.StoreBackendPostgres:
		connString := cfg.GetDBConnString()
		if err := database.Migrate(connString); err != nil {
			return nil, err
		}
		pool, err := database.NewPool(connString, 25, 5*time.Minute, 30*time.Minute)
		if err != nil {
			return nil, err
		}
		slog.Info("Using postgres ledger store", "host", cfg.DBHost, "db", cfg.DBName)
		return postgres.New(pool), nil

	default:
		slog.Warn("Using in-memory ledger store; records are lost on restart")
		return ledger.NewMemoryStore(), nil
	}
}

// buildRegistry loads vocabulary profiles, falling back to the built-in
// defaults when no config file is present.
func buildRegistry(cfg *config.Config) (network.Registry, error) {
	if _, err := os.Stat(cfg.NetworksConfig); err != nil {
		if os.IsNotExist(err) {
			slog.Warn("Networks config not found, using built-in default vocabulary",
				"path", cfg.NetworksConfig)
			return network.NewBuiltinRegistry(), nil
		}
		return nil, err
	}
	return network.NewRegistry(cfg.NetworksConfig)
}
