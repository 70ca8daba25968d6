package bootstrap

import (
	"context"
	"log/slog"

	"github.com/wagerlab/predictgate/internal/ledger"
	"github.com/wagerlab/predictgate/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Store  ledger.Store
}

// GracefulShutdown performs graceful shutdown of all application components.
// The HTTP server stops accepting new requests first, then the ledger store
// connections are released.
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingLedgerStore)
		components.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
