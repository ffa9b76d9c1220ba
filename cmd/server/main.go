package main

import (
	"candidate-notes/auth"
	"candidate-notes/infrastructure/api"
	"candidate-notes/infrastructure/ws"
	"candidate-notes/internal"
	"candidate-notes/repositories"
	"candidate-notes/repositories/sqlite"
	"candidate-notes/runtime"
	"candidate-notes/runtime/workers"
	"candidate-notes/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a fatal server error.
// Deferred cleanups (store close) run before the exit code reaches main.
func run() (int, error) {
	// 1. Configuration & Logger
	// A missing .env is fine, the environment may already be set.
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Store
	store, db, err := openStore(config, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		logger.Info("Closing store...", "driver", config.StoreDriver)
		_ = store.Close()
	}()

	// 4. Presence & dispatch
	tokens := auth.NewTokenManager(config.JWTSecret)
	sessions := runtime.NewSessionRegistry(logger, auth.CredentialLifetime)
	rooms := runtime.NewRoomTable(logger, sessions, config.SinkTimeout)
	gatekeeper := auth.NewGatekeeper(logger, tokens, store.Users)
	hub := runtime.NewHub(logger, gatekeeper, sessions, rooms)
	dispatcher := runtime.NewDispatcher(logger, store, rooms)

	if db != nil && logger.Enabled(ctx, slog.LevelDebug) {
		inspector := internal.NewDebugServer(db, config.DebugPort, "/inspect", nil, func() map[string]any {
			return map[string]any{"online_users": sessions.OnlineUsers(), "active_rooms": rooms.RoomCount()}
		})
		go internal.RunDebugServer(ctx, logger, inspector)
	}

	// 5. Background workers
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(
		workers.NewCredentialSweeperWorker(logger, sessions, config.SweepInterval),
		workers.NewPresenceReporterWorker(logger, sessions, rooms, config.PresenceReportInterval),
	)
	supDone := make(chan struct{})
	go func() {
		defer close(supDone)
		sup.Run(ctx)
	}()

	// 6. HTTP & WebSocket
	socket := ws.NewHandler(logger, hub, ws.Config{
		AllowedOrigins:  config.Origins(),
		ReadLimit:       config.WSReadLimit,
		BufferSize:      config.ConnectionBufferSize,
		DeliveryTimeout: config.SinkTimeout,
	})
	server := api.NewServer(logger, gatekeeper, api.Services{
		Auth:          services.NewAuthService(logger, store.Users, tokens, sessions),
		Users:         services.NewUserService(store.Users),
		Candidates:    services.NewCandidateService(store.Candidates),
		Notes:         services.NewNoteService(store, dispatcher),
		Notifications: services.NewNotificationService(logger, store),
	}, config.Origins(), socket)

	httpServer := &http.Server{
		Addr:              config.Addr(),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "address", httpServer.Addr, "store", config.StoreDriver, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	exitCode, runErr := exitOK, error(nil)
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		exitCode, runErr = exitRuntime, err
	}

	// 8. Graceful Shutdown
	// Hijacked WebSocket connections are not tracked by Shutdown: they end with the process.
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	sup.Stop()
	<-supDone
	logger.Info("Program stopped cleanly")

	return exitCode, runErr
}

// openStore opens the configured backend. The Badger handle is returned as
// well so the debug inspector can read it; it is nil for sqlite.
func openStore(config internal.Config, logger *slog.Logger) (repositories.Store, *badger.DB, error) {
	switch config.StoreDriver {
	case internal.StoreSQLite:
		if err := os.MkdirAll(filepath.Dir(config.SQLiteFilepath), 0o755); err != nil {
			return repositories.Store{}, nil, fmt.Errorf("sqlite directory creation failed: %w", err)
		}
		db, err := sqlite.Open(config.SQLiteFilepath)
		if err != nil {
			return repositories.Store{}, nil, fmt.Errorf("sqlite opening failed: %w", err)
		}
		return sqlite.NewStore(db), nil, nil
	default:
		db, err := badger.Open(buildBadgerOpts(config, logger))
		if err != nil {
			return repositories.Store{}, nil, fmt.Errorf("database opening failed: %w", err)
		}
		return repositories.NewBadgerStore(db, logger), db, nil
	}
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}

	return options
}
