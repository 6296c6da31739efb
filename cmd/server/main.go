package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/reservations/internal/booking"
	"github.com/mmynk/reservations/internal/config"
	"github.com/mmynk/reservations/internal/metrics"
	"github.com/mmynk/reservations/internal/middleware"
	"github.com/mmynk/reservations/internal/service"
	"github.com/mmynk/reservations/internal/storage"
	"github.com/mmynk/reservations/internal/storage/memory"
	"github.com/mmynk/reservations/internal/storage/sqlite"
	"github.com/mmynk/reservations/pkg/api"
	"github.com/mmynk/reservations/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Configuration loaded", "config", cfg)

	store, err := newStore(cfg.StoreBackend)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "backend", cfg.StoreBackend)

	m := metrics.New()
	reservations := service.NewReservationService(booking.NewService(store), m, cfg.Location)

	mux := http.NewServeMux()

	// Register Connect services
	path, handler := api.NewReservationServiceHandler(reservations,
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)
	mux.Handle(path, handler)
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: h2c.NewHandler(middleware.RequestLogger(middleware.CORS(mux)), &http2.Server{}),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Connect server starting", "address", server.Addr, "url", fmt.Sprintf("http://localhost%s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

// newStore opens the configured backend. Both keep data in memory only.
func newStore(backend string) (storage.Store, error) {
	switch backend {
	case config.BackendSQLite:
		return sqlite.New()
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", backend)
	}
}
