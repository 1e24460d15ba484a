package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/valbrand/crm-backend/internal/config"
	"github.com/valbrand/crm-backend/internal/observability"
)

type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	Server        *http.Server
	Observability *observability.Runtime
}

func New(cfg *config.Config, logger *slog.Logger, server *http.Server, runtime *observability.Runtime) *App {
	return &App{Config: cfg, Logger: logger, Server: server, Observability: runtime}
}

// Run serves HTTP until the context is cancelled or an interrupt arrives,
// then drains the server and flushes telemetry within the shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.InfoContext(ctx, "http server listening", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
		defer cancel()
		a.Logger.InfoContext(shutdownCtx, "shutting down")
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if a.Observability != nil {
			if err := a.Observability.Shutdown(shutdownCtx); err != nil {
				a.Logger.ErrorContext(shutdownCtx, "observability shutdown", "error", err)
			}
		}
		return nil
	})
	return g.Wait()
}
