package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/toms1010/YACC-2025-Sports-Event-Registration/api"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/bootstrap"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/config"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/registration"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := bootstrap.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := bootstrap.SetupTracing(cfg, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Failed to flush traces", "error", err)
		}
	}()

	store, err := bootstrap.OpenStore(ctx, cfg, loc)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.StoreBackend, err)
	}
	defer store.Close()

	sender, err := bootstrap.EmailSender(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create %s email sender: %w", cfg.EmailProvider, err)
	}

	notifier, err := bootstrap.Notifier(cfg, sender, loc)
	if err != nil {
		return err
	}

	registrar := registration.NewRegistrar(store, notifier, registration.NewIDGenerator(loc), logger)

	env := api.LOCAL
	if cfg.IsProd() {
		env = api.PROD
	}

	handler, err := api.NewAPI(registrar, logger, env, cfg.AllowedOrigins).Handler()
	if err != nil {
		return err
	}

	s := &http.Server{
		Handler:           handler,
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			slog.String("addr", s.Addr),
			slog.String("store", cfg.StoreBackend),
			slog.String("email", cfg.EmailProvider),
		)
		serveErr <- s.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}
