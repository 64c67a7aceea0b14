package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beneficiary-trajectory/internal/adapters/auth/odin"
	"beneficiary-trajectory/internal/adapters/directory/userdir"
	"beneficiary-trajectory/internal/platform/config"
	"beneficiary-trajectory/internal/platform/logger"
	"beneficiary-trajectory/internal/platform/tracing"
	"beneficiary-trajectory/internal/ports/auth"
	"beneficiary-trajectory/internal/router"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Beneficiary Trajectory API
// @version 1.0
// @description Trayectoria unificada de beneficiarios: asistencias a actividades y observaciones de profesionales.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("invalid config", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		ServiceName: cfg.AppName,
		Endpoint:    cfg.Tracing.Endpoint,
		Enabled:     cfg.Tracing.Enabled,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("tracing shutdown failed", map[string]any{"error": err})
		}
	}()

	stores, closeStores, err := router.OpenStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = closeStores() }()

	var verifier auth.AuthVerifier // nil => modo dev
	if cfg.IAMEnabled() {
		client, err := odin.NewClient(odin.Config{BaseURL: cfg.IAM.URL, APIKey: cfg.IAM.APIKey})
		if err != nil {
			return err
		}
		verifier = odin.NewVerifier(client)
	} else {
		log.Warn("IAM_URL not set, accepting X-Debug-User-* headers", nil)
	}

	opts := router.Options{
		AuthVerifier: verifier,
		Stores:       &stores,
		Logger:       log,
		Location:     loc,
		Registry:     prometheus.NewRegistry(),
	}
	opts.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if cfg.UserDirectoryEnabled() {
		dir, err := userdir.New(userdir.Config{
			BaseURL:  cfg.UserDirectory.URL,
			APIKey:   cfg.UserDirectory.APIKey,
			Timeout:  cfg.UserDirectory.Timeout,
			CacheTTL: cfg.UserDirectory.CacheTTL,
		})
		if err != nil {
			return err
		}
		opts.ActorDirectory = dir
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "timezone": loc.String()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
