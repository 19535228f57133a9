package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodshare/internal/db"
	"foodshare/internal/report"
	"foodshare/internal/server"
	"foodshare/internal/store"

	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP API",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	logger, err := newLogger(config, true)
	if err != nil {
		return err
	}

	provider, err := db.New(config)
	if err != nil {
		return err
	}

	if err := provider.Migrate(ctx); err != nil {
		return err
	}

	source, err := newReportSource(ctx, config)
	if err != nil {
		return err
	}

	listingsRepo := store.NewListingRepository(provider, logger).ValidateProviderRef(config.ValidateProviderRef)
	directoryRepo := store.NewDirectoryRepository(provider, logger)
	reportLoader := report.NewLoader(source, logger)

	srv := server.New(
		config,
		logger,
		provider,
		listingsRepo,
		directoryRepo,
		reportLoader,
	)

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
