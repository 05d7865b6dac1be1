package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/paulchambaz/illiad/internal/library"
	"github.com/paulchambaz/illiad/internal/repositories"
	"github.com/paulchambaz/illiad/internal/server"
)

// Scan runs one full catalog sync and reports how many audiobooks were indexed.
func (r *Runner) Scan(ctx context.Context, cmd *cli.Command) error {
	config := r.resolveConfig(cmd)

	db, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	synchronizer := library.NewSynchronizer(repositories.NewAudiobookRepository(db), r.logger)

	count, err := synchronizer.Sync(config.Library.Data)
	if err != nil {
		return fmt.Errorf("failed to sync catalog: %w", err)
	}

	r.logger.Info("catalog synced", "root", config.Library.Data, "audiobooks", count)
	return nil
}

// Serve applies migrations, runs a full catalog sync, then serves the
// audiobook API until the process is stopped.
//
// The sync completes before the listener opens, so request traffic never
// races the synchronizer.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.resolveConfig(cmd)

	db, err := r.openDatabase(config)
	if err != nil {
		return err
	}
	defer db.Close()

	audiobooks := repositories.NewAudiobookRepository(db)
	positions := repositories.NewPositionRepository(db)
	accounts := repositories.NewAccountRepository(db)

	synchronizer := library.NewSynchronizer(audiobooks, r.logger)
	count, err := synchronizer.Sync(config.Library.Data)
	if err != nil {
		return fmt.Errorf("failed to sync catalog: %w", err)
	}
	r.logger.Info("catalog synced", "root", config.Library.Data, "audiobooks", count)

	router := server.NewBasicRouter()
	router.Use(server.RequestLogger(r.logger), server.AllowAuthHeader())

	api := server.NewAPIHandler(audiobooks, positions, accounts, r.logger)
	router.Handler(api)

	limited := server.RateLimit(1, 5)
	router.Handle("POST", "/login", limited(http.HandlerFunc(api.Login)))
	if config.Server.Register {
		router.Handle("POST", "/register", limited(http.HandlerFunc(api.Register)))
		r.logger.Info("registration endpoint enabled")
	}

	router.NotFound(server.NotFoundHandler())

	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	r.logger.Info("serving audiobook API", "addr", addr)

	if err := http.ListenAndServe(addr, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
