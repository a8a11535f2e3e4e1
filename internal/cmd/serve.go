package cmd

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clubledger/backend/internal/router"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// shutdownTimeout is how long running requests may take after a
// shutdown signal.
const shutdownTimeout = 10 * time.Second

type serveCmd struct {
	app *App
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the HTTP API" }
func (*serveCmd) Usage() string {
	return `serve

  Connects to the database, migrates it and serves the HTTP API on PORT
  until an interrupt or SIGTERM is received.
`
}

func (*serveCmd) SetFlags(*flag.FlagSet) {}

func (s *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := s.app.connect(); err != nil {
		return s.app.fail(err)
	}
	defer s.app.close()

	r, teardown, err := router.Config(s.app.Config)
	defer teardown()
	if err != nil {
		return s.app.fail(err)
	}
	router.AttachRoutes(s.app.Config, router.NewController(s.app.Config, s.app.ledger()), r.Group("/"))

	server := &http.Server{
		Addr:              ":" + s.app.Config.Port,
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	log.Info().Str("addr", server.Addr).Msg("starting server")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return s.app.fail(err)
	}

	log.Info().Msg("server stopped")
	return subcommands.ExitSuccess
}

type migrateCmd struct {
	app *App
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "migrate the database schema and exit" }
func (*migrateCmd) Usage() string {
	return `migrate

  Connects to the database and migrates the schema to the current version.
`
}

func (*migrateCmd) SetFlags(*flag.FlagSet) {}

func (m *migrateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := m.app.connect(); err != nil {
		return m.app.fail(err)
	}
	defer m.app.close()

	log.Info().Str("driver", m.app.Config.DBDriver).Msg("database migrated")
	return subcommands.ExitSuccess
}
