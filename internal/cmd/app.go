// Package cmd contains the subcommands of the ledger binary.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/clubledger/backend/internal/config"
	"github.com/clubledger/backend/internal/ledger"
	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// App is the state shared by all subcommands.
type App struct {
	Config config.Config
	Out    io.Writer // Output of commands, usually stdout
	Err    io.Writer // Error messages, usually stderr
}

// Register the subcommands.
func Register(c *subcommands.Commander, app *App) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&serveCmd{app: app}, "server")
	c.Register(&migrateCmd{app: app}, "server")

	c.Register(&exportYearCmd{app: app}, "fiscal years")
	c.Register(&yearStateCmd{app: app, close: true}, "fiscal years")
	c.Register(&yearStateCmd{app: app, close: false}, "fiscal years")
}

// SetupLogging configures the global zerolog logger.
//
// The log format can be explicitly set. If it is not set, it defaults to
// human readable for development and JSON for release.
func SetupLogging(cfg config.Config, out io.Writer) error {
	gin.SetMode(cfg.GinMode)

	var output io.Writer
	switch strings.ToLower(cfg.LogFormat) {
	case "human":
		output = zerolog.ConsoleWriter{Out: out}
	case "json":
		output = out
	case "":
		output = out
		if gin.IsDebugging() {
			output = zerolog.ConsoleWriter{Out: out}
		}
	default:
		return fmt.Errorf("%w: LOG_FORMAT must be 'human' or 'json', not '%s'", config.ErrInvalidConfig, cfg.LogFormat)
	}

	level := zerolog.InfoLevel
	if gin.IsDebugging() {
		level = zerolog.DebugLevel
	}

	if cfg.LogLevel != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
		if err != nil {
			return fmt.Errorf("%w: LOG_LEVEL: %w", config.ErrInvalidConfig, err)
		}
		level = l
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(output).With().Timestamp().Logger()
	return nil
}

// connect opens the configured database and migrates it.
func (a *App) connect() error {
	if a.Config.DBDriver == config.DriverPostgres {
		return models.ConnectPostgres(a.Config.DBDSN)
	}

	// Create data directory
	err := os.MkdirAll(filepath.Dir(a.Config.DBDSN), os.ModePerm)
	if err != nil {
		return err
	}

	return models.Connect(a.Config.DBDSN)
}

// close closes the database connection.
func (a *App) close() {
	sqlDB, err := models.DB.DB()
	if err != nil {
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("could not close the database")
	}
}

// ledger returns the ledger on the connected database.
func (a *App) ledger() *ledger.Ledger {
	return router.NewController(a.Config, ledger.New(models.DB)).Ledger
}

// fail prints the error and returns the failure status.
func (a *App) fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(a.Err, err)
	return subcommands.ExitFailure
}
