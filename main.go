package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/clubledger/backend/internal/cmd"
	"github.com/clubledger/backend/internal/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, the configuration
	// defaults to release for security reasons
	if err := cmd.SetupLogging(cfg, os.Stdout); err != nil {
		log.Fatal().Msg(err.Error())
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander, &cmd.App{
		Config: cfg,
		Out:    os.Stdout,
		Err:    os.Stderr,
	})

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
