package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/authcb/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if loaded, err := shared.LoadConfig("config.toml"); err == nil {
		config = loaded
	} else if !errors.Is(err, shared.ErrMissingConfig) {
		logger.Warn("failed to load config.toml, using defaults", "error", err)
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "authcb",
		Usage:    "Catch auth provider redirects and hand the URL fragment to a local page",
		Version:  "0.1.0",
		Action:   runner.Serve,
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
