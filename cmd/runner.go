package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/authcb/internal/server"
	"github.com/desertthunder/authcb/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config      *shared.Config
	logger      *log.Logger
	output      io.Writer
	openBrowser shared.BrowserOpener
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config      *shared.Config
	Logger      *log.Logger
	Output      io.Writer
	OpenBrowser shared.BrowserOpener
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.OpenBrowser == nil {
		opts.OpenBrowser = shared.OpenBrowser
	}

	return &Runner{
		config:      opts.Config,
		logger:      opts.Logger,
		output:      opts.Output,
		openBrowser: opts.OpenBrowser,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, checkCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// resolveConfig returns the config named by --config when given, otherwise a copy of the startup config,
// with any directory flags applied.
func (r *Runner) resolveConfig(cmd *cli.Command) (*shared.Config, error) {
	var config shared.Config
	if cmd.IsSet("config") {
		loaded, err := shared.LoadConfig(cmd.String("config"))
		if err != nil {
			return nil, err
		}
		config = *loaded
	} else {
		config = *r.config
	}

	if cmd.IsSet("dir") {
		config.Server.Directory = cmd.String("dir")
	}
	if cmd.IsSet("template") {
		config.Server.Template = cmd.String("template")
	}

	return &config, nil
}

func serverOptions(config *shared.Config) server.Options {
	return server.Options{
		Host:          config.Server.Host,
		Port:          config.Server.Port,
		Directory:     config.Server.Directory,
		Template:      config.Server.Template,
		FragmentParam: config.Server.FragmentParam,
		NoCache:       config.Server.NoCache,
		RateLimit:     config.Server.RateLimit,
	}
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
