package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/desertthunder/authcb/internal/server"
	"github.com/desertthunder/authcb/internal/shared"
	"github.com/desertthunder/authcb/internal/ui"
	"github.com/urfave/cli/v3"
)

// Serve starts the callback server and blocks until interrupted.
//
// The port is bound before the browser is opened.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config, err := r.resolveConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.IsSet("host") {
		config.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		config.Server.Port = cmd.Int("port")
	}
	if cmd.IsSet("fragment-param") {
		config.Server.FragmentParam = cmd.String("fragment-param")
	}
	if cmd.Bool("no-browser") {
		config.Server.OpenBrowser = false
	}

	if err := config.Validate(); err != nil {
		return err
	}

	level, _ := config.Level()
	shared.SetLogLevel(r.logger, level)

	if err := checkDirectory(config.Server.Directory); err != nil {
		return err
	}

	templatePath := filepath.Join(config.Server.Directory, config.Server.Template)
	if _, err := os.Stat(templatePath); errors.Is(err, fs.ErrNotExist) {
		r.logger.Warn("callback template missing, / will answer 404", "path", templatePath)
	}

	srv := server.New(serverOptions(config), r.logger)
	ln, err := srv.Listen()
	if err != nil {
		return err
	}

	r.writePlain("%s", ui.Banner{
		URL:           srv.URL(),
		Directory:     config.Server.Directory,
		Template:      config.Server.Template,
		FragmentParam: config.Server.FragmentParam,
	}.Render())

	if config.Server.OpenBrowser {
		if err := r.openBrowser(srv.URL()); err != nil {
			r.logger.Warn("failed to open browser automatically", "error", err)
			r.writePlain("%s", ui.BrowserFailed(srv.URL()))
		} else {
			r.writePlain("%s", ui.BrowserOpened())
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = srv.Serve(ctx, ln)
	r.writePlain("%s", ui.Stopped())
	return err
}

func checkDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: serving directory %s: %v", shared.ErrInvalidConfig, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: serving directory %s is not a directory", shared.ErrInvalidConfig, dir)
	}
	return nil
}
