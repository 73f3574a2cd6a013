package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/desertthunder/authcb/internal/server"
	"github.com/desertthunder/authcb/internal/ui"
	"github.com/urfave/cli/v3"
)

// Check inspects the configured callback template and reports placeholder problems.
func (r *Runner) Check(ctx context.Context, cmd *cli.Command) error {
	config, err := r.resolveConfig(cmd)
	if err != nil {
		return err
	}

	path := filepath.Join(config.Server.Directory, config.Server.Template)
	r.logger.Debug("inspecting callback template", "path", path)

	report, err := server.InspectTemplate(path)
	if err != nil {
		return err
	}

	problems := report.Problems()
	r.writePlain("%s", ui.TemplateCheck(report.Path, report.Size, report.Scripts, report.Occurrences, problems))

	if err := report.Err(); err != nil {
		return fmt.Errorf("template %s: %w", path, err)
	}
	return nil
}
