package main

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/authcb/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the example configuration to the --config path.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Configuration written to %s\n", path)
}

// ConfigSave writes the resolved configuration, with --port/--dir/--template applied, to --output.
func (r *Runner) ConfigSave(ctx context.Context, cmd *cli.Command) error {
	config, err := r.resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.IsSet("port") {
		config.Server.Port = cmd.Int("port")
	}

	if err := config.Validate(); err != nil {
		return err
	}

	path := cmd.String("output")
	if err := shared.SaveConfig(path, config); err != nil {
		return err
	}

	r.logger.Info("config file saved", "path", path)
	return r.writePlain("✓ Configuration saved to %s\n", path)
}

// ConfigShow prints the effective configuration as TOML.
func (r *Runner) ConfigShow(ctx context.Context, cmd *cli.Command) error {
	config, err := r.resolveConfig(cmd)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(r.output).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
