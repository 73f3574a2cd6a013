// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func directoryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Directory to serve",
		},
		&cli.StringFlag{
			Name:  "template",
			Usage: "Callback page served for / (file name inside --dir)",
		},
	}
}

func serveFlags() []cli.Flag {
	return append([]cli.Flag{
		configFlag(),
		&cli.StringFlag{
			Name:  "host",
			Usage: "Interface to bind (empty for all interfaces)",
		},
		&cli.IntFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "TCP port to listen on",
		},
		&cli.BoolFlag{
			Name:  "no-browser",
			Usage: "Do not open a browser on start",
		},
		&cli.StringFlag{
			Name:  "fragment-param",
			Usage: "Query parameter that may carry the URL fragment",
		},
	}, directoryFlags()...)
}

// serveCommand starts the callback server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the auth callback page and static files",
		Flags:   serveFlags(),
		Action:  r.Serve,
	}
}

// checkCommand inspects the callback template
func checkCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "Verify the callback template contains the fragment placeholder",
		Flags:  append([]cli.Flag{configFlag()}, directoryFlags()...),
		Action: r.Check,
	}
}

// configCommand handles configuration file operations
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write an example config.toml",
				Flags:  []cli.Flag{configFlag()},
				Action: r.ConfigInit,
			},
			{
				Name:  "save",
				Usage: "Write the effective configuration, including flag overrides, to a file",
				Flags: append([]cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Destination file",
						Value:   "config.toml",
					},
					&cli.IntFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Usage:   "TCP port to listen on",
					},
				}, directoryFlags()...),
				Action: r.ConfigSave,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration",
				Flags:  []cli.Flag{configFlag()},
				Action: r.ConfigShow,
			},
		},
	}
}
