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

// setupCommand initializes the store
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Initialize database and run migrations",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// scanCommand runs one full catalog sync
func scanCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: "Scan the audiobook library into the catalog",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Path to the audiobook library root",
			},
			&cli.StringFlag{
				Name:    "sql",
				Aliases: []string{"s"},
				Usage:   "Path to the sqlite database",
			},
		},
		Action: r.Scan,
	}
}

// serveCommand runs the HTTP server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Sync the catalog and serve the audiobook API",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Path to the audiobook library root",
			},
			&cli.StringFlag{
				Name:    "sql",
				Aliases: []string{"s"},
				Usage:   "Path to the sqlite database",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to bind to",
			},
			&cli.StringFlag{
				Name:    "address",
				Aliases: []string{"a"},
				Usage:   "Address to bind to",
			},
			&cli.BoolFlag{
				Name:    "register",
				Aliases: []string{"r"},
				Usage:   "Mount the account registration endpoint",
			},
		},
		Action: r.Serve,
	}
}

// catalogCommand inspects the indexed catalog
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Catalog operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List indexed audiobooks",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "sql",
						Aliases: []string{"s"},
						Usage:   "Path to the sqlite database",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CatalogList,
			},
		},
	}
}

// browseCommand launches the interactive catalog browser
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Browse the indexed catalog interactively",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "sql",
				Aliases: []string{"s"},
				Usage:   "Path to the sqlite database",
			},
		},
		Action: r.Browse,
	}
}
