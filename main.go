package main

import (
	"context"
	"os"

	"github.com/martinsuchenak/orbitd/cmd/fleet"
	"github.com/martinsuchenak/orbitd/cmd/passwd"
	"github.com/martinsuchenak/orbitd/cmd/server"
	"github.com/martinsuchenak/orbitd/internal/log"
	"github.com/paularlott/cli"
	"github.com/paularlott/cli/env"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Load .env file if it exists
	env.Load()

	// Initialize structured logging
	log.Configure("info", "console")

	rootCmd := &cli.Command{
		Name:        "orbitd",
		Version:     version,
		Usage:       "Payment terminal fleet operations dashboard",
		Description: "Serves the fleet dashboard with a JSON API, MCP endpoint, and CLI for filtering and analytics over the terminal fleet",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:         "log-level",
				Usage:        "Log level (trace, debug, info, warn, error)",
				DefaultValue: "info",
				EnvVars:      []string{"ORBITD_LOG_LEVEL"},
				Global:       true,
			},
			&cli.StringFlag{
				Name:         "log-format",
				Usage:        "Log format (console, json)",
				DefaultValue: "console",
				EnvVars:      []string{"ORBITD_LOG_FORMAT"},
				Global:       true,
			},
		},
		PreRun: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logLevel := cmd.GetString("log-level")
			logFormat := cmd.GetString("log-format")
			log.Configure(logLevel, logFormat)
			return ctx, nil
		},
		Commands: []*cli.Command{
			server.Command(),
			{
				Name:        "fleet",
				Usage:       "Fleet query commands",
				Description: "Inspect and filter the terminal fleet on a running server",
				Commands:    fleet.Commands(),
			},
			passwd.Command(),
		},
	}

	if err := rootCmd.Execute(context.Background()); err != nil {
		log.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
