package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/paularlott/cli"
)

// Config holds the application configuration
type Config struct {
	ListenAddr       string
	APIAuthToken     string
	MCPAuthToken     string
	PasswordHash     string // bcrypt hash gating the dashboard login
	FleetSize        int
	Seed             int64 // 0 generates a fresh fleet each start
	SnapshotSchedule string
	SnapshotEnabled  bool
}

// Load builds configuration from environment variables over defaults. The
// paularlott/cli env loader has already folded any .env file into the
// process environment, and flags declared in GetFlags share the same
// ORBITD_* variables.
func Load() *Config {
	return &Config{
		ListenAddr:       coalesce(os.Getenv("ORBITD_LISTEN_ADDR"), ":8080"),
		APIAuthToken:     os.Getenv("ORBITD_API_TOKEN"),
		MCPAuthToken:     os.Getenv("ORBITD_MCP_TOKEN"),
		PasswordHash:     os.Getenv("ORBITD_PASSWORD_HASH"),
		FleetSize:        envInt("ORBITD_FLEET_SIZE", 1500),
		Seed:             int64(envInt("ORBITD_SEED", 0)),
		SnapshotSchedule: coalesce(os.Getenv("ORBITD_SNAPSHOT_SCHEDULE"), "@every 15m"),
		SnapshotEnabled:  envBool("ORBITD_SNAPSHOT_ENABLED", false),
	}
}

// FromCommand overlays flag values onto the environment-derived config.
func FromCommand(cmd *cli.Command) *Config {
	cfg := Load()
	if v := cmd.GetString("listen"); v != "" {
		cfg.ListenAddr = v
	}
	if v := cmd.GetString("api-token"); v != "" {
		cfg.APIAuthToken = v
	}
	if v := cmd.GetString("mcp-token"); v != "" {
		cfg.MCPAuthToken = v
	}
	if v := cmd.GetString("password-hash"); v != "" {
		cfg.PasswordHash = v
	}
	if v := cmd.GetString("fleet-size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FleetSize = n
		}
	}
	if v := cmd.GetString("seed"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := cmd.GetString("snapshot-schedule"); v != "" {
		cfg.SnapshotSchedule = v
	}
	if cmd.GetBool("snapshot") {
		cfg.SnapshotEnabled = true
	}
	return cfg
}

// GetFlags returns the server command flags
func GetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "listen",
			Usage:   "Address to listen on (host:port)",
			EnvVars: []string{"ORBITD_LISTEN_ADDR"},
		},
		&cli.StringFlag{
			Name:    "api-token",
			Usage:   "Bearer token protecting the API (empty disables auth)",
			EnvVars: []string{"ORBITD_API_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "mcp-token",
			Usage:   "Bearer token protecting the MCP endpoint",
			EnvVars: []string{"ORBITD_MCP_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "password-hash",
			Usage:   "Bcrypt hash for the dashboard login gate (see hash-password)",
			EnvVars: []string{"ORBITD_PASSWORD_HASH"},
		},
		&cli.StringFlag{
			Name:    "fleet-size",
			Usage:   "Number of terminals to generate",
			EnvVars: []string{"ORBITD_FLEET_SIZE"},
		},
		&cli.StringFlag{
			Name:    "seed",
			Usage:   "Random seed for fleet generation (0 = random)",
			EnvVars: []string{"ORBITD_SEED"},
		},
		&cli.StringFlag{
			Name:    "snapshot-schedule",
			Usage:   "Cron schedule for the fleet snapshot reporter",
			EnvVars: []string{"ORBITD_SNAPSHOT_SCHEDULE"},
		},
		&cli.BoolFlag{
			Name:    "snapshot",
			Usage:   "Enable the periodic fleet snapshot reporter",
			EnvVars: []string{"ORBITD_SNAPSHOT_ENABLED"},
		},
	}
}

// IsAPIAuthEnabled checks if API authentication is configured
func (c *Config) IsAPIAuthEnabled() bool {
	return c.APIAuthToken != ""
}

// IsLoginGateEnabled checks if the dashboard login gate is configured
func (c *Config) IsLoginGateEnabled() bool {
	return c.PasswordHash != ""
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid %s value %q, using %d\n", key, v, fallback)
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// coalesce returns the first non-empty string value
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
