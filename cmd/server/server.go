package server

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/martinsuchenak/orbitd/internal/analytics"
	"github.com/martinsuchenak/orbitd/internal/api"
	"github.com/martinsuchenak/orbitd/internal/config"
	"github.com/martinsuchenak/orbitd/internal/log"
	"github.com/martinsuchenak/orbitd/internal/mcp"
	"github.com/martinsuchenak/orbitd/internal/store"
	"github.com/martinsuchenak/orbitd/internal/ui"
	"github.com/martinsuchenak/orbitd/internal/worker"
	"github.com/paularlott/cli"
)

// RunServer starts the orbitd server with the given configuration
func RunServer(cfg *config.Config) error {
	// Generate the session fleet
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
		log.Info("Generating fleet with fixed seed", "seed", cfg.Seed, "size", cfg.FleetSize)
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		log.Info("Generating fleet", "size", cfg.FleetSize)
	}

	st, err := store.New(store.Generate(cfg.FleetSize, rng))
	if err != nil {
		log.Error("Failed to build terminal store", "error", err)
		return err
	}
	log.Info("Terminal store ready", "terminals", st.Count())

	engine := analytics.NewEngine(st, nil)
	sessions := api.NewSessionStore()
	apiHandler := api.NewHandler(st, engine, sessions, cfg.PasswordHash)
	mcpServer := mcp.NewServer(st, engine, cfg.MCPAuthToken)

	// Optional background snapshot reporter
	if cfg.SnapshotEnabled {
		reporter := worker.NewReporter(st, cfg.SnapshotSchedule)
		if err := reporter.Start(); err != nil {
			log.Error("Failed to start snapshot reporter", "error", err)
			return err
		}
		defer reporter.Stop()
	}

	// Setup HTTP routes
	mux := http.NewServeMux()
	apiHandler.RegisterRoutes(mux)
	mux.HandleFunc("/mcp", mcpServer.GetHTTPHandler())

	// Serve web UI at root (handles all / and /assets/* requests)
	mux.Handle("/", ui.AssetHandler())

	// Apply middleware
	var handler http.Handler = mux
	if cfg.IsAPIAuthEnabled() {
		handler = api.AuthMiddleware(cfg.APIAuthToken, sessions, handler)
	}
	handler = api.SecurityHeadersMiddleware(handler)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: handler,
	}

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Info("Shutting down server...")
		server.Close()
	}()

	// Log startup info
	log.Info("Starting orbitd server", "addr", cfg.ListenAddr)
	log.Info("Dashboard available", "url", "http://localhost"+cfg.ListenAddr)
	log.Info("API available", "url", "http://localhost"+cfg.ListenAddr+"/api/")
	log.Info("MCP available", "url", "http://localhost"+cfg.ListenAddr+"/mcp")
	if cfg.IsAPIAuthEnabled() {
		log.Info("API authentication enabled")
	}
	if cfg.IsLoginGateEnabled() {
		log.Info("Dashboard login gate enabled")
	}
	mcpServer.LogStartup()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("Server error", "error", err)
		return err
	}

	log.Info("Server stopped")
	return nil
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "server",
		Usage:       "Start the orbitd server",
		Description: "Start the HTTP server with the dashboard UI, JSON API, and MCP endpoint",
		Flags:       config.GetFlags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.FromCommand(cmd)
			log.Info("Configuration loaded", "listen_addr", cfg.ListenAddr, "fleet_size", cfg.FleetSize)
			return RunServer(cfg)
		},
	}
}
