package mcp

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/martinsuchenak/orbitd/internal/analytics"
	"github.com/martinsuchenak/orbitd/internal/filter"
	"github.com/martinsuchenak/orbitd/internal/log"
	"github.com/martinsuchenak/orbitd/internal/model"
	"github.com/martinsuchenak/orbitd/internal/store"
	"github.com/paularlott/mcp"
)

// Server wraps the MCP server with the terminal store and analytics engine
type Server struct {
	mcpServer   *mcp.Server
	store       *store.Store
	engine      *analytics.Engine
	bearerToken string
}

// NewServer creates a new MCP server for fleet operations
func NewServer(st *store.Store, engine *analytics.Engine, bearerToken string) *Server {
	s := &Server{
		mcpServer:   mcp.NewServer("orbitd", "1.0.0"),
		store:       st,
		engine:      engine,
		bearerToken: bearerToken,
	}
	s.registerTools()
	return s
}

// registerTools registers all fleet tools
func (s *Server) registerTools() {
	// terminal_get - Get a terminal by ID
	s.mcpServer.RegisterTool(
		mcp.NewTool("terminal_get", "Get a payment terminal by its ID (e.g. T-10042)",
			mcp.String("id", "Terminal ID", mcp.Required()),
		),
		s.handleTerminalGet,
	)

	// terminal_list - List terminals with facet filters and searches
	s.mcpServer.RegisterTool(
		mcp.NewTool("terminal_list", "List terminals, optionally narrowed by facet selections and searches. Facet values OR within a facet and AND across facets; group ids select all children.",
			mcp.StringArray("acquirers", "Acquirer ids (cba, anz, westpac, nab, fiserv, first_data)"),
			mcp.StringArray("orbit_types", "Orbit type ids (standalone, standalone_plus, integrated, integrated_plus)"),
			mcp.StringArray("pos_connections", "POS connection ids or vendor group ids"),
			mcp.StringArray("hardware", "Hardware model ids or vendor group ids"),
			mcp.StringArray("vas", "Value-added-service ids or category group ids; matches enabled services only"),
			mcp.StringArray("features", "Terminal feature ids"),
			mcp.StringArray("statuses", "Statuses (online, offline, maintenance, low_battery)"),
			mcp.String("merchant", "Case-insensitive substring match on merchant name"),
			mcp.String("industry", "Case-insensitive substring match on industry"),
			mcp.String("limit", "Maximum number of terminals to print (default 20)"),
		),
		s.handleTerminalList,
	)

	// fleet_stats - Fleet summary plus distributions
	s.mcpServer.RegisterTool(
		mcp.NewTool("fleet_stats", "Fleet overview: online/offline counts, status distribution, total volume, average uptime, and revenue by industry"),
		s.handleFleetStats,
	)

	// top_merchants - Merchants ranked by volume
	s.mcpServer.RegisterTool(
		mcp.NewTool("top_merchants", "Merchants ranked by total daily volume, descending",
			mcp.String("limit", "Number of merchants to return (default 5)"),
		),
		s.handleTopMerchants,
	)

	// terminal_insights - Per-terminal activity series
	s.mcpServer.RegisterTool(
		mcp.NewTool("terminal_insights", "Activity insights for one terminal over a period",
			mcp.String("id", "Terminal ID", mcp.Required()),
			mcp.String("period", "One of: day, week, month, year (default day)"),
		),
		s.handleTerminalInsights,
	)

	// vas_toggle - Flip a value-added service on a terminal
	s.mcpServer.RegisterTool(
		mcp.NewTool("vas_toggle", "Toggle a value-added service on a terminal",
			mcp.String("id", "Terminal ID", mcp.Required()),
			mcp.String("vas_id", "VAS id to toggle (e.g. afterpay, qantas)", mcp.Required()),
		),
		s.handleVASToggle,
	)
}

// HandleRequest handles MCP HTTP requests with optional bearer token authentication
func (s *Server) HandleRequest(w http.ResponseWriter, r *http.Request) {
	log.Debug("MCP request received", "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr)

	// Check bearer token if configured
	if s.bearerToken != "" {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			log.Warn("MCP request missing Authorization header", "remote_addr", r.RemoteAddr)
			http.Error(w, "Unauthorized: Missing Authorization header", http.StatusUnauthorized)
			return
		}
		if !strings.HasPrefix(auth, "Bearer ") {
			log.Warn("MCP request invalid Authorization format", "remote_addr", r.RemoteAddr)
			http.Error(w, "Unauthorized: Invalid Authorization format", http.StatusUnauthorized)
			return
		}
		token := strings.TrimPrefix(auth, "Bearer ")
		if token != s.bearerToken {
			log.Warn("MCP request invalid token", "remote_addr", r.RemoteAddr)
			http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}
	}

	s.mcpServer.HandleRequest(w, r)
}

// Tool handlers

func (s *Server) handleTerminalGet(ctx context.Context, req *mcp.ToolRequest) (*mcp.ToolResponse, error) {
	id, err := req.String("id")
	if err != nil {
		log.Warn("MCP terminal get - missing ID", "error", err)
		return nil, mcp.NewToolErrorInvalidParams("id is required: " + err.Error())
	}

	log.Debug("MCP terminal get request", "id", id)
	terminal, err := s.store.Get(id)
	if err != nil {
		log.Error("MCP terminal get failed", "error", err, "id", id)
		return nil, mcp.NewToolErrorInternal("terminal not found: " + err.Error())
	}

	return mcp.NewToolResponseText(s.formatTerminalSummary(terminal)), nil
}

func (s *Server) handleTerminalList(ctx context.Context, req *mcp.ToolRequest) (*mcp.ToolResponse, error) {
	criteria := model.FilterCriteria{
		MerchantSearch: req.StringOr("merchant", ""),
		IndustrySearch: req.StringOr("industry", ""),
	}
	criteria.Acquirers, _ = req.StringSlice("acquirers")
	criteria.OrbitTypes, _ = req.StringSlice("orbit_types")
	criteria.PosConnections, _ = req.StringSlice("pos_connections")
	criteria.Hardware, _ = req.StringSlice("hardware")
	criteria.VAS, _ = req.StringSlice("vas")
	criteria.Features, _ = req.StringSlice("features")
	criteria.Statuses, _ = req.StringSlice("statuses")

	limit := 20
	if raw := req.StringOr("limit", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, mcp.NewToolErrorInvalidParams("limit must be a positive integer")
		}
		limit = n
	}

	terminals := s.store.GetAll()
	matched := filter.Apply(terminals, criteria)
	log.Debug("MCP terminal list", "matched", len(matched), "total", len(terminals))

	if len(matched) == 0 {
		return mcp.NewToolResponseText("No terminals match the given filters"), nil
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Matched %d of %d terminals", len(matched), len(terminals)))
	if len(matched) > limit {
		result.WriteString(fmt.Sprintf(" (showing first %d)", limit))
		matched = matched[:limit]
	}
	result.WriteString(":\n\n")
	for i := range matched {
		result.WriteString(s.formatTerminalSummary(&matched[i]))
		result.WriteString("\n")
	}

	return mcp.NewToolResponseText(result.String()), nil
}

func (s *Server) handleFleetStats(ctx context.Context, req *mcp.ToolRequest) (*mcp.ToolResponse, error) {
	terminals := s.store.GetAll()
	summary := analytics.Summarize(terminals)
	dist := analytics.StatusDistribution(terminals)
	revenue := analytics.RevenueByCategory(terminals)

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Fleet: %d terminals (%d online, %d offline)\n", summary.Total, summary.Online, summary.Offline))
	result.WriteString(fmt.Sprintf("Total daily volume: $%d\n", summary.TotalVolume))
	result.WriteString(fmt.Sprintf("Average uptime: %.1f%%\n\n", summary.AverageUptime))

	result.WriteString("Status distribution:\n")
	for _, status := range model.Statuses {
		if count, ok := dist[status]; ok {
			result.WriteString(fmt.Sprintf("  %s: %d\n", status, count))
		}
	}

	result.WriteString("\nRevenue by industry:\n")
	for _, category := range model.MerchantTypes {
		if volume, ok := revenue[category]; ok {
			result.WriteString(fmt.Sprintf("  %s: $%d\n", category, volume))
		}
	}

	return mcp.NewToolResponseText(result.String()), nil
}

func (s *Server) handleTopMerchants(ctx context.Context, req *mcp.ToolRequest) (*mcp.ToolResponse, error) {
	limit := 5
	if raw := req.StringOr("limit", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, mcp.NewToolErrorInvalidParams("limit must be a positive integer")
		}
		limit = n
	}

	rows := analytics.TopMerchants(s.store.GetAll(), limit)
	if len(rows) == 0 {
		return mcp.NewToolResponseText("No merchants found"), nil
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Top %d merchants by volume:\n\n", len(rows)))
	for i, row := range rows {
		result.WriteString(fmt.Sprintf("%d. %s\n", i+1, row.Name))
		result.WriteString(fmt.Sprintf("   Terminals: %d, Volume: $%d, Avg uptime: %.1f%%\n", row.TerminalCount, row.TotalVolume, row.AverageUptime))
	}

	return mcp.NewToolResponseText(result.String()), nil
}

func (s *Server) handleTerminalInsights(ctx context.Context, req *mcp.ToolRequest) (*mcp.ToolResponse, error) {
	id, err := req.String("id")
	if err != nil {
		return nil, mcp.NewToolErrorInvalidParams("id is required: " + err.Error())
	}

	period, err := analytics.ParsePeriod(req.StringOr("period", string(analytics.PeriodDay)))
	if err != nil {
		return nil, mcp.NewToolErrorInvalidParams("period must be one of: day, week, month, year")
	}

	bundle, err := s.engine.Insights(id, period)
	if err != nil {
		log.Error("MCP terminal insights failed", "error", err, "id", id, "period", period)
		return nil, mcp.NewToolErrorInternal("failed to get insights: " + err.Error())
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Insights for %s (%s):\n", bundle.TerminalID, bundle.Period))
	result.WriteString(fmt.Sprintf("  Uptime: %.1f%%\n", bundle.UptimePercent))
	result.WriteString(fmt.Sprintf("  Total volume: $%d over %d samples\n", bundle.TotalVolume, len(bundle.Series)))
	result.WriteString(fmt.Sprintf("  Approval rate: %.1f%%\n", bundle.ApprovalRate))
	if bundle.TopFeature != "" {
		result.WriteString(fmt.Sprintf("  Top feature: %s\n", bundle.TopFeature))
	}

	return mcp.NewToolResponseText(result.String()), nil
}

func (s *Server) handleVASToggle(ctx context.Context, req *mcp.ToolRequest) (*mcp.ToolResponse, error) {
	id, err := req.String("id")
	if err != nil {
		return nil, mcp.NewToolErrorInvalidParams("id is required: " + err.Error())
	}

	vasID, err := req.String("vas_id")
	if err != nil {
		return nil, mcp.NewToolErrorInvalidParams("vas_id is required: " + err.Error())
	}

	log.Debug("MCP vas toggle request", "id", id, "vas_id", vasID)
	terminal, err := s.store.ToggleVASFeature(id, vasID)
	if err != nil {
		log.Error("MCP vas toggle failed", "error", err, "id", id, "vas_id", vasID)
		return nil, mcp.NewToolErrorInternal("failed to toggle vas: " + err.Error())
	}

	state := "disabled"
	for _, vas := range terminal.VASFeatures {
		if vas.ID == vasID && vas.Enabled {
			state = "enabled"
		}
	}

	log.Info("MCP vas toggled", "id", id, "vas_id", vasID, "state", state)
	return mcp.NewToolResponseText(fmt.Sprintf("%s is now %s on %s", vasID, state, terminal.ID)), nil
}

// Utility functions

func (s *Server) formatTerminalSummary(t *model.Terminal) string {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("ID: %s (%s)\n", t.ID, t.Status))
	result.WriteString(fmt.Sprintf("Merchant: %s (%s)\n", t.MerchantName, t.MerchantType))
	result.WriteString(fmt.Sprintf("Location: %s\n", t.Location))
	result.WriteString(fmt.Sprintf("Acquirer: %s, Orbit: %s\n", t.Acquirer, t.OrbitType))
	result.WriteString(fmt.Sprintf("Hardware: %s %s\n", t.HardwareBrand, t.HardwareModel))
	if t.PosConnection != "" {
		result.WriteString(fmt.Sprintf("POS: %s\n", t.PosConnection))
	}
	if len(t.Features) > 0 {
		result.WriteString(fmt.Sprintf("Features: %s\n", strings.Join(t.Features, ", ")))
	}
	result.WriteString(fmt.Sprintf("Volume: $%d, Uptime: %.1f%%\n", t.Volume, t.Uptime))
	if len(t.VASFeatures) > 0 {
		var enabled []string
		for _, vas := range t.VASFeatures {
			if vas.Enabled {
				enabled = append(enabled, vas.ID)
			}
		}
		if len(enabled) > 0 {
			result.WriteString(fmt.Sprintf("Enabled VAS: %s\n", strings.Join(enabled, ", ")))
		}
	}
	return result.String()
}

// GetHTTPHandler returns the HTTP handler for the MCP server
func (s *Server) GetHTTPHandler() http.HandlerFunc {
	return s.HandleRequest
}

// LogStartup logs MCP server startup information
func (s *Server) LogStartup() {
	log.Info("MCP Server initialized", "version", "1.0.0")
	if s.bearerToken != "" {
		log.Info("MCP authentication enabled", "type", "Bearer token")
	} else {
		log.Info("MCP authentication disabled")
	}
	tools := s.mcpServer.ListTools()
	log.Info("MCP tools registered", "count", len(tools))
	for _, tool := range tools {
		log.Debug("MCP tool registered", "name", tool.Name, "description", tool.Description)
	}
}
