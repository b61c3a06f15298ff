package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/martinsuchenak/orbitd/internal/analytics"
	"github.com/martinsuchenak/orbitd/internal/filter"
	"github.com/martinsuchenak/orbitd/internal/log"
	"github.com/martinsuchenak/orbitd/internal/model"
	"github.com/martinsuchenak/orbitd/internal/store"
)

// Handler handles HTTP requests for the dashboard API
type Handler struct {
	store        *store.Store
	engine       *analytics.Engine
	sessions     *SessionStore
	passwordHash string
}

// NewHandler creates a new API handler
func NewHandler(st *store.Store, engine *analytics.Engine, sessions *SessionStore, passwordHash string) *Handler {
	return &Handler{
		store:        st,
		engine:       engine,
		sessions:     sessions,
		passwordHash: passwordHash,
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Terminals
	mux.HandleFunc("GET /api/terminals", h.listTerminals)
	mux.HandleFunc("POST /api/terminals/filter", h.filterTerminals)
	mux.HandleFunc("GET /api/terminals/{id}", h.getTerminal)
	mux.HandleFunc("POST /api/terminals/{id}/vas/{vasId}/toggle", h.toggleVAS)
	mux.HandleFunc("GET /api/terminals/{id}/insights", h.terminalInsights)

	// Aggregates
	mux.HandleFunc("GET /api/analytics/status", h.statusDistribution)
	mux.HandleFunc("GET /api/analytics/revenue", h.revenueByCategory)
	mux.HandleFunc("GET /api/analytics/top-merchants", h.topMerchants)
	mux.HandleFunc("GET /api/analytics/summary", h.fleetSummary)

	// Sidebar catalogs and login gate
	mux.HandleFunc("GET /api/facets", h.listFacets)
	mux.HandleFunc("POST /api/session", h.createSession)
}

// filterResponse is the envelope for filtered listings
type filterResponse struct {
	Terminals []model.Terminal `json:"terminals"`
	Matched   int              `json:"matched"`
	Total     int              `json:"total"`
}

// listTerminals handles GET /api/terminals, with optional facet query params
func (h *Handler) listTerminals(w http.ResponseWriter, r *http.Request) {
	terminals := h.store.GetAll()
	criteria := criteriaFromQuery(r)

	matched := filter.Apply(terminals, criteria)
	h.writeJSON(w, http.StatusOK, filterResponse{
		Terminals: matched,
		Matched:   len(matched),
		Total:     len(terminals),
	})
}

// filterTerminals handles POST /api/terminals/filter
func (h *Handler) filterTerminals(w http.ResponseWriter, r *http.Request) {
	var criteria model.FilterCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	terminals := h.store.GetAll()
	matched := filter.Apply(terminals, criteria)
	h.writeJSON(w, http.StatusOK, filterResponse{
		Terminals: matched,
		Matched:   len(matched),
		Total:     len(terminals),
	})
}

// getTerminal handles GET /api/terminals/{id}
func (h *Handler) getTerminal(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "terminal ID required")
		return
	}

	terminal, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrTerminalNotFound) {
			h.writeError(w, http.StatusNotFound, "terminal not found")
			return
		}
		h.internalError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, terminal)
}

// toggleVAS handles POST /api/terminals/{id}/vas/{vasId}/toggle
func (h *Handler) toggleVAS(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	vasID := r.PathValue("vasId")
	if id == "" || vasID == "" {
		h.writeError(w, http.StatusBadRequest, "terminal ID and VAS ID required")
		return
	}

	terminal, err := h.store.ToggleVASFeature(id, vasID)
	if err != nil {
		if errors.Is(err, store.ErrTerminalNotFound) {
			h.writeError(w, http.StatusNotFound, "terminal not found")
			return
		}
		if errors.Is(err, store.ErrVASNotFound) {
			h.writeError(w, http.StatusNotFound, "vas feature not found")
			return
		}
		h.internalError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, terminal)
}

// terminalInsights handles GET /api/terminals/{id}/insights?period=
func (h *Handler) terminalInsights(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "terminal ID required")
		return
	}

	raw := r.URL.Query().Get("period")
	if raw == "" {
		raw = string(analytics.PeriodDay)
	}
	period, err := analytics.ParsePeriod(raw)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid period: "+raw)
		return
	}

	bundle, err := h.engine.Insights(id, period)
	if err != nil {
		if errors.Is(err, store.ErrTerminalNotFound) {
			h.writeError(w, http.StatusNotFound, "terminal not found")
			return
		}
		h.internalError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, bundle)
}

// statusDistribution handles GET /api/analytics/status
func (h *Handler) statusDistribution(w http.ResponseWriter, r *http.Request) {
	terminals := filter.Apply(h.store.GetAll(), criteriaFromQuery(r))
	h.writeJSON(w, http.StatusOK, analytics.StatusDistribution(terminals))
}

// revenueByCategory handles GET /api/analytics/revenue
func (h *Handler) revenueByCategory(w http.ResponseWriter, r *http.Request) {
	terminals := filter.Apply(h.store.GetAll(), criteriaFromQuery(r))
	h.writeJSON(w, http.StatusOK, analytics.RevenueByCategory(terminals))
}

// topMerchants handles GET /api/analytics/top-merchants?limit=
func (h *Handler) topMerchants(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.writeError(w, http.StatusBadRequest, "invalid limit: "+raw)
			return
		}
		limit = n
	}

	terminals := filter.Apply(h.store.GetAll(), criteriaFromQuery(r))
	rows := analytics.TopMerchants(terminals, limit)
	if rows == nil {
		rows = []analytics.MerchantSummary{}
	}
	h.writeJSON(w, http.StatusOK, rows)
}

// fleetSummary handles GET /api/analytics/summary
func (h *Handler) fleetSummary(w http.ResponseWriter, r *http.Request) {
	terminals := filter.Apply(h.store.GetAll(), criteriaFromQuery(r))
	h.writeJSON(w, http.StatusOK, analytics.Summarize(terminals))
}

// listFacets handles GET /api/facets
func (h *Handler) listFacets(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, model.Catalogs())
}

// criteriaFromQuery builds filter criteria from repeated query params so the
// aggregate endpoints can run over a filtered subset.
func criteriaFromQuery(r *http.Request) model.FilterCriteria {
	q := r.URL.Query()
	return model.FilterCriteria{
		Acquirers:      q["acquirer"],
		OrbitTypes:     q["orbit"],
		PosConnections: q["pos"],
		Hardware:       q["hardware"],
		VAS:            q["vas"],
		Features:       q["feature"],
		Statuses:       q["status"],
		MerchantSearch: q.Get("merchant"),
		IndustrySearch: q.Get("industry"),
	}
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// internalError logs the error and writes a generic 500 response
func (h *Handler) internalError(w http.ResponseWriter, err error) {
	log.Error("Internal server error", "error", err)
	h.writeError(w, http.StatusInternalServerError, "Internal Server Error")
}
