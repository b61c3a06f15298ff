package api

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/martinsuchenak/orbitd/internal/analytics"
	"github.com/martinsuchenak/orbitd/internal/model"
	"github.com/martinsuchenak/orbitd/internal/store"
)

// setupTestHandler creates a Handler over a small fixture fleet
func setupTestHandler(t *testing.T) *Handler {
	t.Helper()

	terminals := []model.Terminal{
		{
			ID: "T-10000", MerchantName: "Myer PTY LTD", MerchantType: "Retail",
			Status: model.StatusOnline, Acquirer: "cba", OrbitType: "integrated",
			HardwareBrand: "ingenico", HardwareModel: "move5000", PosConnection: "vend",
			Volume: 4000, Uptime: 98,
			VASFeatures: []model.VASFeature{
				{ID: "afterpay", Label: "Afterpay", Enabled: true},
				{ID: "qantas", Label: "Qantas Points", Enabled: false},
			},
		},
		{
			ID: "T-10001", MerchantName: "BP Group", MerchantType: "Fuel",
			Status: model.StatusOffline, Acquirer: "anz", OrbitType: "standalone",
			HardwareBrand: "verifone", HardwareModel: "t650m",
			Volume: 6000, Uptime: 70,
			VASFeatures: []model.VASFeature{
				{ID: "flybuys", Label: "Flybuys", Enabled: true},
			},
		},
	}

	st, err := store.New(terminals)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	engine := analytics.NewEngine(st, rand.New(rand.NewSource(1)))
	return NewHandler(st, engine, NewSessionStore(), "")
}

func TestHandler_RegisterRoutes(t *testing.T) {
	handler := setupTestHandler(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	server := httptest.NewServer(mux)
	defer server.Close()

	// Test list terminals
	resp, err := http.Get(server.URL + "/api/terminals")
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	// Test facet catalogs
	resp, err = http.Get(server.URL + "/api/facets")
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}
