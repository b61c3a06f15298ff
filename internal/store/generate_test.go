package store

import (
	"math/rand"
	"testing"

	"github.com/martinsuchenak/orbitd/internal/model"
)

func TestGenerate_Invariants(t *testing.T) {
	terminals := Generate(500, rand.New(rand.NewSource(1)))
	if len(terminals) != 500 {
		t.Fatalf("Expected 500 terminals, got %d", len(terminals))
	}

	validStatuses := make(map[model.Status]bool)
	for _, s := range model.Statuses {
		validStatuses[s] = true
	}

	seen := make(map[string]bool)
	for i := range terminals {
		term := &terminals[i]

		if seen[term.ID] {
			t.Fatalf("Duplicate terminal id %s", term.ID)
		}
		seen[term.ID] = true

		if !validStatuses[term.Status] {
			t.Errorf("%s: invalid status %q", term.ID, term.Status)
		}
		if term.Latitude < model.MinLatitude || term.Latitude > model.MaxLatitude {
			t.Errorf("%s: latitude %f out of bounds", term.ID, term.Latitude)
		}
		if term.Longitude < model.MinLongitude || term.Longitude > model.MaxLongitude {
			t.Errorf("%s: longitude %f out of bounds", term.ID, term.Longitude)
		}
		if term.Volume < 1000 || term.Volume > 10999 {
			t.Errorf("%s: volume %d out of range", term.ID, term.Volume)
		}
		if term.Uptime < 50 || term.Uptime > 100 {
			t.Errorf("%s: uptime %f out of range", term.ID, term.Uptime)
		}
		if term.Status == model.StatusOnline && term.Uptime < 95 {
			t.Errorf("%s: online terminal with uptime %f", term.ID, term.Uptime)
		}

		if len(term.VASFeatures) < 3 || len(term.VASFeatures) > 8 {
			t.Errorf("%s: expected 3-8 VAS entries, got %d", term.ID, len(term.VASFeatures))
		}
		vasIDs := make(map[string]bool)
		for _, vas := range term.VASFeatures {
			if vasIDs[vas.ID] {
				t.Errorf("%s: duplicate VAS id %s", term.ID, vas.ID)
			}
			vasIDs[vas.ID] = true
		}

		// POS connections only appear on integrated tiers.
		if term.PosConnection != "" &&
			term.OrbitType != "integrated" && term.OrbitType != "integrated_plus" {
			t.Errorf("%s: %s terminal has POS connection %s", term.ID, term.OrbitType, term.PosConnection)
		}
	}
}

func TestGenerate_SeededDeterminism(t *testing.T) {
	a := Generate(50, rand.New(rand.NewSource(42)))
	b := Generate(50, rand.New(rand.NewSource(42)))

	for i := range a {
		if a[i].ID != b[i].ID || a[i].MerchantName != b[i].MerchantName ||
			a[i].Volume != b[i].Volume || a[i].Status != b[i].Status {
			t.Fatalf("Seeded generation diverged at index %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerate_Empty(t *testing.T) {
	if got := Generate(0, nil); got != nil {
		t.Errorf("Expected nil for zero count, got %d terminals", len(got))
	}
}
