package store

import (
	"errors"
	"testing"

	"github.com/martinsuchenak/orbitd/internal/model"
)

func fixtureTerminals() []model.Terminal {
	return []model.Terminal{
		{
			ID:           "T-10000",
			MerchantName: "Myer PTY LTD",
			Status:       model.StatusOnline,
			VASFeatures: []model.VASFeature{
				{ID: "afterpay", Label: "Afterpay", Enabled: true},
				{ID: "qantas", Label: "Qantas", Enabled: false},
			},
		},
		{
			ID:           "T-10001",
			MerchantName: "BP Group",
			Status:       model.StatusOffline,
			VASFeatures: []model.VASFeature{
				{ID: "flybuys", Label: "Flybuys", Enabled: true},
			},
		},
	}
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	terminals := fixtureTerminals()
	terminals[1].ID = terminals[0].ID

	if _, err := New(terminals); err == nil {
		t.Fatal("Expected error for duplicate terminal ids")
	}
}

func TestStore_GetAll_PreservesOrder(t *testing.T) {
	st, err := New(fixtureTerminals())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	all := st.GetAll()
	if len(all) != 2 {
		t.Fatalf("Expected 2 terminals, got %d", len(all))
	}
	if all[0].ID != "T-10000" || all[1].ID != "T-10001" {
		t.Errorf("Order not preserved: %s, %s", all[0].ID, all[1].ID)
	}
	if st.Count() != 2 {
		t.Errorf("Expected count 2, got %d", st.Count())
	}
}

func TestStore_Get(t *testing.T) {
	st, _ := New(fixtureTerminals())

	terminal, err := st.Get("T-10001")
	if err != nil {
		t.Fatalf("Failed to get terminal: %v", err)
	}
	if terminal.MerchantName != "BP Group" {
		t.Errorf("Expected BP Group, got %s", terminal.MerchantName)
	}

	if _, err := st.Get("T-99999"); !errors.Is(err, ErrTerminalNotFound) {
		t.Errorf("Expected ErrTerminalNotFound, got %v", err)
	}
}

func TestStore_ToggleVASFeature_FlipsExactlyOneFlag(t *testing.T) {
	st, _ := New(fixtureTerminals())

	before, _ := st.Get("T-10000")
	updated, err := st.ToggleVASFeature("T-10000", "qantas")
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	if !updated.VASFeatures[1].Enabled {
		t.Error("Expected qantas to be enabled after toggle")
	}
	if updated.VASFeatures[0].Enabled != before.VASFeatures[0].Enabled {
		t.Error("Untargeted VAS entry changed")
	}
	if updated.MerchantName != before.MerchantName || updated.Status != before.Status {
		t.Error("Toggle changed unrelated terminal fields")
	}

	// Toggling back restores the original state.
	reverted, err := st.ToggleVASFeature("T-10000", "qantas")
	if err != nil {
		t.Fatalf("Second toggle failed: %v", err)
	}
	if reverted.VASFeatures[1].Enabled {
		t.Error("Expected qantas to be disabled after second toggle")
	}
}

func TestStore_ToggleVASFeature_DoesNotAliasSnapshots(t *testing.T) {
	st, _ := New(fixtureTerminals())

	snapshot := st.GetAll()
	if _, err := st.ToggleVASFeature("T-10000", "afterpay"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	// A snapshot taken before the toggle must not observe the mutation.
	if !snapshot[0].VASFeatures[0].Enabled {
		t.Error("Pre-toggle snapshot was mutated in place")
	}

	after, _ := st.Get("T-10000")
	if after.VASFeatures[0].Enabled {
		t.Error("Toggle did not persist")
	}
}

func TestStore_ToggleVASFeature_NotFound(t *testing.T) {
	st, _ := New(fixtureTerminals())

	if _, err := st.ToggleVASFeature("T-99999", "afterpay"); !errors.Is(err, ErrTerminalNotFound) {
		t.Errorf("Expected ErrTerminalNotFound, got %v", err)
	}
	if _, err := st.ToggleVASFeature("T-10000", "flybuys"); !errors.Is(err, ErrVASNotFound) {
		t.Errorf("Expected ErrVASNotFound, got %v", err)
	}
}

func TestStore_Subscribe_NotifiedOnToggle(t *testing.T) {
	st, _ := New(fixtureTerminals())

	var notified []string
	st.Subscribe(func(id string) { notified = append(notified, id) })

	if _, err := st.ToggleVASFeature("T-10001", "flybuys"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if len(notified) != 1 || notified[0] != "T-10001" {
		t.Errorf("Expected one notification for T-10001, got %v", notified)
	}

	// Failed toggles do not notify.
	st.ToggleVASFeature("T-10001", "bogus")
	if len(notified) != 1 {
		t.Errorf("Expected no notification on failed toggle, got %v", notified)
	}
}
