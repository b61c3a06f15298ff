package worker

import (
	"math/rand"
	"testing"

	"github.com/martinsuchenak/orbitd/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(store.Generate(25, rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return st
}

func TestReporter_StartStop(t *testing.T) {
	reporter := NewReporter(newTestStore(t), "@every 1h")

	if err := reporter.Start(); err != nil {
		t.Fatalf("Failed to start reporter: %v", err)
	}
	reporter.Stop()
}

func TestReporter_InvalidSchedule(t *testing.T) {
	reporter := NewReporter(newTestStore(t), "not a schedule")

	if err := reporter.Start(); err == nil {
		t.Fatal("Expected error for invalid schedule")
	}
}

func TestReporter_Run(t *testing.T) {
	reporter := NewReporter(newTestStore(t), "@every 1h")

	// The snapshot job must tolerate being invoked directly.
	reporter.run()
}
