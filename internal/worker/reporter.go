package worker

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/martinsuchenak/orbitd/internal/analytics"
	"github.com/martinsuchenak/orbitd/internal/log"
	"github.com/martinsuchenak/orbitd/internal/model"
	"github.com/martinsuchenak/orbitd/internal/store"
	"github.com/robfig/cron/v3"
)

// Reporter periodically recomputes the fleet summary and logs it as an
// operational snapshot. It only reads the store; terminal mutations stay on
// the API write path.
type Reporter struct {
	cron     *cron.Cron
	store    *store.Store
	schedule string
}

// NewReporter creates a reporter on a cron schedule (standard 5-field specs
// and @every durations).
func NewReporter(st *store.Store, schedule string) *Reporter {
	return &Reporter{
		cron:     cron.New(),
		store:    st,
		schedule: schedule,
	}
}

// Start schedules the snapshot job and begins running it.
func (r *Reporter) Start() error {
	if _, err := r.cron.AddFunc(r.schedule, r.run); err != nil {
		return fmt.Errorf("scheduling fleet snapshot: %w", err)
	}
	r.cron.Start()
	log.Info("Snapshot reporter started", "schedule", r.schedule)
	return nil
}

// Stop halts the schedule and waits for a running snapshot to finish.
func (r *Reporter) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	log.Info("Snapshot reporter stopped")
}

func (r *Reporter) run() {
	runID := snapshotID()
	terminals := r.store.GetAll()
	summary := analytics.Summarize(terminals)
	dist := analytics.StatusDistribution(terminals)

	log.Info("Fleet snapshot",
		"run_id", runID,
		"total", summary.Total,
		"online", summary.Online,
		"offline", summary.Offline,
		"maintenance", dist[model.StatusMaintenance],
		"low_battery", dist[model.StatusLowBattery],
		"total_volume", summary.TotalVolume,
		"avg_uptime", fmt.Sprintf("%.1f", summary.AverageUptime),
	)
}

// snapshotID generates a UUIDv7 so snapshot log lines sort by time
func snapshotID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
