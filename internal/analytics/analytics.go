// Package analytics derives the dashboard aggregates and per-terminal
// insight series from a terminal snapshot. All aggregate functions are pure
// and total: empty input yields empty or zero output, never an error.
package analytics

import (
	"math/rand"
	"sort"

	"github.com/martinsuchenak/orbitd/internal/model"
)

// MerchantSummary is one row of the top-merchants ranking, grouped by
// trading name.
type MerchantSummary struct {
	Name            string  `json:"name"`
	TerminalCount   int     `json:"terminalCount"`
	TotalVolume     int     `json:"totalVolume"`
	AverageUptime   float64 `json:"averageUptime"`
	GrowthIndicator float64 `json:"growthIndicator"`
}

// FleetSummary is the overview-cards aggregate.
type FleetSummary struct {
	Total         int     `json:"total"`
	Online        int     `json:"online"`
	Offline       int     `json:"offline"`
	TotalVolume   int     `json:"totalVolume"`
	AverageUptime float64 `json:"averageUptime"`
}

// StatusDistribution counts terminals per status. Counts sum to len(input);
// absent statuses are omitted.
func StatusDistribution(terminals []model.Terminal) map[model.Status]int {
	dist := make(map[model.Status]int)
	for i := range terminals {
		dist[terminals[i].Status]++
	}
	return dist
}

// RevenueByCategory sums daily volume per merchant type. The values sum to
// the total fleet volume; categories with no terminals are omitted.
func RevenueByCategory(terminals []model.Terminal) map[string]int {
	revenue := make(map[string]int)
	for i := range terminals {
		revenue[terminals[i].MerchantType] += terminals[i].Volume
	}
	return revenue
}

// TopMerchants ranks merchants by total volume, descending, truncated to n.
// Ties keep the order merchants were first encountered in the input. The
// growth indicator is an illustrative random percentage.
func TopMerchants(terminals []model.Terminal, n int) []MerchantSummary {
	if n <= 0 {
		return nil
	}

	order := make([]string, 0)
	grouped := make(map[string]*MerchantSummary)
	uptimeSums := make(map[string]float64)
	for i := range terminals {
		t := &terminals[i]
		g, ok := grouped[t.MerchantName]
		if !ok {
			g = &MerchantSummary{Name: t.MerchantName}
			grouped[t.MerchantName] = g
			order = append(order, t.MerchantName)
		}
		g.TerminalCount++
		g.TotalVolume += t.Volume
		uptimeSums[t.MerchantName] += t.Uptime
	}

	rows := make([]MerchantSummary, 0, len(order))
	for _, name := range order {
		g := grouped[name]
		g.AverageUptime = uptimeSums[name] / float64(g.TerminalCount)
		g.GrowthIndicator = rand.Float64()*20 - 10
		rows = append(rows, *g)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalVolume > rows[j].TotalVolume
	})
	if n < len(rows) {
		rows = rows[:n]
	}
	return rows
}

// Summarize computes the fleet-level overview numbers.
func Summarize(terminals []model.Terminal) FleetSummary {
	s := FleetSummary{Total: len(terminals)}
	if s.Total == 0 {
		return s
	}
	var uptimeSum float64
	for i := range terminals {
		switch terminals[i].Status {
		case model.StatusOnline:
			s.Online++
		case model.StatusOffline:
			s.Offline++
		}
		s.TotalVolume += terminals[i].Volume
		uptimeSum += terminals[i].Uptime
	}
	s.AverageUptime = uptimeSum / float64(s.Total)
	return s
}
