// Package filter narrows a terminal snapshot to the subset matching a facet
// selection. Selections are OR-combined within a facet and AND-combined
// across facets; an empty selection places no constraint on its facet.
package filter

import (
	"strings"

	"github.com/martinsuchenak/orbitd/internal/model"
)

// Apply returns the order-preserving subsequence of terminals matching every
// active facet in criteria. The input slice is never mutated; with empty
// criteria the input is returned unchanged.
func Apply(terminals []model.Terminal, criteria model.FilterCriteria) []model.Terminal {
	if criteria.IsEmpty() {
		return terminals
	}

	m := newMatcher(criteria)
	out := make([]model.Terminal, 0, len(terminals))
	for i := range terminals {
		if m.matches(&terminals[i]) {
			out = append(out, terminals[i])
		}
	}
	return out
}

// matcher holds the criteria resolved to leaf-id sets. Hierarchical facets
// are expanded against their catalogs so a group id selects all children.
type matcher struct {
	acquirers      map[string]bool
	orbitTypes     map[string]bool
	posConnections map[string]bool
	hardware       map[string]bool
	vas            map[string]bool
	features       map[string]bool
	statuses       map[string]bool
	merchantSearch string
	industrySearch string
}

func newMatcher(c model.FilterCriteria) *matcher {
	return &matcher{
		acquirers:      model.ExpandSelection(model.Acquirers, c.Acquirers),
		orbitTypes:     model.ExpandSelection(model.OrbitTypes, c.OrbitTypes),
		posConnections: model.ExpandSelection(model.PosConnections, c.PosConnections),
		hardware:       model.ExpandSelection(model.Hardware, c.Hardware),
		vas:            model.ExpandSelection(model.VASCatalog, c.VAS),
		features:       model.ExpandSelection(model.TerminalFeatures, c.Features),
		statuses:       model.ExpandSelection(nil, c.Statuses),
		merchantSearch: strings.ToLower(strings.TrimSpace(c.MerchantSearch)),
		industrySearch: strings.ToLower(strings.TrimSpace(c.IndustrySearch)),
	}
}

func (m *matcher) matches(t *model.Terminal) bool {
	if len(m.acquirers) > 0 && !m.acquirers[t.Acquirer] {
		return false
	}
	if len(m.orbitTypes) > 0 && !m.orbitTypes[t.OrbitType] {
		return false
	}
	if len(m.statuses) > 0 && !m.statuses[string(t.Status)] {
		return false
	}
	// An empty attribute never satisfies an active facet.
	if len(m.posConnections) > 0 && !m.posConnections[t.PosConnection] {
		return false
	}
	if len(m.hardware) > 0 && !m.hardware[t.HardwareModel] {
		return false
	}
	if len(m.vas) > 0 && !hasEnabledVAS(t, m.vas) {
		return false
	}
	if len(m.features) > 0 && !hasAny(t.Features, m.features) {
		return false
	}
	if m.merchantSearch != "" && !strings.Contains(strings.ToLower(t.MerchantName), m.merchantSearch) {
		return false
	}
	if m.industrySearch != "" && !strings.Contains(strings.ToLower(t.MerchantType), m.industrySearch) {
		return false
	}
	return true
}

// hasEnabledVAS requires at least one selected VAS that is present AND
// enabled; a disabled entry does not count as carrying the service.
func hasEnabledVAS(t *model.Terminal, selected map[string]bool) bool {
	for _, vas := range t.VASFeatures {
		if vas.Enabled && selected[vas.ID] {
			return true
		}
	}
	return false
}

func hasAny(values []string, selected map[string]bool) bool {
	for _, v := range values {
		if selected[v] {
			return true
		}
	}
	return false
}
