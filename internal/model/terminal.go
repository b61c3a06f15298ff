package model

import "slices"

// Status is the coarse operational state of a terminal.
type Status string

const (
	StatusOnline      Status = "online"
	StatusOffline     Status = "offline"
	StatusMaintenance Status = "maintenance"
	StatusLowBattery  Status = "low_battery"
)

// Statuses lists every valid terminal status.
var Statuses = []Status{StatusOnline, StatusOffline, StatusMaintenance, StatusLowBattery}

// VASFeature is one value-added-service toggle on a terminal. IDs are unique
// within a terminal and the slice order is stable across reads.
type VASFeature struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// Terminal is one physical payment device in the fleet.
type Terminal struct {
	ID            string       `json:"id"`
	MerchantName  string       `json:"merchantName"`
	MerchantType  string       `json:"merchantType"`
	Location      string       `json:"location"`
	Latitude      float64      `json:"lat"`
	Longitude     float64      `json:"lng"`
	Status        Status       `json:"status"`
	Acquirer      string       `json:"acquirer"`
	OrbitType     string       `json:"orbitType"`
	HardwareBrand string       `json:"hardwareBrand"`
	HardwareModel string       `json:"hardwareModel"`
	PosConnection string       `json:"posConnection,omitempty"`
	Features      []string     `json:"features,omitempty"`
	Volume        int          `json:"volume"`
	Uptime        float64      `json:"uptime"`
	VASFeatures   []VASFeature `json:"vasFeatures"`
}

// Clone returns a deep copy whose slices do not alias the receiver's.
func (t *Terminal) Clone() Terminal {
	c := *t
	c.Features = slices.Clone(t.Features)
	c.VASFeatures = slices.Clone(t.VASFeatures)
	return c
}

// FilterCriteria is the facet selection state sent by the dashboard sidebar.
// Every slice is a set of option ids; an empty slice places no constraint on
// its facet. Group ids are accepted anywhere a leaf id is and expand to all
// children of the group.
type FilterCriteria struct {
	Acquirers      []string `json:"acquirers,omitempty"`
	OrbitTypes     []string `json:"orbitTypes,omitempty"`
	PosConnections []string `json:"posConnections,omitempty"`
	Hardware       []string `json:"hardware,omitempty"`
	VAS            []string `json:"vas,omitempty"`
	Features       []string `json:"features,omitempty"`
	Statuses       []string `json:"statuses,omitempty"`
	MerchantSearch string   `json:"merchantSearch,omitempty"`
	IndustrySearch string   `json:"industrySearch,omitempty"`
}

// IsEmpty reports whether no facet or search is active.
func (c *FilterCriteria) IsEmpty() bool {
	return len(c.Acquirers) == 0 &&
		len(c.OrbitTypes) == 0 &&
		len(c.PosConnections) == 0 &&
		len(c.Hardware) == 0 &&
		len(c.VAS) == 0 &&
		len(c.Features) == 0 &&
		len(c.Statuses) == 0 &&
		c.MerchantSearch == "" &&
		c.IndustrySearch == ""
}
