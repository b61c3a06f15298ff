package store

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/martinsuchenak/orbitd/internal/model"
)

// DefaultFleetSize is how many terminals a server generates when not
// configured otherwise.
const DefaultFleetSize = 1500

// Generate produces a synthetic fleet of count terminals drawn from the model
// catalogs. Pass a seeded rand for reproducible fleets; a nil rng uses the
// shared global source.
func Generate(count int, rng *rand.Rand) []model.Terminal {
	if count <= 0 {
		return nil
	}
	randFloat := rand.Float64
	randInt := rand.Intn
	if rng != nil {
		randFloat = rng.Float64
		randInt = rng.Intn
	}

	vasLeafIDs := model.FlattenFacet(model.VASCatalog)
	posLeafIDs := model.FlattenFacet(model.PosConnections)
	featureIDs := model.FlattenFacet(model.TerminalFeatures)

	terminals := make([]model.Terminal, 0, count)
	for i := 0; i < count; i++ {
		city := model.WeightedCities[randInt(len(model.WeightedCities))]

		var status model.Status
		switch roll := randFloat(); {
		case roll < 0.92:
			status = model.StatusOnline
		case roll < 0.96:
			status = model.StatusOffline
		case roll < 0.98:
			status = model.StatusMaintenance
		default:
			status = model.StatusLowBattery
		}

		uptime := 50 + randFloat()*30
		if status == model.StatusOnline {
			uptime = 95 + randFloat()*5
		}

		merchantType := model.MerchantTypes[randInt(len(model.MerchantTypes))]
		names := model.MerchantNames[merchantType]
		merchantName := fmt.Sprintf("%s %s",
			names[randInt(len(names))],
			model.BusinessSuffixes[randInt(len(model.BusinessSuffixes))])

		orbitType := model.OrbitTypes[randInt(len(model.OrbitTypes))].ID
		acquirer := model.Acquirers[randInt(len(model.Acquirers))].ID
		brand := model.Hardware[randInt(len(model.Hardware))]
		hwModel := brand.Children[randInt(len(brand.Children))]

		// Only integrated tiers talk to a point of sale.
		posConnection := ""
		if orbitType == "integrated" || orbitType == "integrated_plus" {
			posConnection = posLeafIDs[randInt(len(posLeafIDs))]
		}

		var features []string
		for _, f := range featureIDs {
			if randFloat() < 0.4 {
				features = append(features, f)
			}
		}

		vasCount := 3 + randInt(6)
		shuffled := slices.Clone(vasLeafIDs)
		for j := len(shuffled) - 1; j > 0; j-- {
			k := randInt(j + 1)
			shuffled[j], shuffled[k] = shuffled[k], shuffled[j]
		}
		vasFeatures := make([]model.VASFeature, 0, vasCount)
		for _, id := range shuffled[:vasCount] {
			vasFeatures = append(vasFeatures, model.VASFeature{
				ID:      id,
				Label:   model.VASLabel(id),
				Enabled: randFloat() > 0.3,
			})
		}

		terminals = append(terminals, model.Terminal{
			ID:            fmt.Sprintf("T-%d", 10000+i),
			MerchantName:  merchantName,
			MerchantType:  merchantType,
			Location:      city.Name,
			Latitude:      clamp(city.Lat+jitter(randFloat), model.MinLatitude, model.MaxLatitude),
			Longitude:     clamp(city.Lng+jitter(randFloat), model.MinLongitude, model.MaxLongitude),
			Status:        status,
			Acquirer:      acquirer,
			OrbitType:     orbitType,
			HardwareBrand: brand.ID,
			HardwareModel: hwModel.ID,
			PosConnection: posConnection,
			Features:      features,
			Volume:        1000 + randInt(10000),
			Uptime:        uptime,
			VASFeatures:   vasFeatures,
		})
	}
	return terminals
}

func jitter(randFloat func() float64) float64 {
	return randFloat()*0.05 - 0.01
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
