package analytics

import (
	"math/rand"
	"testing"

	"github.com/martinsuchenak/orbitd/internal/model"
	"github.com/martinsuchenak/orbitd/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()
	terminals := []model.Terminal{
		{
			ID: "T-10000", MerchantName: "Myer PTY LTD", Volume: 4000, Uptime: 98.5,
			VASFeatures: []model.VASFeature{
				{ID: "qantas", Label: "Qantas Points", Enabled: false},
				{ID: "afterpay", Label: "Afterpay", Enabled: true},
			},
		},
		{ID: "T-10001", MerchantName: "BP Group", Volume: 6000, Uptime: 70},
	}
	st, err := store.New(terminals)
	require.NoError(t, err)
	return NewEngine(st, rand.New(rand.NewSource(7))), st
}

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"day", "week", "month", "year"} {
		p, err := ParsePeriod(s)
		assert.NoError(t, err)
		assert.Equal(t, Period(s), p)
	}

	_, err := ParsePeriod("fortnight")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	_, err = ParsePeriod("")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestEngine_SeriesShapes(t *testing.T) {
	engine, _ := newTestEngine(t)

	shapes := map[Period]int{
		PeriodDay:   24,
		PeriodWeek:  7,
		PeriodMonth: 30,
		PeriodYear:  12,
	}
	for period, points := range shapes {
		bundle, err := engine.Insights("T-10000", period)
		require.NoError(t, err)
		assert.Len(t, bundle.Series, points, "period %s", period)
		assert.Equal(t, "T-10000", bundle.TerminalID)
		assert.Equal(t, period, bundle.Period)

		for i := 1; i < len(bundle.Series); i++ {
			assert.True(t, bundle.Series[i].Timestamp.After(bundle.Series[i-1].Timestamp),
				"period %s: series must be chronological", period)
		}

		total := 0
		for _, p := range bundle.Series {
			total += p.Volume
		}
		assert.Equal(t, total, bundle.TotalVolume)
	}
}

func TestEngine_BundleFields(t *testing.T) {
	engine, _ := newTestEngine(t)

	bundle, err := engine.Insights("T-10000", PeriodDay)
	require.NoError(t, err)

	assert.InDelta(t, 98.5, bundle.UptimePercent, 0.001)
	assert.Equal(t, "Afterpay", bundle.TopFeature, "first enabled VAS wins")
	assert.GreaterOrEqual(t, bundle.ApprovalRate, 95.0)
	assert.LessOrEqual(t, bundle.ApprovalRate, 99.5)

	// No enabled VAS leaves the headline feature empty.
	other, err := engine.Insights("T-10001", PeriodDay)
	require.NoError(t, err)
	assert.Empty(t, other.TopFeature)
}

func TestEngine_CacheIsStable(t *testing.T) {
	engine, _ := newTestEngine(t)

	first, err := engine.Insights("T-10000", PeriodWeek)
	require.NoError(t, err)

	// A period switch must not disturb the cached bundle.
	_, err = engine.Insights("T-10000", PeriodMonth)
	require.NoError(t, err)

	second, err := engine.Insights("T-10000", PeriodWeek)
	require.NoError(t, err)
	assert.Same(t, first, second, "repeat reads return the cached bundle")
}

func TestEngine_MutationInvalidatesCache(t *testing.T) {
	engine, st := newTestEngine(t)

	before, err := engine.Insights("T-10000", PeriodDay)
	require.NoError(t, err)
	untouched, err := engine.Insights("T-10001", PeriodDay)
	require.NoError(t, err)

	_, err = st.ToggleVASFeature("T-10000", "qantas")
	require.NoError(t, err)

	after, err := engine.Insights("T-10000", PeriodDay)
	require.NoError(t, err)
	assert.NotSame(t, before, after, "toggle must drop the cached bundle")

	// Other terminals keep their cache.
	still, err := engine.Insights("T-10001", PeriodDay)
	require.NoError(t, err)
	assert.Same(t, untouched, still)
}

func TestEngine_Errors(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.Insights("T-10000", Period("decade"))
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = engine.Insights("T-99999", PeriodDay)
	assert.ErrorIs(t, err, store.ErrTerminalNotFound)
}
