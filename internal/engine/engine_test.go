package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/brewmatch/internal/catalog"
	"github.com/joshsymonds/brewmatch/internal/common"
	"github.com/joshsymonds/brewmatch/internal/flavor"
	"github.com/joshsymonds/brewmatch/internal/model"
	"github.com/joshsymonds/brewmatch/internal/recommend"
)

func newEngines(t *testing.T) (memoized, plain *Engine) {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)

	memoized, err = New(cat)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.MemoSize = 0
	plain, err = NewWithConfig(cat, cfg)
	require.NoError(t, err)

	return memoized, plain
}

func TestNewWithConfig_RequiresCatalog(t *testing.T) {
	_, err := NewWithConfig(nil, DefaultConfig())
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestMatchBeansToEquipment_MemoMatchesPlain(t *testing.T) {
	memoized, plain := newEngines(t)
	beans := memoized.Catalog().Beans()

	profiles := []model.EquipmentProfile{
		{MachineType: model.MachineSemiAutomatic},
		{MachineType: model.MachinePourOver, BurrType: model.BurrFlat},
		{},
	}

	for _, p := range profiles {
		first := memoized.MatchBeansToEquipment(beans, p, nil, nil)
		second := memoized.MatchBeansToEquipment(beans, p, nil, nil)
		want := plain.MatchBeansToEquipment(beans, p, nil, nil)

		assert.Equal(t, want, first)
		assert.Equal(t, want, second)
		assert.Len(t, first, 5)
	}

	hits, misses := memoized.MemoStats()
	assert.Equal(t, uint64(3), hits)
	assert.Equal(t, uint64(3), misses)
}

func TestMatchBeansToEquipment_ResultsAreIsolated(t *testing.T) {
	memoized, _ := newEngines(t)
	beans := memoized.Catalog().Beans()
	profile := model.EquipmentProfile{MachineType: model.MachineMokaPot}

	first := memoized.MatchBeansToEquipment(beans, profile, nil, nil)
	require.NotEmpty(t, first)
	original := first[0].MatchScore
	originalReason := first[0].MatchReasons[0]

	first[0].MatchScore = -1
	first[0].MatchReasons[0] = "mutated"
	first[0].Bean.FlavorNotes[0] = "mutated"

	second := memoized.MatchBeansToEquipment(beans, profile, nil, nil)
	assert.Equal(t, original, second[0].MatchScore)
	assert.Equal(t, originalReason, second[0].MatchReasons[0])
	assert.NotEqual(t, "mutated", second[0].Bean.FlavorNotes[0])
}

func TestMatchBeansToEquipment_CacheDetachedFromInput(t *testing.T) {
	memoized, _ := newEngines(t)
	profile := model.EquipmentProfile{MachineType: model.MachineSemiAutomatic}

	makeBeans := func() []model.Bean {
		return []model.Bean{{
			ID:          "choc",
			Name:        "Chocolate Blend",
			RoastLevel:  model.RoastMedium,
			FlavorNotes: []string{"Chocolate"},
			BrewMethods: []model.BrewMethod{model.BrewEspresso},
			Rating:      4.5,
		}}
	}

	beans := makeBeans()
	first := memoized.MatchBeansToEquipment(beans, profile, nil, nil)
	require.Len(t, first, 1)

	beans[0].FlavorNotes[0] = "changed"
	beans[0].BrewMethods[0] = model.BrewColdBrew

	second := memoized.MatchBeansToEquipment(makeBeans(), profile, nil, nil)
	require.Len(t, second, 1)
	assert.Equal(t, []string{"Chocolate"}, second[0].Bean.FlavorNotes)
	assert.Equal(t, []model.BrewMethod{model.BrewEspresso}, second[0].Bean.BrewMethods)
	assert.Equal(t, first, second)

	hits, _ := memoized.MemoStats()
	assert.Equal(t, uint64(1), hits)
}

func TestMatchBeansToEquipment_LimitCapped(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Matcher.Limit = 8
	eng, err := NewWithConfig(cat, cfg)
	require.NoError(t, err)

	got := eng.MatchBeansToEquipment(cat.Beans(), model.EquipmentProfile{}, nil, nil)
	assert.Len(t, got, 5)
}

func TestMatchBeansToEquipment_Concurrent(t *testing.T) {
	memoized, plain := newEngines(t)
	beans := memoized.Catalog().Beans()
	profile := model.EquipmentProfile{MachineType: model.MachineAutomatic}
	want := plain.MatchBeansToEquipment(beans, profile, nil, nil)

	var wg sync.WaitGroup
	results := make([][]model.BeanMatch, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = memoized.MatchBeansToEquipment(beans, profile, nil, nil)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
	_, misses := memoized.MemoStats()
	assert.Equal(t, uint64(1), misses)
}

func TestMatchBeansForFlavor(t *testing.T) {
	memoized, _ := newEngines(t)

	got, err := memoized.MatchBeansForFlavor(model.EquipmentProfile{
		MachineType: model.MachineSemiAutomatic,
		MachineID:   "gaggia-classic-pro",
		GrinderID:   "niche-zero",
	}, flavor.BoldStrong)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	def, ok := flavor.Lookup(flavor.BoldStrong)
	require.True(t, ok)
	for _, m := range got {
		assert.True(t, def.Matches(m.Bean), m.Bean.ID)
	}

	_, err = memoized.MatchBeansForFlavor(model.EquipmentProfile{MachineID: "missing"}, flavor.None)
	assert.ErrorIs(t, err, common.ErrUnknownCatalog)

	_, err = memoized.MatchBeansForFlavor(model.EquipmentProfile{GrinderID: "missing"}, flavor.None)
	assert.ErrorIs(t, err, common.ErrUnknownCatalog)
}

func TestGetEquipmentRecommendations(t *testing.T) {
	memoized, plain := newEngines(t)
	purposes := []recommend.Purpose{recommend.PurposeMilkDrinks}

	first := memoized.GetEquipmentRecommendations(model.TierMid, purposes, recommend.ExperienceBeginner)
	want := plain.GetEquipmentRecommendations(model.TierMid, purposes, recommend.ExperienceBeginner)
	assert.Equal(t, want, first)

	first.Machines[0].Name = "mutated"
	first.Tips[0] = "mutated"

	second := memoized.GetEquipmentRecommendations(model.TierMid, purposes, recommend.ExperienceBeginner)
	assert.Equal(t, want, second)
}

func TestCalculateMatchPercentage(t *testing.T) {
	memoized, _ := newEngines(t)

	item, err := memoized.FindItem("rancilio-silvia")
	require.NoError(t, err)
	assert.Equal(t, 98, memoized.CalculateMatchPercentage(item, model.TierMid, nil))
	assert.Equal(t, 70, memoized.CalculateMatchPercentage(item, model.TierUnknown, nil))

	grinder, err := memoized.FindItem("comandante-c40")
	require.NoError(t, err)
	assert.Equal(t, "comandante-c40", grinder.ItemID())

	_, err = memoized.FindItem("missing")
	assert.ErrorIs(t, err, common.ErrUnknownCatalog)
}

func TestCalculateAnalytics(t *testing.T) {
	memoized, _ := newEngines(t)
	now := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

	got := memoized.CalculateAnalyticsAt([]model.BrewLogEntry{
		{Date: now.Add(-time.Hour), CoffeeName: "Ethiopia", BrewMethod: "espresso", Rating: 4},
	}, now)

	assert.Equal(t, 1, got.TotalBrews)
	assert.Equal(t, 1, got.ThisWeekBrews)

	empty := memoized.CalculateAnalytics(nil)
	assert.Equal(t, model.NotAvailable, empty.FavoriteMethod)

	memoized.aggregator.Now = func() time.Time { return now.Add(14 * 24 * time.Hour) }
	later := memoized.CalculateAnalytics([]model.BrewLogEntry{
		{Date: now.Add(-time.Hour), CoffeeName: "Ethiopia", BrewMethod: "espresso", Rating: 4},
	})
	assert.Equal(t, 1, later.TotalBrews)
	assert.Zero(t, later.ThisWeekBrews)
}
