package journal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/brewmatch/internal/model"
)

var now = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func entry(ago time.Duration, method, coffee string, rating int) model.BrewLogEntry {
	return model.BrewLogEntry{
		Date:       now.Add(-ago),
		BrewMethod: method,
		CoffeeName: coffee,
		Rating:     rating,
	}
}

func TestCalculate_RecentBrews(t *testing.T) {
	day := 24 * time.Hour
	entries := []model.BrewLogEntry{
		entry(time.Hour, "espresso", "Ethiopia", 4),
		entry(day, "espresso", "Ethiopia", 5),
		entry(8*day, "pour-over", "Kenya", 3),
	}

	agg := &Aggregator{Now: func() time.Time { return now }}
	got := agg.Calculate(entries)

	assert.Equal(t, 3, got.TotalBrews)
	assert.InDelta(t, 4.0, got.AverageRating, 1e-9)
	assert.Equal(t, "espresso", got.FavoriteMethod)
	assert.Equal(t, "Ethiopia", got.FavoriteCoffee)
	assert.Equal(t, 2, got.ThisWeekBrews)
	assert.Equal(t, 1, got.LastWeekBrews)
	assert.Equal(t, []model.MethodCount{
		{Method: "espresso", Count: 2, Percentage: 67},
		{Method: "pour-over", Count: 1, Percentage: 33},
	}, got.MethodDistribution)

	require.Len(t, got.RatingTrend, 3)
	assert.Equal(t, []int{3, 5, 4}, []int{got.RatingTrend[0].Rating, got.RatingTrend[1].Rating, got.RatingTrend[2].Rating})
	assert.Equal(t, "Mar 7", got.RatingTrend[0].Label)

	assert.Equal(t, 2, got.WeeklyBrews[3].Count)
	assert.Equal(t, 1, got.WeeklyBrews[2].Count)
	assert.Equal(t, 0, got.WeeklyBrews[1].Count)
	assert.Equal(t, 0, got.WeeklyBrews[0].Count)
	assert.Equal(t, 100, got.WeekOverWeek())
}

func TestCalculate_Empty(t *testing.T) {
	got := CalculateAt(nil, now)

	assert.Equal(t, 0, got.TotalBrews)
	assert.Zero(t, got.AverageRating)
	assert.Equal(t, model.NotAvailable, got.FavoriteMethod)
	assert.Equal(t, model.NotAvailable, got.FavoriteCoffee)
	assert.NotNil(t, got.RatingTrend)
	assert.Empty(t, got.RatingTrend)
	assert.NotNil(t, got.MethodDistribution)
	assert.Empty(t, got.MethodDistribution)

	for i, b := range got.WeeklyBrews {
		assert.Equal(t, 0, b.Count)
		assert.Equal(t, bucketLabels[i], b.Label)
	}
}

func TestCalculate_WeeklyBuckets(t *testing.T) {
	got := CalculateAt([]model.BrewLogEntry{
		entry(Week, "espresso", "a", 3),
		entry(4*Week, "espresso", "a", 3),
		entry(4*Week+time.Second, "espresso", "a", 3),
		entry(0, "espresso", "a", 3),
	}, now)

	assert.Equal(t, now.Add(-4*Week), got.WeeklyBrews[0].Start)
	assert.Equal(t, now, got.WeeklyBrews[3].End)
	for i := 1; i < len(got.WeeklyBrews); i++ {
		assert.Equal(t, got.WeeklyBrews[i-1].End, got.WeeklyBrews[i].Start)
	}

	counts := []int{}
	for _, b := range got.WeeklyBrews {
		counts = append(counts, b.Count)
	}
	// The entry at exactly now and the one past four weeks fall outside.
	assert.Equal(t, []int{1, 0, 0, 1}, counts)
	assert.Equal(t, 1, got.ThisWeekBrews)
	assert.Equal(t, 0, got.LastWeekBrews)
}

func TestCalculate_TrendKeepsLastTen(t *testing.T) {
	var entries []model.BrewLogEntry
	for i := 0; i < 15; i++ {
		entries = append(entries, entry(time.Duration(i)*time.Hour, "espresso", fmt.Sprintf("c%d", i), 1+i%5))
	}

	got := CalculateAt(entries, now)

	require.Len(t, got.RatingTrend, TrendLength)
	for i := 1; i < len(got.RatingTrend); i++ {
		assert.True(t, got.RatingTrend[i-1].Date.Before(got.RatingTrend[i].Date))
	}
	assert.Equal(t, now, got.RatingTrend[TrendLength-1].Date)
}

func TestCalculate_TiesBreakOnFirstOccurrence(t *testing.T) {
	day := 24 * time.Hour
	entries := []model.BrewLogEntry{
		entry(1*day, "aeropress", "Kenya", 4),
		entry(3*day, "espresso", "Colombia", 4),
		entry(2*day, "aeropress", "Colombia", 4),
		entry(4*day, "espresso", "Kenya", 4),
	}

	got := CalculateAt(entries, now)

	assert.Equal(t, "espresso", got.FavoriteMethod)
	assert.Equal(t, "Kenya", got.FavoriteCoffee)
	assert.Equal(t, []model.MethodCount{
		{Method: "espresso", Count: 2, Percentage: 50},
		{Method: "aeropress", Count: 2, Percentage: 50},
	}, got.MethodDistribution)
}

func TestCalculate_DoesNotReorderInput(t *testing.T) {
	entries := []model.BrewLogEntry{
		entry(0, "espresso", "a", 5),
		entry(Week, "espresso", "b", 4),
	}

	CalculateAt(entries, now)

	assert.Equal(t, "a", entries[0].CoffeeName)
}

func TestAggregator_NilClock(t *testing.T) {
	var agg Aggregator
	got := agg.Calculate([]model.BrewLogEntry{{Date: time.Now().Add(-time.Minute), BrewMethod: "espresso", CoffeeName: "x", Rating: 5}})

	assert.Equal(t, 1, got.ThisWeekBrews)
}
