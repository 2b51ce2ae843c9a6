package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeanMatches_Sort(t *testing.T) {
	matches := BeanMatches{
		{Bean: Bean{ID: "a", Rating: 4.5, ReviewCount: 10}, MatchScore: 80},
		{Bean: Bean{ID: "b", Rating: 4.8, ReviewCount: 10}, MatchScore: 80},
		{Bean: Bean{ID: "c", Rating: 4.8, ReviewCount: 50}, MatchScore: 80},
		{Bean: Bean{ID: "d", Rating: 3.0, ReviewCount: 1}, MatchScore: 95},
		{Bean: Bean{ID: "e", Rating: 4.5, ReviewCount: 10}, MatchScore: 80},
	}

	matches.Sort()

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.Bean.ID)
	}
	assert.Equal(t, []string{"d", "c", "b", "a", "e"}, ids)
}

func TestBeanMatches_TopN(t *testing.T) {
	matches := BeanMatches{
		{Bean: Bean{ID: "a"}, MatchScore: 10},
		{Bean: Bean{ID: "b"}, MatchScore: 30},
		{Bean: Bean{ID: "c"}, MatchScore: 20},
	}

	top := matches.TopN(2)
	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].Bean.ID)
	assert.Equal(t, "c", top[1].Bean.ID)

	assert.Len(t, matches.TopN(10), 3)
	assert.Empty(t, matches.TopN(0))

	top[0].MatchScore = 0
	assert.Equal(t, 30, matches[0].MatchScore, "TopN must return a copy")
}

func TestAnalyticsSummary_WeekOverWeek(t *testing.T) {
	assert.Equal(t, 0, AnalyticsSummary{ThisWeekBrews: 3}.WeekOverWeek())
	assert.Equal(t, 50, AnalyticsSummary{ThisWeekBrews: 3, LastWeekBrews: 2}.WeekOverWeek())
	assert.Equal(t, -50, AnalyticsSummary{ThisWeekBrews: 1, LastWeekBrews: 2}.WeekOverWeek())
}

func TestBrewLogEntry_Ratio(t *testing.T) {
	assert.InDelta(t, 16.0, BrewLogEntry{DoseGrams: 15, WaterGrams: 240}.Ratio(), 0.001)
	assert.Zero(t, BrewLogEntry{WaterGrams: 240}.Ratio())
}
