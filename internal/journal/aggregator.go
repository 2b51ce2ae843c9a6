// Package journal turns a brew log into statistics and trend views.
package journal

import (
	"math"
	"sort"
	"time"

	"github.com/joshsymonds/brewmatch/internal/model"
)

// Week is the length of one histogram bucket.
const Week = 7 * 24 * time.Hour

// TrendLength is the number of most recent brews on the rating trend.
const TrendLength = 10

// TrendLabelLayout formats rating trend labels, e.g. "Jan 2".
const TrendLabelLayout = "Jan 2"

var bucketLabels = [model.WeeklyBucketCount]string{
	"3 weeks ago",
	"2 weeks ago",
	"Last week",
	"This week",
}

// Aggregator computes analytics summaries. Now is the clock used for the
// trailing-week windows; nil means time.Now.
type Aggregator struct {
	Now func() time.Time
}

// NewAggregator returns an Aggregator using the wall clock.
func NewAggregator() *Aggregator {
	return &Aggregator{Now: time.Now}
}

// Calculate summarizes the entries relative to the aggregator's clock.
func (a *Aggregator) Calculate(entries []model.BrewLogEntry) model.AnalyticsSummary {
	now := time.Now()
	if a != nil && a.Now != nil {
		now = a.Now()
	}
	return CalculateAt(entries, now)
}

// CalculateAt summarizes the entries relative to now. The input slice is
// not modified.
func CalculateAt(entries []model.BrewLogEntry, now time.Time) model.AnalyticsSummary {
	sorted := make([]model.BrewLogEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	summary := model.AnalyticsSummary{
		TotalBrews:         len(sorted),
		FavoriteMethod:     model.NotAvailable,
		FavoriteCoffee:     model.NotAvailable,
		RatingTrend:        ratingTrend(sorted),
		MethodDistribution: methodDistribution(sorted),
		WeeklyBrews:        weeklyBuckets(sorted, now),
	}

	if len(sorted) == 0 {
		return summary
	}

	total := 0
	for _, e := range sorted {
		total += e.Rating
	}
	summary.AverageRating = float64(total) / float64(len(sorted))

	if len(summary.MethodDistribution) > 0 {
		summary.FavoriteMethod = summary.MethodDistribution[0].Method
	}
	if coffee := mostFrequent(sorted, func(e model.BrewLogEntry) string { return e.CoffeeName }); len(coffee) > 0 {
		summary.FavoriteCoffee = coffee[0].key
	}

	summary.ThisWeekBrews = countBetween(sorted, now.Add(-Week), now)
	summary.LastWeekBrews = countBetween(sorted, now.Add(-2*Week), now.Add(-Week))

	return summary
}

type tally struct {
	key   string
	count int
}

// mostFrequent counts keys and orders them by count, breaking ties by the
// first chronological occurrence. Entries must already be sorted by date.
func mostFrequent(sorted []model.BrewLogEntry, key func(model.BrewLogEntry) string) []tally {
	index := make(map[string]int)
	var tallies []tally

	for _, e := range sorted {
		k := key(e)
		if i, ok := index[k]; ok {
			tallies[i].count++
			continue
		}
		index[k] = len(tallies)
		tallies = append(tallies, tally{key: k, count: 1})
	}

	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].count > tallies[j].count
	})
	return tallies
}

func methodDistribution(sorted []model.BrewLogEntry) []model.MethodCount {
	tallies := mostFrequent(sorted, func(e model.BrewLogEntry) string { return e.BrewMethod })

	dist := make([]model.MethodCount, 0, len(tallies))
	for _, t := range tallies {
		dist = append(dist, model.MethodCount{
			Method:     t.key,
			Count:      t.count,
			Percentage: percentage(t.count, len(sorted)),
		})
	}
	return dist
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) * 100 / float64(total)))
}

func ratingTrend(sorted []model.BrewLogEntry) []model.RatingPoint {
	start := max(0, len(sorted)-TrendLength)
	trend := make([]model.RatingPoint, 0, len(sorted)-start)
	for _, e := range sorted[start:] {
		trend = append(trend, model.RatingPoint{
			Date:   e.Date,
			Label:  e.Date.Format(TrendLabelLayout),
			Rating: e.Rating,
		})
	}
	return trend
}

// weeklyBuckets splits the four weeks before now into half-open
// intervals, oldest first.
func weeklyBuckets(sorted []model.BrewLogEntry, now time.Time) [model.WeeklyBucketCount]model.WeekBucket {
	var buckets [model.WeeklyBucketCount]model.WeekBucket
	for i := range buckets {
		start := now.Add(-time.Duration(model.WeeklyBucketCount-i) * Week)
		end := start.Add(Week)
		buckets[i] = model.WeekBucket{
			Start: start,
			End:   end,
			Label: bucketLabels[i],
			Count: countBetween(sorted, start, end),
		}
	}
	return buckets
}

// countBetween counts entries dated in [start, end).
func countBetween(entries []model.BrewLogEntry, start, end time.Time) int {
	n := 0
	for _, e := range entries {
		if !e.Date.Before(start) && e.Date.Before(end) {
			n++
		}
	}
	return n
}
