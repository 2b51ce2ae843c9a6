package model

import "time"

// NotAvailable is the sentinel shown for favorites when there is no data.
const NotAvailable = "N/A"

// BrewLogEntry is one user-authored brewing journal record.
type BrewLogEntry struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date" validate:"required"`
	CoffeeName      string    `json:"coffeeName" validate:"required,max=200"`
	BrewMethod      string    `json:"brewMethod" validate:"required,max=100"`
	GrindSize       string    `json:"grindSize,omitempty" validate:"max=50"`
	DoseGrams       float64   `json:"coffeeAmount" validate:"gte=0,lte=1000"`
	WaterGrams      float64   `json:"waterAmount" validate:"gte=0,lte=10000"`
	BrewTimeSeconds int       `json:"brewTime" validate:"gte=0"`
	WaterTempC      float64   `json:"waterTemp" validate:"gte=0,lte=100"`
	Rating          int       `json:"rating" validate:"min=1,max=5"`
	Notes           string    `json:"notes,omitempty"`
	TastingNotes    []string  `json:"tastingNotes,omitempty"`
}

// Ratio returns the water-to-coffee brew ratio, or 0 without a dose.
func (e BrewLogEntry) Ratio() float64 {
	if e.DoseGrams <= 0 {
		return 0
	}
	return e.WaterGrams / e.DoseGrams
}

// RatingPoint is one point on the rating trend chart.
type RatingPoint struct {
	Date   time.Time `json:"date"`
	Label  string    `json:"label"`
	Rating int       `json:"rating"`
}

// MethodCount is the number of brews for one method.
type MethodCount struct {
	Method     string `json:"method"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// WeekBucket counts brews in the half-open interval [Start, End).
type WeekBucket struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
	Count int       `json:"count"`
}

// WeeklyBucketCount is the number of trailing weeks in the histogram.
const WeeklyBucketCount = 4

// AnalyticsSummary is the statistics view over a user's brew log.
type AnalyticsSummary struct {
	TotalBrews         int                           `json:"totalBrews"`
	AverageRating      float64                       `json:"averageRating"`
	FavoriteMethod     string                        `json:"favoriteMethod"`
	FavoriteCoffee     string                        `json:"favoriteCoffee"`
	ThisWeekBrews      int                           `json:"thisWeekBrews"`
	LastWeekBrews      int                           `json:"lastWeekBrews"`
	RatingTrend        []RatingPoint                 `json:"ratingTrend"`
	MethodDistribution []MethodCount                 `json:"methodDistribution"`
	WeeklyBrews        [WeeklyBucketCount]WeekBucket `json:"weeklyBrews"`
}

// WeekOverWeek returns the change in brew count from last week to this
// week as a whole percentage. It is 0 when last week had no brews.
func (s AnalyticsSummary) WeekOverWeek() int {
	if s.LastWeekBrews == 0 {
		return 0
	}
	delta := float64(s.ThisWeekBrews-s.LastWeekBrews) / float64(s.LastWeekBrews) * 100
	if delta < 0 {
		return -int(-delta + 0.5)
	}
	return int(delta + 0.5)
}
