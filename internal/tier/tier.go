// Package tier scores how well a catalog item's price tier fits a budget.
package tier

import "github.com/joshsymonds/brewmatch/internal/model"

// Score components. MaxScore caps every reported score.
const (
	BaseScore     = 70
	ExactBonus    = 30
	AdjacentBonus = 15
	MaxScore      = 98
)

// Distance returns the absolute ordinal distance between two tiers, or -1
// when either tier is unknown.
func Distance(a, b model.PriceTier) int {
	if !a.Known() || !b.Known() {
		return -1
	}
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// Score rates an item tier against a budget on a 0-98 scale. An unset
// budget or an unrecognized item tier earns only the base score.
func Score(item, budget model.PriceTier) int {
	score := BaseScore

	switch Distance(item, budget) {
	case 0:
		score += ExactBonus
	case 1:
		score += AdjacentBonus
	}

	return min(score, MaxScore)
}
