// Package recommend ranks espresso machines and grinders for a budget and
// a set of purposes.
package recommend

import (
	"sort"

	"github.com/joshsymonds/brewmatch/internal/catalog"
	"github.com/joshsymonds/brewmatch/internal/model"
	"github.com/joshsymonds/brewmatch/internal/tier"
)

// Purpose adjustment points.
const (
	PurposeBonus    = 3
	MaxPurposeBonus = 6
)

// Default result sizes.
const (
	DefaultMachineLimit = 3
	DefaultGrinderLimit = 3
	MaxTips             = 5
)

// Options configure a Recommender.
type Options struct {
	MachineLimit int
	GrinderLimit int
}

// Recommender ranks catalog equipment. It is safe for concurrent use.
type Recommender struct {
	machineLimit int
	grinderLimit int
}

// New creates a Recommender. Non-positive limits fall back to defaults.
func New(opts Options) *Recommender {
	if opts.MachineLimit <= 0 {
		opts.MachineLimit = DefaultMachineLimit
	}
	if opts.GrinderLimit <= 0 {
		opts.GrinderLimit = DefaultGrinderLimit
	}
	return &Recommender{machineLimit: opts.MachineLimit, grinderLimit: opts.GrinderLimit}
}

// Recommend returns the best machines and grinders for the budget and
// purposes, along with an explanation and tips.
func (r *Recommender) Recommend(cat catalog.Provider, budget model.PriceTier, purposes []Purpose, experience Experience) model.EquipmentRecommendation {
	return model.EquipmentRecommendation{
		Machines:  rank(cat.Machines(), budget, purposes, r.machineLimit),
		Grinders:  rank(cat.Grinders(), budget, purposes, r.grinderLimit),
		Reasoning: Reasoning(budget, purposes),
		Tips:      Tips(budget, purposes, experience),
	}
}

// MatchPercentage rates one item for the budget and purposes on a 0-98
// scale. Without a budget every item scores the base tier score.
func MatchPercentage(item model.CatalogItem, budget model.PriceTier, purposes []Purpose) int {
	score := tier.Score(item.Tier(), budget)
	if budget.Known() {
		score += PurposeAdjustment(item, purposes)
	}
	return max(0, min(score, tier.MaxScore))
}

// PurposeAdjustment awards points for each purpose the item serves, up to
// MaxPurposeBonus.
func PurposeAdjustment(item model.CatalogItem, purposes []Purpose) int {
	bonus := 0
	seen := make(map[Purpose]bool, len(purposes))
	for _, p := range purposes {
		if seen[p] {
			continue
		}
		seen[p] = true
		if Serves(item, p) {
			bonus += PurposeBonus
		}
	}
	return min(bonus, MaxPurposeBonus)
}

// Serves reports whether an item suits a purpose, either because the
// catalog tags it so or because it has the feature the purpose needs.
func Serves(item model.CatalogItem, p Purpose) bool {
	for _, tag := range item.UseCases() {
		if Purpose(tag) == p {
			return true
		}
	}

	switch it := item.(type) {
	case model.Machine:
		switch p {
		case PurposeMilkDrinks:
			return it.BoilerType == model.BoilerDual || it.BoilerType == model.BoilerHeatExchanger
		case PurposeQuickEspresso:
			return it.BoilerType == model.BoilerThermoblock
		case PurposeExperimenting:
			return it.PreInfusion.Available
		}
	case model.Grinder:
		switch p {
		case PurposePourOver:
			return it.Kind == model.GrinderManual
		case PurposeExperimenting:
			return it.Stepless || it.BurrType == model.BurrFlat
		}
	}
	return false
}

type scored[T model.CatalogItem] struct {
	item  T
	score int
}

// rank orders items best-first and keeps the top limit. Ties break on
// catalog rating and review count when a budget is set, and on catalog
// order otherwise.
func rank[T model.CatalogItem](items []T, budget model.PriceTier, purposes []Purpose, limit int) []T {
	list := make([]scored[T], len(items))
	for i, it := range items {
		list[i] = scored[T]{
			item:  it,
			score: tier.Score(it.Tier(), budget) + PurposeAdjustment(it, purposes),
		}
	}

	useRating := budget.Known()
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if !useRating {
			return false
		}
		if a.item.CatalogRating() != b.item.CatalogRating() {
			return a.item.CatalogRating() > b.item.CatalogRating()
		}
		return a.item.CatalogReviews() > b.item.CatalogReviews()
	})

	n := min(limit, len(list))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = list[i].item
	}
	return out
}
