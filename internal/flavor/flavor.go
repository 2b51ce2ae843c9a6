// Package flavor narrows a bean catalog to a user-facing taste cluster.
package flavor

import (
	"strings"

	"github.com/joshsymonds/brewmatch/internal/model"
)

// Category is a closed set of taste clusters offered to users.
type Category string

const (
	// None means no flavor preference; filtering returns the full catalog.
	None Category = ""
	// ChocolateNutty matches chocolate, nut and caramel notes.
	ChocolateNutty Category = "chocolate-nutty"
	// FruityBright matches fruit and citrus notes.
	FruityBright Category = "fruity-bright"
	// Balanced matches smooth, clean cups and medium roasts.
	Balanced Category = "balanced"
	// BoldStrong matches intense notes and dark roasts.
	BoldStrong Category = "bold-strong"
)

// Definition is the lookup entry for one category.
type Definition struct {
	Category    Category           `json:"category"`
	Keywords    []string           `json:"keywords"`
	RoastLevels []model.RoastLevel `json:"roastLevels,omitempty"`
}

// definitions is the single source of truth for category matching. Order
// is the order Categories reports.
var definitions = []Definition{
	{
		Category: ChocolateNutty,
		Keywords: []string{"chocolate", "nutty", "hazelnut", "cocoa", "almond", "caramel"},
	},
	{
		Category: FruityBright,
		Keywords: []string{"fruity", "berry", "citrus", "tropical", "bright", "apple", "cherry"},
	},
	{
		Category:    Balanced,
		Keywords:    []string{"balanced", "smooth", "clean", "mild"},
		RoastLevels: []model.RoastLevel{model.RoastMedium},
	},
	{
		Category:    BoldStrong,
		Keywords:    []string{"bold", "intense", "dark", "smoky", "tobacco", "earthy"},
		RoastLevels: []model.RoastLevel{model.RoastDark, model.RoastMediumDark},
	},
}

// Categories lists every category in display order.
func Categories() []Category {
	cats := make([]Category, len(definitions))
	for i, d := range definitions {
		cats[i] = d.Category
	}
	return cats
}

// ParseCategory converts user input to a Category. Unknown input is None.
func ParseCategory(s string) Category {
	want := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, d := range definitions {
		if d.Category == want {
			return want
		}
	}
	return None
}

// Lookup returns the table entry for a category.
func Lookup(c Category) (Definition, bool) {
	for _, d := range definitions {
		if d.Category == c {
			return d, true
		}
	}
	return Definition{}, false
}

// Matches reports whether a bean belongs to the category: any flavor note
// contains a keyword (case-insensitive), or the roast heuristic applies.
func (d Definition) Matches(bean model.Bean) bool {
	for _, level := range d.RoastLevels {
		if bean.RoastLevel == level {
			return true
		}
	}

	for _, note := range bean.FlavorNotes {
		lower := strings.ToLower(note)
		for _, kw := range d.Keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// Filter returns the beans in the category, preserving catalog order.
// When the category is None or unknown, or nothing matches, the input is
// returned unchanged so callers always have something to rank.
func Filter(beans []model.Bean, c Category) []model.Bean {
	def, ok := Lookup(c)
	if !ok {
		return beans
	}

	filtered := make([]model.Bean, 0, len(beans))
	for _, b := range beans {
		if def.Matches(b) {
			filtered = append(filtered, b)
		}
	}

	if len(filtered) == 0 {
		return beans
	}
	return filtered
}
