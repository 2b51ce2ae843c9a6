package model

import "strings"

// RoastLevel is how dark a bean was roasted. Levels are ordered from
// light to dark.
type RoastLevel string

const (
	// RoastLight is the lightest roast level.
	RoastLight RoastLevel = "light"
	// RoastMediumLight sits between light and medium.
	RoastMediumLight RoastLevel = "medium-light"
	// RoastMedium is a medium roast.
	RoastMedium RoastLevel = "medium"
	// RoastMediumDark sits between medium and dark.
	RoastMediumDark RoastLevel = "medium-dark"
	// RoastDark is the darkest roast level.
	RoastDark RoastLevel = "dark"
)

var roastOrder = []RoastLevel{RoastLight, RoastMediumLight, RoastMedium, RoastMediumDark, RoastDark}

// Ordinal returns the position of the roast from 0 (light) to 4 (dark),
// or -1 for an unrecognized roast.
func (r RoastLevel) Ordinal() int {
	for i, level := range roastOrder {
		if level == r {
			return i
		}
	}
	return -1
}

// IsLight reports whether the roast is light or medium-light.
func (r RoastLevel) IsLight() bool {
	return r == RoastLight || r == RoastMediumLight
}

// IsDark reports whether the roast is medium-dark or dark.
func (r RoastLevel) IsDark() bool {
	return r == RoastMediumDark || r == RoastDark
}

// Label renders the roast for sentences, e.g. "medium light".
func (r RoastLevel) Label() string {
	return strings.ReplaceAll(string(r), "-", " ")
}

// BrewMethod is a way of brewing that a bean is suited to.
type BrewMethod string

const (
	// BrewEspresso is pressurized espresso extraction.
	BrewEspresso BrewMethod = "espresso"
	// BrewFilter covers pour-over and other drip methods.
	BrewFilter BrewMethod = "filter"
	// BrewFrenchPress is full immersion in a french press.
	BrewFrenchPress BrewMethod = "french-press"
	// BrewMokaPot is stovetop moka pot brewing.
	BrewMokaPot BrewMethod = "moka-pot"
	// BrewColdBrew is long cold steeping.
	BrewColdBrew BrewMethod = "cold-brew"
)

// Label renders the brew method for sentences.
func (m BrewMethod) Label() string {
	return strings.ReplaceAll(string(m), "-", " ")
}

// ProcessMethod is how the coffee cherry was processed.
type ProcessMethod string

const (
	// ProcessWashed is the washed (wet) process.
	ProcessWashed ProcessMethod = "washed"
	// ProcessNatural is the natural (dry) process.
	ProcessNatural ProcessMethod = "natural"
	// ProcessHoney is the honey (pulped natural) process.
	ProcessHoney ProcessMethod = "honey"
	// ProcessAnaerobic is anaerobic fermentation.
	ProcessAnaerobic ProcessMethod = "anaerobic"
)

// TasteProfile rates the cup on four axes, each from 1 to 10.
type TasteProfile struct {
	Acidity    int `json:"acidity" validate:"min=1,max=10"`
	Body       int `json:"body" validate:"min=1,max=10"`
	Sweetness  int `json:"sweetness" validate:"min=1,max=10"`
	Bitterness int `json:"bitterness" validate:"min=1,max=10"`
}
