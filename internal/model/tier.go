package model

import "strings"

// PriceTier is the ordinal price classification shared by user budgets and
// catalog items. The zero value means the tier is unknown or unset.
type PriceTier int

const (
	// TierUnknown is an unset or unrecognized tier.
	TierUnknown PriceTier = iota
	// TierEntry is the cheapest tier.
	TierEntry
	// TierMid is the mid-range tier.
	TierMid
	// TierHigh is the premium tier.
	TierHigh
	// TierProfessional is the prosumer / professional tier.
	TierProfessional
)

// tierAliases maps every accepted spelling to its tier. Catalogs use the
// budget/mid-range/premium/prosumer names and onboarding answers use the
// starter/home-barista/serious/prosumer names.
var tierAliases = map[string]PriceTier{
	"entry":        TierEntry,
	"budget":       TierEntry,
	"starter":      TierEntry,
	"mid":          TierMid,
	"mid-range":    TierMid,
	"home-barista": TierMid,
	"high":         TierHigh,
	"premium":      TierHigh,
	"serious":      TierHigh,
	"professional": TierProfessional,
	"prosumer":     TierProfessional,
}

// ParseTier converts a tier name or alias to a PriceTier. Unrecognized
// names yield TierUnknown.
func ParseTier(s string) PriceTier {
	return tierAliases[strings.ToLower(strings.TrimSpace(s))]
}

// Known reports whether the tier is one of the four real tiers.
func (t PriceTier) Known() bool {
	return t >= TierEntry && t <= TierProfessional
}

// String returns the canonical tier name.
func (t PriceTier) String() string {
	switch t {
	case TierEntry:
		return "entry"
	case TierMid:
		return "mid"
	case TierHigh:
		return "high"
	case TierProfessional:
		return "professional"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t PriceTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode
// to TierUnknown rather than failing.
func (t *PriceTier) UnmarshalText(text []byte) error {
	*t = ParseTier(string(text))
	return nil
}
