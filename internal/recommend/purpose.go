package recommend

import "strings"

// Purpose is what the user wants to do with their equipment.
type Purpose string

// Recognized purposes.
const (
	PurposeQuickEspresso Purpose = "quick-espresso"
	PurposeMilkDrinks    Purpose = "milk-drinks"
	PurposePourOver      Purpose = "pour-over"
	PurposeColdBrew      Purpose = "cold-brew"
	PurposeExperimenting Purpose = "experimenting"
	PurposeFullSetup     Purpose = "full-setup"
)

var purposes = []Purpose{
	PurposeQuickEspresso,
	PurposeMilkDrinks,
	PurposePourOver,
	PurposeColdBrew,
	PurposeExperimenting,
	PurposeFullSetup,
}

// Purposes lists every recognized purpose.
func Purposes() []Purpose {
	out := make([]Purpose, len(purposes))
	copy(out, purposes)
	return out
}

// ParsePurpose converts a purpose name. The second result is false for
// unrecognized names.
func ParsePurpose(s string) (Purpose, bool) {
	p := Purpose(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range purposes {
		if p == known {
			return p, true
		}
	}
	return "", false
}

// ParsePurposes converts purpose names, dropping unknown and repeated
// ones.
func ParsePurposes(names []string) []Purpose {
	out := make([]Purpose, 0, len(names))
	for _, name := range names {
		p, ok := ParsePurpose(name)
		if !ok || containsPurpose(out, p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func containsPurpose(list []Purpose, p Purpose) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}

// Experience is the user's self-reported skill level.
type Experience string

// Recognized experience levels. The zero value means unset.
const (
	ExperienceUnset        Experience = ""
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// ParseExperience converts an experience name. Unknown names are unset.
func ParseExperience(s string) Experience {
	switch e := Experience(strings.ToLower(strings.TrimSpace(s))); e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return e
	default:
		return ExperienceUnset
	}
}
