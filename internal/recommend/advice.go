package recommend

import (
	"strings"

	"github.com/joshsymonds/brewmatch/internal/model"
)

var budgetReasoning = map[model.PriceTier]string{
	model.TierEntry:        "For your starter budget, we focused on reliable entry-level equipment that delivers great value.",
	model.TierMid:          "Your home barista budget opens up excellent mid-range options with more features and better build quality.",
	model.TierHigh:         "With your serious setup budget, you can access prosumer-grade equipment with professional features.",
	model.TierProfessional: "Your prosumer budget allows for café-quality equipment that will last for years.",
}

var purposeReasoning = []struct {
	purpose Purpose
	text    string
}{
	{PurposeMilkDrinks, "Since you enjoy milk-based drinks, we prioritized machines with capable steam wands."},
	{PurposeQuickEspresso, "For quick morning espresso, we selected machines with fast heat-up times."},
	{PurposePourOver, "For pour-over brewing, grind consistency is key, so we included versatile grinders."},
	{PurposeExperimenting, "To support experimenting, we favored grinders and machines that give you fine control."},
	{PurposeColdBrew, "For cold brew, we looked for grinders that handle a consistent coarse grind."},
}

const defaultReasoning = "Here are some popular options to get you started."

// Reasoning explains a recommendation in a few sentences.
func Reasoning(budget model.PriceTier, purposes []Purpose) string {
	var parts []string

	if text, ok := budgetReasoning[budget]; ok {
		parts = append(parts, text)
	}
	for _, pr := range purposeReasoning {
		if containsPurpose(purposes, pr.purpose) {
			parts = append(parts, pr.text)
		}
	}

	if len(parts) == 0 {
		return defaultReasoning
	}
	return strings.Join(parts, " ")
}

// Tips returns up to MaxTips buying and brewing tips.
func Tips(budget model.PriceTier, purposes []Purpose, experience Experience) []string {
	if !budget.Known() && len(purposes) == 0 {
		return []string{
			"Consider your daily coffee consumption",
			"Quality grinder is as important as the machine",
		}
	}

	tips := []string{
		"Invest in a quality grinder - it makes more difference than the machine.",
		"Use freshly roasted beans (within 2-4 weeks of roast date).",
	}

	switch budget {
	case model.TierEntry:
		tips = append(tips,
			"Consider buying used equipment from reputable sellers to stretch your budget.",
			"A pressurized portafilter is forgiving for beginners.")
	case model.TierMid, model.TierHigh:
		tips = append(tips,
			"Non-pressurized baskets give you more control but require precise grinding.",
			"Consider a bottomless portafilter to diagnose your shots.")
	case model.TierProfessional:
		tips = append(tips,
			"Plumb-in options can improve convenience and temperature stability.",
			"Consider a water filtration system to protect your investment.")
	}

	if containsPurpose(purposes, PurposeMilkDrinks) {
		tips = append(tips,
			"Practice steaming with water first to save milk while learning.",
			"Whole milk (3.5% fat) is easiest to steam for beginners.")
	}
	if containsPurpose(purposes, PurposePourOver) {
		tips = append(tips,
			"A gooseneck kettle gives you better control for pour-over.",
			"Use a scale for consistent results.")
	}

	if experience == ExperienceBeginner {
		tips = append(tips,
			"Don't chase perfection - enjoy the learning process!",
			"Start with a medium roast to learn extraction basics.")
	}

	if len(tips) > MaxTips {
		tips = tips[:MaxTips]
	}
	return tips
}
