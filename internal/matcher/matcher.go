// Package matcher scores catalog beans against a user's brewing equipment.
package matcher

import (
	"fmt"
	"math"
	"sort"

	"github.com/joshsymonds/brewmatch/internal/model"
)

// roastPreferences lists, per machine type, the roasts it suits best
// first.
var roastPreferences = map[model.MachineType][]model.RoastLevel{
	model.MachineSuperAutomatic: {model.RoastMedium, model.RoastMediumDark, model.RoastDark},
	model.MachineAutomatic:      {model.RoastMedium, model.RoastMediumDark},
	model.MachineSemiAutomatic:  {model.RoastMediumLight, model.RoastMedium, model.RoastMediumDark},
	model.MachineManual:         {model.RoastLight, model.RoastMediumLight, model.RoastMedium},
	model.MachinePourOver:       {model.RoastLight, model.RoastMediumLight},
	model.MachineFrenchPress:    {model.RoastMedium, model.RoastMediumDark, model.RoastDark},
	model.MachineMokaPot:        {model.RoastMediumDark, model.RoastDark},
	model.MachineAeroPress:      {model.RoastLight, model.RoastMediumLight, model.RoastMedium},
}

var machineBrewMethod = map[model.MachineType]model.BrewMethod{
	model.MachineSuperAutomatic: model.BrewEspresso,
	model.MachineAutomatic:      model.BrewEspresso,
	model.MachineSemiAutomatic:  model.BrewEspresso,
	model.MachineManual:         model.BrewEspresso,
	model.MachinePourOver:       model.BrewFilter,
	model.MachineFrenchPress:    model.BrewFrenchPress,
	model.MachineMokaPot:        model.BrewMokaPot,
	model.MachineAeroPress:      model.BrewFilter,
}

// Options configure a Matcher.
type Options struct {
	Weights    Weights
	MaxReasons int
	Limit      int
}

// DefaultOptions returns the standard matcher configuration.
func DefaultOptions() Options {
	return Options{
		Weights:    DefaultWeights(),
		MaxReasons: DefaultMaxReasons,
		Limit:      DefaultLimit,
	}
}

// Matcher ranks beans for an equipment profile. It holds no mutable state
// and is safe for concurrent use.
type Matcher struct {
	weights    Weights
	maxReasons int
	limit      int
}

// New creates a Matcher. Limits outside 1..default are replaced by the
// defaults.
func New(opts Options) *Matcher {
	if opts.MaxReasons <= 0 || opts.MaxReasons > DefaultMaxReasons {
		opts.MaxReasons = DefaultMaxReasons
	}
	if opts.Limit <= 0 || opts.Limit > DefaultLimit {
		opts.Limit = DefaultLimit
	}
	return &Matcher{
		weights:    opts.Weights,
		maxReasons: opts.MaxReasons,
		limit:      opts.Limit,
	}
}

// Limit is the default number of matches Top returns.
func (m *Matcher) Limit() int {
	return m.limit
}

// Match scores every bean and returns them ranked best-first.
func (m *Matcher) Match(beans []model.Bean, profile model.EquipmentProfile, machine *model.Machine, grinder *model.Grinder) model.BeanMatches {
	matches := make(model.BeanMatches, 0, len(beans))
	for _, b := range beans {
		matches = append(matches, m.Score(b, profile, machine, grinder))
	}
	matches.Sort()
	return matches
}

// Top returns the best limit matches. A non-positive limit uses the
// matcher's configured limit.
func (m *Matcher) Top(beans []model.Bean, profile model.EquipmentProfile, machine *model.Machine, grinder *model.Grinder, limit int) model.BeanMatches {
	if limit <= 0 || limit > m.limit {
		limit = m.limit
	}
	return m.Match(beans, profile, machine, grinder).TopN(limit)
}

type reason struct {
	text   string
	points int
}

type scorecard struct {
	total   float64
	reasons []reason
	tips    []string
}

func (s *scorecard) add(points int, text string) {
	s.total += float64(points)
	if text != "" {
		s.reasons = append(s.reasons, reason{text: text, points: points})
	}
}

func (s *scorecard) tip(text string) {
	s.tips = append(s.tips, text)
}

// Score computes a single bean's match.
func (m *Matcher) Score(bean model.Bean, profile model.EquipmentProfile, machine *model.Machine, grinder *model.Grinder) model.BeanMatch {
	machineType := resolveMachineType(profile, machine)
	w := m.weights
	card := &scorecard{}

	m.scoreRoast(card, bean, machineType)
	m.scoreBrewMethod(card, bean, machineType)
	m.scoreGrinder(card, bean, profile, grinder)
	m.scoreMachine(card, bean, machine)

	tp := bean.TasteProfile
	balance := w.BalanceMax - abs(tp.Acidity-tp.Body) - abs(tp.Sweetness-tp.Bitterness)
	card.add(max(0, balance), "")

	card.total += math.Round(float64(w.RatingBoost) * bean.Rating / 5)

	brewTips(card, bean, machineType)

	score := int(math.Round(card.total))
	score = max(0, min(100, score))

	return model.BeanMatch{
		Bean:         bean,
		MatchScore:   score,
		MatchReasons: m.topReasons(card.reasons),
		BrewTips:     truncate(card.tips, MaxTips),
	}
}

func resolveMachineType(profile model.EquipmentProfile, machine *model.Machine) model.MachineType {
	if profile.MachineType != "" {
		return profile.MachineType
	}
	if machine != nil && machine.Type != "" {
		return machine.Type
	}
	return model.MachineSemiAutomatic
}

func (m *Matcher) scoreRoast(card *scorecard, bean model.Bean, machineType model.MachineType) {
	for rank, level := range roastPreferences[machineType] {
		if level == bean.RoastLevel {
			card.add(m.weights.RoastPreferred-rank*m.weights.RoastRankStep,
				fmt.Sprintf("%s roast is ideal for your %s machine", bean.RoastLevel.Label(), machineType.Label()))
			return
		}
	}
	card.add(m.weights.RoastOther, "")
}

func (m *Matcher) scoreBrewMethod(card *scorecard, bean model.Bean, machineType model.MachineType) {
	method, ok := machineBrewMethod[machineType]
	if !ok {
		card.add(m.weights.BrewUnsupported, "")
		return
	}

	if bean.Supports(method) {
		card.add(m.weights.BrewSupported, fmt.Sprintf("Optimized for %s brewing", method.Label()))
		return
	}

	card.add(m.weights.BrewUnsupported, "")
	card.tip(fmt.Sprintf("Consider adjusting grind size for %s brewing", method.Label()))
}

// grinderQuality maps a grinder's price tier to a 1-3 precision rating.
func grinderQuality(t model.PriceTier) int {
	switch t {
	case model.TierMid:
		return 2
	case model.TierHigh, model.TierProfessional:
		return 3
	default:
		return 1
	}
}

func (m *Matcher) scoreGrinder(card *scorecard, bean model.Bean, profile model.EquipmentProfile, grinder *model.Grinder) {
	w := m.weights
	if grinder == nil {
		card.add(w.GrinderNeutral, "")
		return
	}

	quality := grinderQuality(grinder.PriceTier)
	if bean.RoastLevel.IsLight() {
		if quality >= 2 {
			card.add(w.GrinderLightPrecise, fmt.Sprintf("Your %s can handle light roast precision grinding", grinder.Name))
		} else {
			card.add(w.GrinderLightBasic, "")
			card.tip("Light roasts benefit from a more precise grinder")
		}
	} else {
		card.add(w.GrinderBase+quality*w.GrinderQualityStep, fmt.Sprintf("Great match with your %s", grinder.Name))
	}

	burr := profile.BurrType
	if burr == "" {
		burr = grinder.BurrType
	}
	switch {
	case burr == model.BurrFlat && bean.RoastLevel.IsLight():
		card.add(w.BurrBonus, "Flat burrs excel at extracting light roast complexity")
	case burr == model.BurrConical && bean.RoastLevel.IsDark():
		card.add(w.BurrBonus, "Conical burrs bring out rich body in darker roasts")
	}
}

func (m *Matcher) scoreMachine(card *scorecard, bean model.Bean, machine *model.Machine) {
	w := m.weights
	if machine == nil {
		card.add(w.MachineNeutral, "")
		return
	}

	if machine.PumpPressureBar >= HighPressureBar && bean.TasteProfile.Body >= FullBody {
		card.add(w.PressureBody, "High-pressure extraction enhances the full body")
	}

	if machine.PreInfusion.Available && bean.RoastLevel != model.RoastDark {
		card.add(w.PreInfusion, "")
		seconds := machine.PreInfusion.RecommendedSeconds
		if seconds <= 0 {
			seconds = 3
		}
		card.tip(fmt.Sprintf("Use %ds pre-infusion for better extraction", seconds))
	}
}

func brewTips(card *scorecard, bean model.Bean, machineType model.MachineType) {
	switch {
	case machineType.IsEspresso():
		card.tip("Aim for 18-20g dose, 36-40g yield in 25-30 seconds")
		if bean.RoastLevel.IsLight() {
			card.tip("Grind finer and use higher temperature for light roasts")
		}
	case machineType == model.MachinePourOver:
		card.tip("Use 1:15 ratio (15g coffee to 225ml water)")
		card.tip("Water temperature: 92-96°C for optimal extraction")
	case machineType == model.MachineFrenchPress:
		card.tip("Coarse grind, 4-minute steep time")
		card.tip("Use 1:12 ratio for stronger brew")
	case machineType == model.MachineMokaPot:
		card.tip("Fill water to just below the valve")
		card.tip("Use medium-fine grind, not espresso fine")
	}
}

// topReasons orders reasons by their point contribution and keeps the
// strongest few.
func (m *Matcher) topReasons(reasons []reason) []string {
	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].points > reasons[j].points
	})

	n := min(len(reasons), m.maxReasons)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = reasons[i].text
	}
	return out
}

func truncate(items []string, n int) []string {
	out := make([]string, min(len(items), n))
	copy(out, items)
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
