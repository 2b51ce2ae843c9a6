package matcher

// Weights are the point contributions of each scoring factor. The sum of
// the maximum contributions exceeds 100; scores are capped.
type Weights struct {
	// Roast fit for the machine type.
	RoastPreferred int `mapstructure:"roast_preferred"`
	RoastRankStep  int `mapstructure:"roast_rank_step"`
	RoastOther     int `mapstructure:"roast_other"`

	// Brew method support.
	BrewSupported   int `mapstructure:"brew_supported"`
	BrewUnsupported int `mapstructure:"brew_unsupported"`

	// Grinder fit.
	GrinderLightPrecise int `mapstructure:"grinder_light_precise"`
	GrinderLightBasic   int `mapstructure:"grinder_light_basic"`
	GrinderBase         int `mapstructure:"grinder_base"`
	GrinderQualityStep  int `mapstructure:"grinder_quality_step"`
	BurrBonus           int `mapstructure:"burr_bonus"`
	GrinderNeutral      int `mapstructure:"grinder_neutral"`

	// Machine features.
	PressureBody   int `mapstructure:"pressure_body"`
	PreInfusion    int `mapstructure:"pre_infusion"`
	MachineNeutral int `mapstructure:"machine_neutral"`

	// Cup balance and catalog rating.
	BalanceMax  int `mapstructure:"balance_max"`
	RatingBoost int `mapstructure:"rating_boost"`
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		RoastPreferred:      30,
		RoastRankStep:       5,
		RoastOther:          5,
		BrewSupported:       25,
		BrewUnsupported:     5,
		GrinderLightPrecise: 20,
		GrinderLightBasic:   10,
		GrinderBase:         15,
		GrinderQualityStep:  2,
		BurrBonus:           5,
		GrinderNeutral:      10,
		PressureBody:        10,
		PreInfusion:         5,
		MachineNeutral:      10,
		BalanceMax:          10,
		RatingBoost:         5,
	}
}

// Thresholds used by the machine factor.
const (
	HighPressureBar = 15
	FullBody        = 7
)

// Display limits. They are also ceilings: larger values are clamped.
const (
	DefaultMaxReasons = 2
	DefaultLimit      = 5
	MaxTips           = 3
)
