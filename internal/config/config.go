// Package config loads brewmatch settings from files, environment and flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/joshsymonds/brewmatch/internal/common"
	"github.com/joshsymonds/brewmatch/internal/engine"
	"github.com/joshsymonds/brewmatch/internal/matcher"
	"github.com/joshsymonds/brewmatch/internal/recommend"
)

// EnvPrefix prefixes every environment variable override, e.g.
// BREWMATCH_DATABASE_PATH.
const EnvPrefix = "BREWMATCH"

// Config is the typed view of all configuration keys.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Engine    EngineConfig    `mapstructure:"engine"`
	Matcher   MatcherConfig   `mapstructure:"matcher"`
	Recommend RecommendConfig `mapstructure:"recommend"`
	Server    ServerConfig    `mapstructure:"server"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// DatabaseConfig locates the journal database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// CatalogConfig optionally replaces the built-in catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// EngineConfig tunes the recommendation engine.
type EngineConfig struct {
	MemoSize int `mapstructure:"memo_size" validate:"gte=0"`
}

// MatcherConfig holds bean matcher weights and display limits.
type MatcherConfig struct {
	Weights    matcher.Weights `mapstructure:",squash"`
	MaxReasons int             `mapstructure:"max_reasons" validate:"gte=1,lte=2"`
	Limit      int             `mapstructure:"limit" validate:"gte=1,lte=5"`
}

// RecommendConfig holds equipment recommendation limits.
type RecommendConfig struct {
	MachineLimit int `mapstructure:"machine_limit" validate:"gte=1"`
	GrinderLimit int `mapstructure:"grinder_limit" validate:"gte=1"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// SetDefaults registers the default value of every key so that
// environment overrides and Unmarshal see all of them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("database.path", DefaultDatabasePath())
	v.SetDefault("catalog.path", "")
	v.SetDefault("engine.memo_size", 256)

	w := matcher.DefaultWeights()
	v.SetDefault("matcher.roast_preferred", w.RoastPreferred)
	v.SetDefault("matcher.roast_rank_step", w.RoastRankStep)
	v.SetDefault("matcher.roast_other", w.RoastOther)
	v.SetDefault("matcher.brew_supported", w.BrewSupported)
	v.SetDefault("matcher.brew_unsupported", w.BrewUnsupported)
	v.SetDefault("matcher.grinder_light_precise", w.GrinderLightPrecise)
	v.SetDefault("matcher.grinder_light_basic", w.GrinderLightBasic)
	v.SetDefault("matcher.grinder_base", w.GrinderBase)
	v.SetDefault("matcher.grinder_quality_step", w.GrinderQualityStep)
	v.SetDefault("matcher.burr_bonus", w.BurrBonus)
	v.SetDefault("matcher.grinder_neutral", w.GrinderNeutral)
	v.SetDefault("matcher.pressure_body", w.PressureBody)
	v.SetDefault("matcher.pre_infusion", w.PreInfusion)
	v.SetDefault("matcher.machine_neutral", w.MachineNeutral)
	v.SetDefault("matcher.balance_max", w.BalanceMax)
	v.SetDefault("matcher.rating_boost", w.RatingBoost)
	v.SetDefault("matcher.max_reasons", matcher.DefaultMaxReasons)
	v.SetDefault("matcher.limit", matcher.DefaultLimit)

	v.SetDefault("recommend.machine_limit", recommend.DefaultMachineLimit)
	v.SetDefault("recommend.grinder_limit", recommend.DefaultGrinderLimit)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
}

// BindEnv enables BREWMATCH_* environment overrides for every key.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	cfg.Database.Path = ExpandPath(cfg.Database.Path)
	cfg.Catalog.Path = ExpandPath(cfg.Catalog.Path)

	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("%w: %s failed %q", common.ErrInvalidConfig, verrs[0].Namespace(), verrs[0].Tag())
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	return &cfg, nil
}

// EngineConfig converts the loaded settings into an engine configuration.
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		Matcher: matcher.Options{
			Weights:    c.Matcher.Weights,
			MaxReasons: c.Matcher.MaxReasons,
			Limit:      c.Matcher.Limit,
		},
		Recommend: recommend.Options{
			MachineLimit: c.Recommend.MachineLimit,
			GrinderLimit: c.Recommend.GrinderLimit,
		},
		MemoSize: c.Engine.MemoSize,
	}
}
