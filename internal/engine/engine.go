// Package engine is the single entry point to bean matching, equipment
// recommendation and brew-log analytics.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joshsymonds/brewmatch/internal/catalog"
	"github.com/joshsymonds/brewmatch/internal/common"
	"github.com/joshsymonds/brewmatch/internal/flavor"
	"github.com/joshsymonds/brewmatch/internal/journal"
	"github.com/joshsymonds/brewmatch/internal/matcher"
	"github.com/joshsymonds/brewmatch/internal/model"
	"github.com/joshsymonds/brewmatch/internal/recommend"
)

// Engine scores catalog data for users. All methods are safe for
// concurrent use.
type Engine struct {
	catalog     catalog.Provider
	matcher     *matcher.Matcher
	recommender *recommend.Recommender
	memo        *memo
	aggregator  *journal.Aggregator
}

// Config holds configuration options for the engine.
type Config struct {
	Matcher   matcher.Options
	Recommend recommend.Options
	// MemoSize bounds the result cache. Zero disables memoization.
	MemoSize int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Matcher:   matcher.DefaultOptions(),
		Recommend: recommend.Options{MachineLimit: recommend.DefaultMachineLimit, GrinderLimit: recommend.DefaultGrinderLimit},
		MemoSize:  256,
	}
}

// New creates an engine with the default configuration.
func New(cat catalog.Provider) (*Engine, error) {
	return NewWithConfig(cat, DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(cat catalog.Provider, cfg Config) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("%w: catalog is required", common.ErrInvalidConfig)
	}

	e := &Engine{
		catalog:     cat,
		matcher:     matcher.New(cfg.Matcher),
		recommender: recommend.New(cfg.Recommend),
		aggregator:  journal.NewAggregator(),
	}

	if cfg.MemoSize > 0 {
		m, err := newMemo(cfg.MemoSize)
		if err != nil {
			return nil, err
		}
		e.memo = m
	}

	slog.Debug("Engine initialized",
		"catalog_version", cat.Version(),
		"memo_size", cfg.MemoSize)

	return e, nil
}

// Catalog returns the catalog the engine scores against.
func (e *Engine) Catalog() catalog.Provider {
	return e.catalog
}

type beanMatchInput struct {
	Beans   []model.Bean           `json:"beans"`
	Profile model.EquipmentProfile `json:"profile"`
	Machine *model.Machine         `json:"machine"`
	Grinder *model.Grinder         `json:"grinder"`
}

// MatchBeansToEquipment returns the best beans for the equipment, at most
// the configured limit, best first.
func (e *Engine) MatchBeansToEquipment(beans []model.Bean, profile model.EquipmentProfile, machine *model.Machine, grinder *model.Grinder) []model.BeanMatch {
	// Cached results are deep copies, detached from the caller's beans.
	compute := func() any {
		return cloneMatches(e.matcher.Top(beans, profile, machine, grinder, 0))
	}

	result := e.memo.do("beans", beanMatchInput{Beans: beans, Profile: profile, Machine: machine, Grinder: grinder}, e.catalog.Version(), compute)
	return cloneMatches(result.([]model.BeanMatch))
}

// MatchBeansForFlavor narrows the catalog to a flavor category and ranks
// the result for the profile. Machine and grinder details are looked up
// from the profile's IDs; an unknown ID is an error.
func (e *Engine) MatchBeansForFlavor(profile model.EquipmentProfile, category flavor.Category) ([]model.BeanMatch, error) {
	var machine *model.Machine
	if profile.MachineID != "" {
		m, ok := e.catalog.Machine(profile.MachineID)
		if !ok {
			return nil, fmt.Errorf("%w: machine %q", common.ErrUnknownCatalog, profile.MachineID)
		}
		machine = &m
	}

	var grinder *model.Grinder
	if profile.GrinderID != "" {
		g, ok := e.catalog.Grinder(profile.GrinderID)
		if !ok {
			return nil, fmt.Errorf("%w: grinder %q", common.ErrUnknownCatalog, profile.GrinderID)
		}
		grinder = &g
		if profile.GrinderKind == "" {
			profile.GrinderKind = g.Kind
		}
		if profile.BurrType == "" {
			profile.BurrType = g.BurrType
		}
	}

	beans := flavor.Filter(e.catalog.Beans(), category)
	return e.MatchBeansToEquipment(beans, profile, machine, grinder), nil
}

type recommendationInput struct {
	Budget     model.PriceTier      `json:"budget"`
	Purposes   []recommend.Purpose  `json:"purposes"`
	Experience recommend.Experience `json:"experience"`
}

// GetEquipmentRecommendations ranks catalog machines and grinders for the
// budget and purposes.
func (e *Engine) GetEquipmentRecommendations(budget model.PriceTier, purposes []recommend.Purpose, experience recommend.Experience) model.EquipmentRecommendation {
	compute := func() any {
		return cloneRecommendation(e.recommender.Recommend(e.catalog, budget, purposes, experience))
	}

	result := e.memo.do("equipment", recommendationInput{Budget: budget, Purposes: purposes, Experience: experience}, e.catalog.Version(), compute)
	return cloneRecommendation(result.(model.EquipmentRecommendation))
}

// CalculateMatchPercentage rates one catalog item for a budget and purposes.
func (e *Engine) CalculateMatchPercentage(item model.CatalogItem, budget model.PriceTier, purposes []recommend.Purpose) int {
	return recommend.MatchPercentage(item, budget, purposes)
}

// CalculateAnalytics summarizes brew-log entries as of now.
func (e *Engine) CalculateAnalytics(entries []model.BrewLogEntry) model.AnalyticsSummary {
	return e.aggregator.Calculate(entries)
}

// CalculateAnalyticsAt summarizes brew-log entries as of the given time.
func (e *Engine) CalculateAnalyticsAt(entries []model.BrewLogEntry, now time.Time) model.AnalyticsSummary {
	return journal.CalculateAt(entries, now)
}

// FindItem looks up a machine or grinder by ID.
func (e *Engine) FindItem(id string) (model.CatalogItem, error) {
	item, ok := e.catalog.Item(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownCatalog, id)
	}
	return item, nil
}

// MemoStats reports cache hits and misses since the engine was created.
func (e *Engine) MemoStats() (hits, misses uint64) {
	return e.memo.stats()
}
