package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/joshsymonds/brewmatch/internal/model"
)

// memo caches pure results keyed on the catalog version and the call's
// inputs. Concurrent misses on one key share a single computation. A nil
// memo computes every call.
type memo struct {
	cache  *lru.Cache[string, any]
	group  singleflight.Group
	hits   atomic.Uint64
	misses atomic.Uint64
}

func newMemo(size int) (*memo, error) {
	cache, err := lru.New[string, any](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create memo cache: %w", err)
	}
	return &memo{cache: cache}, nil
}

// memoKey hashes the kind, catalog version and JSON-encoded inputs.
func memoKey(kind, version string, input any) (string, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return "", err
	}

	h := sha256.New()
	h.Write([]byte(kind))
	h.Write([]byte{0})
	h.Write([]byte(version))
	h.Write([]byte{0})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (m *memo) do(kind string, input any, version string, compute func() any) any {
	if m == nil {
		return compute()
	}

	key, err := memoKey(kind, version, input)
	if err != nil {
		slog.Debug("Skipping memo for unencodable input", "kind", kind, "error", err)
		return compute()
	}

	if v, ok := m.cache.Get(key); ok {
		m.hits.Add(1)
		return v
	}

	v, _, _ := m.group.Do(key, func() (any, error) {
		if cached, ok := m.cache.Get(key); ok {
			m.hits.Add(1)
			return cached, nil
		}
		m.misses.Add(1)
		result := compute()
		m.cache.Add(key, result)
		return result, nil
	})
	return v
}

func (m *memo) stats() (hits, misses uint64) {
	if m == nil {
		return 0, 0
	}
	return m.hits.Load(), m.misses.Load()
}

func cloneBean(b model.Bean) model.Bean {
	b.FlavorNotes = slices.Clone(b.FlavorNotes)
	b.BrewMethods = slices.Clone(b.BrewMethods)
	b.RecommendedFor = slices.Clone(b.RecommendedFor)
	return b
}

func cloneMatches(in model.BeanMatches) []model.BeanMatch {
	out := make([]model.BeanMatch, len(in))
	for i, match := range in {
		out[i] = model.BeanMatch{
			Bean:         cloneBean(match.Bean),
			MatchScore:   match.MatchScore,
			MatchReasons: slices.Clone(match.MatchReasons),
			BrewTips:     slices.Clone(match.BrewTips),
		}
	}
	return out
}

func cloneRecommendation(in model.EquipmentRecommendation) model.EquipmentRecommendation {
	out := model.EquipmentRecommendation{
		Machines:  make([]model.Machine, len(in.Machines)),
		Grinders:  make([]model.Grinder, len(in.Grinders)),
		Reasoning: in.Reasoning,
		Tips:      slices.Clone(in.Tips),
	}
	for i, m := range in.Machines {
		m.BestFor = slices.Clone(m.BestFor)
		out.Machines[i] = m
	}
	for i, g := range in.Grinders {
		g.BestFor = slices.Clone(g.BestFor)
		out.Grinders[i] = g
	}
	return out
}
