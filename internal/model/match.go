package model

import "sort"

// BeanMatch is a scored, justified pairing of a catalog bean with a user's
// equipment. It is derived per request and never persisted.
type BeanMatch struct {
	Bean         Bean     `json:"bean"`
	MatchScore   int      `json:"matchScore"`
	MatchReasons []string `json:"matchReasons"`
	BrewTips     []string `json:"brewTips"`
}

// BeanMatches is a slice of BeanMatch that supports ranking.
type BeanMatches []BeanMatch

// Len implements sort.Interface.
func (m BeanMatches) Len() int {
	return len(m)
}

// Less implements sort.Interface - higher scores come first.
func (m BeanMatches) Less(i, j int) bool {
	if m[i].MatchScore != m[j].MatchScore {
		return m[i].MatchScore > m[j].MatchScore
	}
	if m[i].Bean.Rating != m[j].Bean.Rating {
		return m[i].Bean.Rating > m[j].Bean.Rating
	}
	return m[i].Bean.ReviewCount > m[j].Bean.ReviewCount
}

// Swap implements sort.Interface.
func (m BeanMatches) Swap(i, j int) {
	m[i], m[j] = m[j], m[i]
}

// Sort ranks the matches best-first. The sort is stable so that input
// order is the final tie-break.
func (m BeanMatches) Sort() {
	sort.Stable(m)
}

// TopN returns a copy of the N best matches.
func (m BeanMatches) TopN(n int) BeanMatches {
	if n <= 0 {
		return BeanMatches{}
	}

	m.Sort()

	if n > len(m) {
		n = len(m)
	}

	result := make(BeanMatches, n)
	copy(result, m[:n])
	return result
}

// EquipmentRecommendation holds ranked machines and grinders for a budget
// and purpose, each list best-first.
type EquipmentRecommendation struct {
	Machines  []Machine `json:"machines"`
	Grinders  []Grinder `json:"grinders"`
	Reasoning string    `json:"reasoning"`
	Tips      []string  `json:"tips"`
}
