package model

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		input string
		want  PriceTier
	}{
		{input: "entry", want: TierEntry},
		{input: "budget", want: TierEntry},
		{input: "starter", want: TierEntry},
		{input: "mid", want: TierMid},
		{input: "Mid-Range", want: TierMid},
		{input: "home-barista", want: TierMid},
		{input: "high", want: TierHigh},
		{input: "premium", want: TierHigh},
		{input: "serious", want: TierHigh},
		{input: "professional", want: TierProfessional},
		{input: " prosumer ", want: TierProfessional},
		{input: "", want: TierUnknown},
		{input: "luxury", want: TierUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseTier(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != TierUnknown, got.Known())
		})
	}
}

func TestPriceTier_JSON(t *testing.T) {
	var machine Machine
	require.NoError(t, json.Unmarshal([]byte(`{"id":"m1","name":"Gaggia","priceRange":"mid-range"}`), &machine))
	assert.Equal(t, TierMid, machine.PriceTier)

	data, err := json.Marshal(machine.PriceTier)
	require.NoError(t, err)
	assert.Equal(t, `"mid"`, string(data))

	require.NoError(t, json.Unmarshal([]byte(`{"id":"m2","name":"X","priceRange":"gold-plated"}`), &machine))
	assert.Equal(t, TierUnknown, machine.PriceTier)
}
