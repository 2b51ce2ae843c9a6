package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/brewmatch/internal/common"
	"github.com/joshsymonds/brewmatch/internal/model"
)

func TestDefault(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, cat.Beans())
	assert.NotEmpty(t, cat.Machines())
	assert.NotEmpty(t, cat.Grinders())
	assert.Len(t, cat.Version(), 12)

	m, ok := cat.Machine("gaggia-classic-pro")
	require.True(t, ok)
	assert.Equal(t, model.TierEntry, m.PriceTier)
	assert.Equal(t, model.BoilerSingle, m.BoilerType)

	g, ok := cat.Grinder("niche-zero")
	require.True(t, ok)
	assert.Equal(t, model.TierHigh, g.PriceTier)
	assert.True(t, g.Stepless)

	item, ok := cat.Item("niche-zero")
	require.True(t, ok)
	assert.Equal(t, "niche-zero", item.ItemID())

	_, ok = cat.Item("missing")
	assert.False(t, ok)
}

func TestDefault_VersionIsStable(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)

	assert.Equal(t, a.Version(), b.Version())
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	beans := cat.Beans()
	beans[0].Name = "mutated"

	assert.NotEqual(t, "mutated", cat.Beans()[0].Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed json", data: `{"beans": [`},
		{name: "bean missing id", data: `{"beans": [{"name": "x", "roastLevel": "light", "tasteProfile": {"acidity":1,"body":1,"sweetness":1,"bitterness":1}}]}`},
		{name: "rating out of range", data: `{"machines": [{"id": "m", "name": "M", "rating": 7}]}`},
		{name: "duplicate ids", data: `{"machines": [{"id": "x", "name": "A"}], "grinders": [{"id": "x", "name": "B"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrCatalogInvalid)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"machines": [{"id": "m", "name": "M", "priceRange": "premium"}]}`), 0o600))

	cat, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cat.Machines(), 1)
	assert.Equal(t, model.TierHigh, cat.Machines()[0].PriceTier)
	assert.Empty(t, cat.Beans())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	def, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, def.Beans())
}

func TestNew(t *testing.T) {
	cat, err := New(
		[]model.Bean{{ID: "b", Name: "B", RoastLevel: model.RoastDark, TasteProfile: model.TasteProfile{Acidity: 1, Body: 1, Sweetness: 1, Bitterness: 1}}},
		nil,
		[]model.Grinder{{ID: "g", Name: "G", PriceTier: model.TierMid}},
	)
	require.NoError(t, err)

	assert.Len(t, cat.Beans(), 1)
	assert.Equal(t, model.TierMid, cat.Grinders()[0].PriceTier)
}
