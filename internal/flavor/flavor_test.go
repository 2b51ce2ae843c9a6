package flavor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/brewmatch/internal/model"
)

func bean(id string, roast model.RoastLevel, notes ...string) model.Bean {
	return model.Bean{ID: id, Name: id, RoastLevel: roast, FlavorNotes: notes}
}

func ids(beans []model.Bean) []string {
	out := make([]string, len(beans))
	for i, b := range beans {
		out[i] = b.ID
	}
	return out
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"chocolate-nutty", ChocolateNutty},
		{"Fruity-Bright", FruityBright},
		{" balanced ", Balanced},
		{"bold-strong", BoldStrong},
		{"floral-tea", None},
		{"", None},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.input))
		})
	}
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []Category{ChocolateNutty, FruityBright, Balanced, BoldStrong}, Categories())

	for _, c := range Categories() {
		def, ok := Lookup(c)
		require.True(t, ok, c)
		assert.NotEmpty(t, def.Keywords, c)
	}

	_, ok := Lookup(None)
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {
	catalog := []model.Bean{
		bean("choc", model.RoastLight, "Dark Chocolate", "Orange"),
		bean("berry", model.RoastLight, "Blueberry", "Jasmine"),
		bean("medium", model.RoastMedium, "Toffee"),
		bean("smoky", model.RoastMediumLight, "Smoky Cedar"),
		bean("darkroast", model.RoastDark, "Molasses"),
		bean("floral", model.RoastLight, "Jasmine"),
	}

	tests := []struct {
		name     string
		category Category
		want     []string
	}{
		{name: "keyword substring, case-insensitive", category: ChocolateNutty, want: []string{"choc"}},
		{name: "fruity", category: FruityBright, want: []string{"berry"}},
		{name: "roast heuristic", category: Balanced, want: []string{"medium"}},
		{name: "keyword or roast", category: BoldStrong, want: []string{"choc", "smoky", "darkroast"}},
		{name: "none returns catalog", category: None, want: ids(catalog)},
		{name: "unknown returns catalog", category: Category("floral-tea"), want: ids(catalog)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(catalog, tt.category)))
		})
	}
}

func TestFilter_FallsBackWhenNothingMatches(t *testing.T) {
	catalog := []model.Bean{
		bean("a", model.RoastLight, "Jasmine"),
		bean("b", model.RoastLight, "Lemon"),
	}

	got := Filter(catalog, BoldStrong)

	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestFilter_EmptyCatalog(t *testing.T) {
	assert.Empty(t, Filter(nil, ChocolateNutty))
}
