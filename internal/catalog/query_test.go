package catalog

import (
	"testing"

	"github.com/amberleaf/menuforge/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu() *models.Menu {
	return &models.Menu{
		Venue: "food",
		Name:  "Amber Leaf Kitchen",
		Categories: []models.MenuCategory{
			{
				ID:   "starters",
				Name: "Starters",
				Items: []models.MenuItem{
					{ID: "1", Name: "Silken Tofu Tempura Tacos Bao", Description: "Crisp Tofu tempura in bao", Price: 399, Dietary: []string{models.DietVeg}},
					{ID: "2", Name: "Mutton Rogan Josh", Description: "Kashmiri braised shank", Price: 649, Dietary: []string{models.DietNonVeg}},
					{ID: "3", Name: "Masala Papad", Description: "Onion, tomato, roasted papad", Price: 99},
				},
			},
			{
				ID:   "desserts",
				Name: "Desserts",
				Items: []models.MenuItem{
					{ID: "4", Name: "Gulab Jamun", Description: "Saffron syrup", Price: 249, Dietary: []string{models.DietVeg}},
				},
			},
		},
	}
}

func TestFlattenPreservesOrder(t *testing.T) {
	entries := Flatten(testMenu())
	require.Len(t, entries, 4)
	assert.Equal(t, "1", entries[0].Item.ID)
	assert.Equal(t, "Starters", entries[0].CategoryName)
	assert.Equal(t, "4", entries[3].Item.ID)
	assert.Equal(t, "Desserts", entries[3].CategoryName)
}

func TestTextSearchMatchesNameAndDescription(t *testing.T) {
	entries := Flatten(testMenu())

	// "tofu" appears in the name of item 1 and nowhere else; matching
	// is case-insensitive and also covers descriptions.
	result := Filter{Query: "tofu"}.Apply(entries)
	require.Len(t, result, 1)
	assert.Equal(t, "Silken Tofu Tempura Tacos Bao", result[0].Item.Name)

	result = Filter{Query: "KASHMIRI"}.Apply(entries)
	require.Len(t, result, 1)
	assert.Equal(t, "Mutton Rogan Josh", result[0].Item.Name)
}

func TestCategoryFilterMatchesDisplayName(t *testing.T) {
	entries := Flatten(testMenu())

	result := Filter{Category: "Desserts"}.Apply(entries)
	require.Len(t, result, 1)
	assert.Equal(t, "Gulab Jamun", result[0].Item.Name)

	// Machine keys are not the lookup key.
	result = Filter{Category: "desserts"}.Apply(entries)
	assert.Empty(t, result)
}

func TestVegOnlyFilter(t *testing.T) {
	entries := Flatten(testMenu())

	result := Filter{VegOnly: true}.Apply(entries)
	require.Len(t, result, 2)
	assert.Equal(t, "1", result[0].Item.ID)
	assert.Equal(t, "4", result[1].Item.ID)
}

// An item tagged both veg and non-veg passes the veg filter
// (contains-veg semantics) while still classifying as non-veg for
// marker and grouping purposes. Both halves of the asymmetry are
// asserted together so neither can regress silently.
func TestVegFilterPermissiveDespiteNonVegDisplay(t *testing.T) {
	both := models.MenuItem{ID: "x", Name: "House Thali", Dietary: []string{models.DietVeg, models.DietNonVeg}}
	entries := []Entry{{Item: both, CategoryName: "Specials"}}

	result := Filter{VegOnly: true}.Apply(entries)
	require.Len(t, result, 1)

	assert.Equal(t, models.DietClassNonVeg, both.DietClass())
}

func TestFiltersAreConjunctive(t *testing.T) {
	entries := Flatten(testMenu())

	combined := Filter{Query: "gulab", Category: "Desserts", VegOnly: true}.Apply(entries)

	// The combination equals the intersection of each filter applied
	// independently; filters commute.
	byQuery := Filter{Query: "gulab"}.Apply(entries)
	byCategory := Filter{Category: "Desserts"}.Apply(entries)
	byVeg := Filter{VegOnly: true}.Apply(entries)

	ids := func(es []Entry) map[string]bool {
		m := make(map[string]bool)
		for _, e := range es {
			m[e.Item.ID] = true
		}
		return m
	}
	qs, cs, vs := ids(byQuery), ids(byCategory), ids(byVeg)

	var intersection []string
	for _, e := range entries {
		if qs[e.Item.ID] && cs[e.Item.ID] && vs[e.Item.ID] {
			intersection = append(intersection, e.Item.ID)
		}
	}

	require.Len(t, combined, len(intersection))
	for i, e := range combined {
		assert.Equal(t, intersection[i], e.Item.ID)
	}
}

func TestEmptyResultIsNotAnError(t *testing.T) {
	entries := Flatten(testMenu())

	result := Filter{Query: "nonexistent", Category: "Desserts", VegOnly: true}.Apply(entries)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFilterReset(t *testing.T) {
	f := Filter{Query: "tofu", Category: "Starters", VegOnly: true}
	f.Reset()
	assert.Equal(t, Filter{}, f)
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	entries := Flatten(testMenu())
	before := make([]Entry, len(entries))
	copy(before, entries)

	Filter{Query: "tofu", VegOnly: true}.Apply(entries)
	assert.Equal(t, before, entries)
}

func TestGroupByDietOrdering(t *testing.T) {
	items := []models.MenuItem{
		{ID: "n1", Dietary: []string{models.DietNonVeg}},
		{ID: "u1"},
		{ID: "v1", Dietary: []string{models.DietVeg}},
		{ID: "n2", Dietary: []string{models.DietVeg, models.DietNonVeg}}, // displays non-veg
		{ID: "v2", Dietary: []string{models.DietVeg}},
		{ID: "u2"},
	}

	grouped := GroupByDiet(items)
	got := make([]string, len(grouped))
	for i, item := range grouped {
		got[i] = item.ID
	}
	// veg first, then unmarked, then non-veg; stable within buckets.
	assert.Equal(t, []string{"v1", "v2", "u1", "u2", "n1", "n2"}, got)
}

func TestGroupByDietEmpty(t *testing.T) {
	assert.Empty(t, GroupByDiet(nil))
}
