package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/amberleaf/menuforge/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportMenus() []*models.Menu {
	return []*models.Menu{
		{
			Venue: models.VenueFood, Name: "Amber Leaf Kitchen",
			Categories: []models.MenuCategory{
				{ID: "starters", Name: "Starters", Items: []models.MenuItem{
					{ID: "f1", Name: "Paneer Tikka", Description: "Char-grilled", Price: 349, Category: "starters",
						Dietary: []string{models.DietVeg}, SpiceLevel: 2, IsRecommended: true, IsAvailable: true,
						Allergens: []string{"dairy"}},
				}},
			},
		},
		{
			Venue: models.VenueBar, Name: "Amber Leaf Bar",
			Categories: []models.MenuCategory{
				{ID: "whisky", Name: "Whisky", Items: []models.MenuItem{
					{ID: "b1", Name: "Amrut Fusion", Price: 499, Price60ml: 899, BottlePrice: 12000,
						Category: "whisky", IsAvailable: true},
				}},
			},
		},
	}
}

func TestFlatten(t *testing.T) {
	records := Flatten(exportMenus())
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "food", first.Venue)
	assert.Equal(t, "Starters", first.CategoryName)
	assert.Equal(t, "f1", first.ItemID)
	assert.Equal(t, int32(349), first.Price)
	assert.Equal(t, "veg", first.Dietary)
	assert.Equal(t, "dairy", first.Allergens)
	assert.True(t, first.IsRecommended)

	second := records[1]
	assert.Equal(t, int32(899), second.Price60ml)
	assert.Equal(t, int32(12000), second.BottlePrice)
}

func TestJSONSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	sink, err := NewJSONSink(path)
	require.NoError(t, err)

	records := Flatten(exportMenus())
	for _, rec := range records {
		require.NoError(t, sink.WriteRecord(rec))
	}
	require.NoError(t, sink.Close())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var lines int
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var rec ItemRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		lines++
	}
	assert.Equal(t, len(records), lines)
}

func TestCSVSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	sink, err := NewCSVSink(path)
	require.NoError(t, err)

	records := Flatten(exportMenus())
	for _, rec := range records {
		require.NoError(t, sink.WriteRecord(rec))
	}
	require.NoError(t, sink.Close())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(records)+1) // header + data

	assert.Equal(t, csvHeaders, rows[0])
	assert.Equal(t, "Paneer Tikka", rows[1][4])
	assert.Equal(t, "12000", rows[2][8])
}

func TestNewSinkUnsupportedFormat(t *testing.T) {
	cfg := &models.Config{
		OutputPath:   t.TempDir(),
		OutputFolder: "catalog",
		OutputFormat: "xml",
	}
	_, err := NewSink(cfg)
	assert.Error(t, err)
}
