package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amberleaf/menuforge/internal/models"
)

// LoadMenu deserializes one venue catalog file. The load is all or
// nothing: a structurally invalid file or a schema violation returns
// an error and no menu.
func LoadMenu(path string) (*models.Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var menu models.Menu
	if err := json.Unmarshal(data, &menu); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if err := validateMenu(&menu); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return &menu, nil
}

// LoadCatalog loads the venue catalogs named by the config, in the
// fixed venue order, and enforces ID uniqueness across all of them.
func LoadCatalog(cfg *models.Config) ([]*models.Menu, error) {
	files := map[string]string{
		models.VenueFood: cfg.CatalogFiles.Food,
		models.VenueBar:  cfg.CatalogFiles.Bar,
		models.VenueCafe: cfg.CatalogFiles.Cafe,
	}

	menus := make([]*models.Menu, 0, len(models.VenueOrder))
	seen := make(map[string]string) // item id -> venue it first appeared in
	for _, venue := range models.VenueOrder {
		path := filepath.Join(cfg.CatalogDir, files[venue])
		menu, err := LoadMenu(path)
		if err != nil {
			return nil, err
		}
		for _, cat := range menu.Categories {
			for _, item := range cat.Items {
				if prev, ok := seen[item.ID]; ok {
					return nil, fmt.Errorf("duplicate item id %q: already used in %s catalog", item.ID, prev)
				}
				seen[item.ID] = venue
			}
		}
		menus = append(menus, menu)
	}
	return menus, nil
}

func validateMenu(menu *models.Menu) error {
	if menu.Venue == "" {
		return fmt.Errorf("venue is required")
	}
	if menu.Name == "" {
		return fmt.Errorf("menu name is required")
	}

	seen := make(map[string]bool)
	for _, cat := range menu.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category %q has no name", cat.ID)
		}
		for _, item := range cat.Items {
			if item.ID == "" {
				return fmt.Errorf("item %q in category %q has no id", item.Name, cat.Name)
			}
			if seen[item.ID] {
				return fmt.Errorf("duplicate item id %q", item.ID)
			}
			seen[item.ID] = true

			if item.Price < 0 || item.Price60ml < 0 || item.BottlePrice < 0 {
				return fmt.Errorf("item %q has a negative price", item.ID)
			}
			if item.SpiceLevel < 0 || item.SpiceLevel > 5 {
				return fmt.Errorf("item %q has spice level %d, must be 0-5", item.ID, item.SpiceLevel)
			}
			for _, d := range item.Dietary {
				if d != models.DietVeg && d != models.DietNonVeg {
					return fmt.Errorf("item %q has unknown dietary tag %q", item.ID, d)
				}
			}
		}
	}
	return nil
}
