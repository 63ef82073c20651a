package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/amberleaf/menuforge/internal/catalog"
	"github.com/amberleaf/menuforge/internal/models"
	"github.com/spf13/cobra"
)

// missingFoodItems is the hand-maintained table of additions, grouped
// by target category display name. Items already present (by
// case-insensitive name) are skipped, so the command can be re-run
// safely after editing this table.
var missingFoodItems = map[string][]catalog.Candidate{
	"Starters": {
		{Name: "Crispy Lotus Stem", Description: "Honey-chilli glazed lotus stem with sesame", Price: 349, Category: "starters", Dietary: []string{models.DietVeg}, SpiceLevel: 2},
		{Name: "Ghee Roast Chicken Wings", Description: "Mangalorean ghee roast masala, curry leaf", Price: 429, Category: "starters", Dietary: []string{models.DietNonVeg}, SpiceLevel: 3},
	},
	"Main Course": {
		{Name: "Burnt Garlic Khichdi", Description: "Slow-cooked lentil rice, burnt garlic tadka, papad", Price: 329, Category: "mains", Dietary: []string{models.DietVeg}, SpiceLevel: 1},
	},
	"Desserts": {
		{Name: "Filter Coffee Tiramisu", Description: "South Indian filter decoction, mascarpone, savoiardi", Price: 379, Category: "desserts", Dietary: []string{models.DietVeg}},
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge missing items into the food catalog",
	Long: `merge appends the maintained candidate table to the food catalog file.
Candidates whose name already exists in the target category
(case-insensitive) are skipped, new categories are created when
needed, and the file is rewritten pretty-printed. Running it twice is
a no-op the second time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		path := filepath.Join(cfg.CatalogDir, cfg.CatalogFiles.Food)
		result, err := catalog.MergeFile(path, missingFoodItems)
		if err != nil {
			return err
		}

		fmt.Printf("%d added, %d skipped, %d categories created\n",
			result.Added, result.Skipped, result.CategoriesCreated)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
