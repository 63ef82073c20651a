package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amberleaf/menuforge/internal/factories"
	"github.com/amberleaf/menuforge/internal/models"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write demo catalog files for development",
	Long: `seed generates three demo venue catalogs and writes them to the
catalog directory. Existing files are overwritten; never point it at
the production catalogs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		seedVal, _ := cmd.Flags().GetInt64("seed")

		if err := os.MkdirAll(cfg.CatalogDir, os.ModePerm); err != nil {
			return err
		}

		factory := factories.NewCatalogFactory(seedVal)
		files := map[string]string{
			models.VenueFood: cfg.CatalogFiles.Food,
			models.VenueBar:  cfg.CatalogFiles.Bar,
			models.VenueCafe: cfg.CatalogFiles.Cafe,
		}

		for _, venue := range models.VenueOrder {
			menu := factory.CreateMenu(venue)
			data, err := json.MarshalIndent(menu, "", "  ")
			if err != nil {
				return err
			}
			path := filepath.Join(cfg.CatalogDir, files[venue])
			if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			log.Infof("wrote %s (%d items)", path, menu.ItemCount())
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().Int64("seed", 42, "Random seed for generated data")
	rootCmd.AddCommand(seedCmd)
}
