package cmd

import (
	"fmt"

	"github.com/amberleaf/menuforge/internal/catalog"
	"github.com/amberleaf/menuforge/internal/export"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the flattened catalog for analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		menus, err := catalog.LoadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("catalog load failed: %w", err)
		}

		records := export.Flatten(menus)
		sink, err := export.NewSink(cfg)
		if err != nil {
			return err
		}

		bar := progressbar.Default(int64(len(records)), "exporting items")
		for _, rec := range records {
			if err := sink.WriteRecord(rec); err != nil {
				sink.Close()
				return fmt.Errorf("export failed: %w", err)
			}
			_ = bar.Add(1)
		}
		if err := sink.Close(); err != nil {
			return fmt.Errorf("failed to finalize export: %w", err)
		}

		log.Infof("exported %d items as %s", len(records), cfg.OutputFormat)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("output_format", "json", "Export format: json, csv or parquet")
	exportCmd.Flags().String("output_path", "output", "Export base directory")
	exportCmd.Flags().String("output_folder", "catalog", "Export folder under the base directory")
	rootCmd.AddCommand(exportCmd)
}
