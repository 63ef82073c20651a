package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/amberleaf/menuforge/internal/catalog"
	"github.com/amberleaf/menuforge/internal/cloudwriter"
	"github.com/amberleaf/menuforge/internal/render"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Assemble the complete menu document and render it to PDF",
	Long: `generate loads the three venue catalogs, assembles one paginated HTML
document (cover, section dividers, one page per category, closing
block), writes the intermediate HTML, then renders it to PDF through
headless Chrome. A render failure leaves the HTML behind for
inspection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		menus, err := catalog.LoadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("catalog load failed: %w", err)
		}

		ctx := context.Background()
		if err := render.Generate(ctx, cfg, menus, render.NewChromeEngine()); err != nil {
			return err
		}

		if cfg.UploadArtifact {
			uploader, err := cloudwriter.NewUploader(ctx, cfg.CloudStorage.Provider, cfg.CloudStorage.Region, cfg.CloudStorage.BucketName)
			if err != nil {
				return err
			}
			pdf, err := os.ReadFile(cfg.DocumentPDFPath)
			if err != nil {
				return err
			}
			if err := uploader.Upload(ctx, cfg.DocumentPDFPath, pdf); err != nil {
				return err
			}
			log.Infof("uploaded %s to s3://%s", cfg.DocumentPDFPath, cfg.CloudStorage.BucketName)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().Bool("upload_artifact", false, "Upload the rendered PDF to cloud storage")
	generateCmd.Flags().String("document_html_path", "menu-document.html", "Intermediate HTML output path")
	generateCmd.Flags().String("document_pdf_path", "amber-leaf-menu.pdf", "PDF output path")
	rootCmd.AddCommand(generateCmd)
}
