package cmd

import (
	"fmt"
	"os"

	"github.com/amberleaf/menuforge/internal/models"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "menuforge",
	Short: "Catalog and document toolchain for the Amber Leaf venues",
	Long: `menuforge maintains the Amber Leaf menu catalogs and turns them into
print-ready documents. It merges item additions into the catalog files,
exports flattened item data for analytics, assembles the complete menu
PDF through a headless browser, and serves the interactive menu and
form-submission API.`,
}

func init() {
	cobra.OnInitialize(initLogger)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config/menuforge.json)")
}

func initLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	switch os.Getenv("APP_ENV") {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func loadConfig(cmd *cobra.Command) (*models.Config, error) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
