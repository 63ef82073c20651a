package cmd

import (
	"context"
	"fmt"

	"github.com/amberleaf/menuforge/internal/catalog"
	"github.com/amberleaf/menuforge/internal/notify"
	"github.com/amberleaf/menuforge/internal/repositories/postgres"
	"github.com/amberleaf/menuforge/internal/server"
	"github.com/amberleaf/menuforge/internal/speech"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive menu and form-submission API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Warn("No .env file found, using system environment variables")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		menus, err := catalog.LoadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("catalog load failed: %w", err)
		}

		ctx := context.Background()
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		repo := postgres.NewSubmissionRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}

		notifier, err := notify.New(cfg)
		if err != nil {
			return err
		}
		defer notifier.Close()

		speaker := speech.NewSpeaker(speech.CommandSynth(cfg.SpeechCommand))

		srv := server.New(menus, repo, notifier, speaker)
		return srv.Run(cfg.ServerHost, cfg.ServerPort)
	},
}

func init() {
	serveCmd.Flags().String("server_host", "localhost", "Bind address")
	serveCmd.Flags().Int("server_port", 8080, "Bind port")
	serveCmd.Flags().Bool("kafka_enabled", false, "Publish submission events to Kafka")
	serveCmd.Flags().String("kafka_broker_list", "localhost:9092", "Kafka broker list")
	rootCmd.AddCommand(serveCmd)
}
