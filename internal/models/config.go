package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// CatalogFiles names the venue catalog files the tools read by
// convention, keyed by venue.
type CatalogFiles struct {
	Food string `mapstructure:"food"`
	Bar  string `mapstructure:"bar"`
	Cafe string `mapstructure:"cafe"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type Config struct {
	CatalogDir   string       `mapstructure:"catalog_dir"`
	CatalogFiles CatalogFiles `mapstructure:"catalog_files"`

	// Document generation
	DocumentHTMLPath string        `mapstructure:"document_html_path"`
	DocumentPDFPath  string        `mapstructure:"document_pdf_path"`
	RenderTimeout    time.Duration `mapstructure:"render_timeout"`

	// Export
	OutputPath   string `mapstructure:"output_path"`
	OutputFolder string `mapstructure:"output_folder"`
	OutputFormat string `mapstructure:"output_format"`

	// Artifact upload
	UploadArtifact    bool               `mapstructure:"upload_artifact"`
	OutputDestination string             `mapstructure:"output_destination"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`

	// Submission pipeline (serve)
	ServerHost       string         `mapstructure:"server_host"`
	ServerPort       int            `mapstructure:"server_port"`
	Database         DatabaseConfig `mapstructure:"database"`
	KafkaEnabled     bool           `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string         `mapstructure:"kafka_broker_list"`
	KafkaTopicPrefix string         `mapstructure:"kafka_topic_prefix"`
	SessionTimeoutMs int            `mapstructure:"session_timeout_ms"`
	SpeechCommand    string         `mapstructure:"speech_command"`
	SpeechRate       int            `mapstructure:"speech_rate"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("config")
		viper.SetConfigName("menuforge")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("catalog_dir", "data")
	viper.SetDefault("catalog_files.food", "food-menu.json")
	viper.SetDefault("catalog_files.bar", "bar-menu.json")
	viper.SetDefault("catalog_files.cafe", "cafe-menu.json")
	viper.SetDefault("document_html_path", "menu-document.html")
	viper.SetDefault("document_pdf_path", "amber-leaf-menu.pdf")
	viper.SetDefault("render_timeout", "60s")
	viper.SetDefault("output_format", "json")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("server_host", "localhost")
	viper.SetDefault("server_port", 8080)
	viper.SetDefault("kafka_topic_prefix", "menuforge")

	if err := viper.ReadInConfig(); err != nil {
		// Defaults and env cover a missing config file; a malformed
		// one aborts the run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
