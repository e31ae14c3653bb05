package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"

	BlobDriverLocal    = "local"
	BlobDriverSupabase = "supabase"
)

type Config struct {
	// Server
	Port           string `mapstructure:"port"`
	Environment    string `mapstructure:"environment"`
	BaseURL        string `mapstructure:"base_url"`
	CORSOrigins    string `mapstructure:"cors_origins"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`

	// Document store
	StoreDriver string `mapstructure:"store_driver"`
	DatabaseURL string `mapstructure:"database_url"`
	MongoURL    string `mapstructure:"mongo_url"`
	DBName      string `mapstructure:"db_name"`

	// Image bytes
	BlobDriver             string `mapstructure:"blob_driver"`
	UploadDir              string `mapstructure:"upload_dir"`
	SupabaseURL            string `mapstructure:"supabase_url"`
	SupabasePublishableKey string `mapstructure:"supabase_publishable_key"`
	SupabaseStorageBucket  string `mapstructure:"supabase_storage_bucket"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load reads an optional config.yaml from . or ./configs and overlays
// environment variables (PORT, STORE_DRIVER, DATABASE_URL, ...).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("environment", "development")
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("max_upload_bytes", 32<<20)

	v.SetDefault("store_driver", StoreDriverMemory)
	v.SetDefault("database_url", "")
	v.SetDefault("mongo_url", "")
	v.SetDefault("db_name", "business_plan")

	v.SetDefault("blob_driver", BlobDriverLocal)
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("supabase_url", "")
	v.SetDefault("supabase_publishable_key", "")
	v.SetDefault("supabase_storage_bucket", "business-plan-images")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for store driver %q", c.StoreDriver)
		}
	case StoreDriverMongo:
		if c.MongoURL == "" {
			return fmt.Errorf("MONGO_URL is required for store driver %q", c.StoreDriver)
		}
		if c.DBName == "" {
			return fmt.Errorf("DB_NAME is required for store driver %q", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.BlobDriver {
	case BlobDriverLocal:
		if c.UploadDir == "" {
			return fmt.Errorf("UPLOAD_DIR is required for blob driver %q", c.BlobDriver)
		}
	case BlobDriverSupabase:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required for blob driver %q", c.BlobDriver)
		}
		if c.SupabasePublishableKey == "" {
			return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required for blob driver %q", c.BlobDriver)
		}
	default:
		return fmt.Errorf("unknown BLOB_DRIVER %q", c.BlobDriver)
	}

	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// ImageURL builds the public retrieval URL for an uploaded image.
func (c *Config) ImageURL(imageID string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/api/images/" + imageID
}
