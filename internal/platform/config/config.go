package config

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Import limits
	MaxUploadBytes  int64
	ImportRateLimit string // ulule/limiter format, e.g. "30-M"

	CORSAllowedOrigins []string
	SearchPageSize     int
	DefaultTagColor    string
}

const (
	defaultPort            = "8080"
	defaultMigrationsPath  = "file://migrations"
	defaultMaxUploadBytes  = 10 << 20
	defaultImportRateLimit = "30-M"
	defaultSearchPageSize  = 50
	defaultTagColor        = "#6366f1"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	v.SetDefault("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
	v.SetDefault("IMPORT_RATE_LIMIT", defaultImportRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("SEARCH_PAGE_SIZE", defaultSearchPageSize)
	v.SetDefault("DEFAULT_TAG_COLOR", defaultTagColor)

	// Actual environment variables override both the defaults and the .env values.
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	cfg.MaxUploadBytes = v.GetInt64("MAX_UPLOAD_BYTES")
	if cfg.MaxUploadBytes <= 0 {
		log.Printf("Warning: Invalid value for MAX_UPLOAD_BYTES (%d). Defaulting to %d.\n", cfg.MaxUploadBytes, defaultMaxUploadBytes)
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}

	cfg.ImportRateLimit = v.GetString("IMPORT_RATE_LIMIT")
	if cfg.ImportRateLimit == "" {
		cfg.ImportRateLimit = defaultImportRateLimit
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.SearchPageSize = v.GetInt("SEARCH_PAGE_SIZE")
	if cfg.SearchPageSize <= 0 {
		log.Printf("Warning: Invalid value for SEARCH_PAGE_SIZE (%d). Defaulting to %d.\n", cfg.SearchPageSize, defaultSearchPageSize)
		cfg.SearchPageSize = defaultSearchPageSize
	}

	cfg.DefaultTagColor = v.GetString("DEFAULT_TAG_COLOR")
	if err := validator.New().Var(cfg.DefaultTagColor, "hexcolor,len=7"); err != nil {
		if cfg.DefaultTagColor != "" {
			log.Printf("Warning: Invalid value for DEFAULT_TAG_COLOR (%q). Defaulting to %s.\n", cfg.DefaultTagColor, defaultTagColor)
		}
		cfg.DefaultTagColor = defaultTagColor
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")

	return cfg
}
