package config

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	apperrors "staffing-dashboard/internal/errors"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Staffing view queried by the dashboard
	StaffingView    string        `mapstructure:"STAFFING_VIEW"`
	DatasetCacheTTL time.Duration `mapstructure:"DATASET_CACHE_TTL"`

	// Access gate configuration
	DashboardPassword string        `mapstructure:"DASHBOARD_PASSWORD"`
	SessionSecret     string        `mapstructure:"SESSION_SECRET"`
	SessionTTL        time.Duration `mapstructure:"SESSION_TTL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8501")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "staffing")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("STAFFING_VIEW", "v_gap_turni")
	viper.SetDefault("DATASET_CACHE_TTL", "0s")

	// Access gate defaults; the password has none on purpose
	viper.SetDefault("DASHBOARD_PASSWORD", "")
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SESSION_TTL", "12h")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:8501", "http://localhost:3000"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DashboardPassword == "" {
		return apperrors.ErrDashboardPasswordMissing
	}

	if config.Environment == "production" && config.SessionSecret == "" {
		return apperrors.ErrSessionSecretMissing
	}

	if !identifierPattern.MatchString(config.StaffingView) {
		return apperrors.NewConfigurationError(fmt.Sprintf("STAFFING_VIEW %q is not a valid identifier", config.StaffingView))
	}

	if config.DatasetCacheTTL < 0 {
		return apperrors.NewConfigurationError("DATASET_CACHE_TTL must not be negative")
	}

	if config.SessionTTL <= 0 {
		return apperrors.NewConfigurationError("SESSION_TTL must be positive")
	}

	return nil
}

// SourceIdentity returns a credential-free identity of the data source,
// "<host>/<database>#<view>", used as the dataset cache key.
func (c *Config) SourceIdentity() string {
	host, name := c.DatabaseHost+":"+c.DatabasePort, c.DatabaseName
	if u, err := url.Parse(c.DatabaseURL); err == nil && u.Host != "" {
		host = u.Host
		if len(u.Path) > 1 {
			name = u.Path[1:]
		}
	}
	return fmt.Sprintf("%s/%s#%s", host, name, c.StaffingView)
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
