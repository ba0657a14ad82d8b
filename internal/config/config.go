package config

import (
	"fmt"
	"time"

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

	// JWT configuration
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	JWTTTLHours int    `mapstructure:"JWT_TTL_HOURS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Genesis admin: granted the admin role on startup
	AdminAddress string `mapstructure:"ADMIN_ADDRESS"`

	// Governance parameters
	VotingPeriodHours    int `mapstructure:"VOTING_PERIOD_HOURS"`
	MinStakePeriodMin    int `mapstructure:"MIN_STAKE_PERIOD_MINUTES"`
	QuorumDivisor        int `mapstructure:"QUORUM_DIVISOR"`
	ConfidenceThreshold  int `mapstructure:"CONFIDENCE_THRESHOLD"`
}

// Governance bundles the proposal lifecycle parameters derived from config.
type Governance struct {
	VotingPeriod        time.Duration
	MinStakePeriod      time.Duration
	QuorumDivisor       int64
	ConfidenceThreshold int
}

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
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "dao_governance")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("JWT_TTL_HOURS", 24)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Genesis admin
	viper.SetDefault("ADMIN_ADDRESS", "")

	// Governance defaults: 24h voting window, 1h minimum stake age,
	// quorum of totalStaked/10, agent confidence gate at 70.
	viper.SetDefault("VOTING_PERIOD_HOURS", 24)
	viper.SetDefault("MIN_STAKE_PERIOD_MINUTES", 60)
	viper.SetDefault("QUORUM_DIVISOR", 10)
	viper.SetDefault("CONFIDENCE_THRESHOLD", 70)
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
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.AdminAddress == "" {
			return fmt.Errorf("ADMIN_ADDRESS must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}
	if config.QuorumDivisor <= 0 {
		return fmt.Errorf("QUORUM_DIVISOR must be positive")
	}
	if config.ConfidenceThreshold < 0 || config.ConfidenceThreshold > 100 {
		return fmt.Errorf("CONFIDENCE_THRESHOLD must be within 0-100")
	}

	return nil
}

// GovernanceParams returns the proposal lifecycle parameters
func (c *Config) GovernanceParams() *Governance {
	return &Governance{
		VotingPeriod:        time.Duration(c.VotingPeriodHours) * time.Hour,
		MinStakePeriod:      time.Duration(c.MinStakePeriodMin) * time.Minute,
		QuorumDivisor:       int64(c.QuorumDivisor),
		ConfidenceThreshold: c.ConfidenceThreshold,
	}
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
