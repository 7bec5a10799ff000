package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Database    DatabaseConfig
	Log         LogConfig
	HTTP        HTTPConfig
	Serverless  ServerlessConfig
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

// HTTPConfig holds HTTP server tuning
type HTTPConfig struct {
	RateLimitRPS    float64
	RateLimitBurst  int
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "5000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("DATABASE_URL", DefaultDatabaseURL)
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("SHUTDOWN_TIMEOUT", 30*time.Second)
	v.SetDefault("STAGE", "dev")

	database, err := ParseDatabaseURL(v.GetString("DATABASE_URL"))
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	database.MaxOpenConns = v.GetInt("DB_MAX_OPEN_CONNS")
	database.MaxIdleConns = v.GetInt("DB_MAX_IDLE_CONNS")
	database.ConnMaxLifetime = v.GetDuration("DB_CONN_MAX_LIFETIME")

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		Database:    *database,
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		HTTP: HTTPConfig{
			RateLimitRPS:    v.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst:  v.GetInt("RATE_LIMIT_BURST"),
			MaxBodyBytes:    v.GetInt64("MAX_BODY_BYTES"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Serverless: ServerlessConfig{
			FunctionName: v.GetString("AWS_LAMBDA_FUNCTION_NAME"),
			Region:       v.GetString("AWS_REGION"),
			Stage:        v.GetString("STAGE"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for values the server cannot start with
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	if c.HTTP.RateLimitRPS < 0 {
		return fmt.Errorf("rate limit must not be negative")
	}

	if c.HTTP.RateLimitRPS > 0 && c.HTTP.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1")
	}

	if c.HTTP.MaxBodyBytes < 1 {
		return fmt.Errorf("max body bytes must be positive")
	}

	return c.Database.Validate()
}

// IsProduction reports whether the service runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
