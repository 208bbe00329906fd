package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from environment variables.
type Config struct {
	Environment string // current application environment (development, production)
	ServerPort  string
	BaseURL     string // public base URL used in verification/reset links

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	SessionTTL           time.Duration // lifetime of a login session
	RequireVerifiedEmail bool          // when true, unverified accounts cannot log in

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_name", "literacy_app")
	v.SetDefault("session_ttl", "168h") // 7 days
	v.SetDefault("auth_require_verified_email", true)
	v.SetDefault("smtp_port", 587)

	v.AutomaticEnv()

	_ = v.BindEnv("environment", "ENVIRONMENT")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("base_url", "BASE_URL")
	_ = v.BindEnv("db_host", "DB_HOST")
	_ = v.BindEnv("db_port", "DB_PORT")
	_ = v.BindEnv("db_user", "DB_USER")
	_ = v.BindEnv("db_password", "DB_PASSWORD")
	_ = v.BindEnv("db_name", "DB_NAME")
	_ = v.BindEnv("session_ttl", "SESSION_TTL")
	_ = v.BindEnv("auth_require_verified_email", "AUTH_REQUIRE_VERIFIED_EMAIL")
	_ = v.BindEnv("smtp_host", "SMTP_HOST")
	_ = v.BindEnv("smtp_port", "SMTP_PORT")
	_ = v.BindEnv("smtp_user", "SMTP_USER")
	_ = v.BindEnv("smtp_pass", "SMTP_PASS")
	_ = v.BindEnv("smtp_from", "SMTP_FROM")

	cfg := &Config{
		Environment:          v.GetString("environment"),
		ServerPort:           v.GetString("port"),
		BaseURL:              v.GetString("base_url"),
		DBHost:               v.GetString("db_host"),
		DBPort:               v.GetInt("db_port"),
		DBUser:               v.GetString("db_user"),
		DBPassword:           v.GetString("db_password"),
		DBName:               v.GetString("db_name"),
		SessionTTL:           v.GetDuration("session_ttl"),
		RequireVerifiedEmail: v.GetBool("auth_require_verified_email"),
		SMTPHost:             v.GetString("smtp_host"),
		SMTPPort:             v.GetInt("smtp_port"),
		SMTPUser:             v.GetString("smtp_user"),
		SMTPPass:             v.GetString("smtp_pass"),
		SMTPFrom:             v.GetString("smtp_from"),
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD: %w", ErrMissingEnvironmentVariables)
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 7 * 24 * time.Hour
	}

	return cfg, nil
}

// IsProduction reports whether the app runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
