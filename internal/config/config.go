package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Required settings
var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is required")
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string        `yaml:"port" env:"SERVER_PORT"`
	Mode           string        `yaml:"mode" env:"SERVER_MODE"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS" envSeparator:","`
	TrustedProxies []string      `yaml:"trusted_proxies" env:"SERVER_TRUSTED_PROXIES" envSeparator:","`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	ShutdownGrace  time.Duration `yaml:"shutdown_grace" env:"SERVER_SHUTDOWN_GRACE"`
}

// DatabaseConfig holds the Postgres connection settings
type DatabaseConfig struct {
	URL             string        `yaml:"url" env:"DATABASE_URL"`
	MaxConns        int           `yaml:"max_conns" env:"DB_MAX_CONNS"`
	MinConns        int           `yaml:"min_conns" env:"DB_MIN_CONNS"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	MigrateOnStart  bool          `yaml:"migrate_on_start" env:"DB_MIGRATE_ON_START"`
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret     string        `yaml:"secret" env:"JWT_SECRET"`
	Expiration time.Duration `yaml:"expiration" env:"JWT_EXPIRATION"`
	Issuer     string        `yaml:"issuer" env:"JWT_ISSUER"`
}

// AuthConfig holds account rules
type AuthConfig struct {
	EmailDomain       string `yaml:"email_domain" env:"AUTH_EMAIL_DOMAIN"`
	BcryptCost        int    `yaml:"bcrypt_cost" env:"AUTH_BCRYPT_COST"`
	MinPasswordLength int    `yaml:"min_password_length" env:"AUTH_MIN_PASSWORD_LENGTH"`
}

// RateLimitConfig limits login and registration attempts per client IP
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" env:"RATE_LIMIT_ENABLED"`
	RPS     float64 `yaml:"rps" env:"RATE_LIMIT_RPS"`
	Burst   int     `yaml:"burst" env:"RATE_LIMIT_BURST"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// SeedConfig holds optional bootstrap data
type SeedConfig struct {
	Enabled       bool     `yaml:"enabled" env:"SEED_ENABLED"`
	Majors        []string `yaml:"majors" env:"SEED_MAJORS" envSeparator:","`
	AdminEmail    string   `yaml:"admin_email" env:"SEED_ADMIN_EMAIL"`
	AdminPassword string   `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD"`
}

// Config structure represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
	Seed      SeedConfig      `yaml:"seed"`
}

// LoadConfig builds the configuration from defaults, an optional YAML file,
// an optional .env file and the process environment, in increasing precedence.
func LoadConfig(configPath string, envFiles ...string) (*Config, error) {
	config := Default()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Default returns a configuration populated with defaults
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Mode:           "development",
			AllowedOrigins: []string{"http://localhost:3000"},
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			ShutdownGrace:  10 * time.Second,
		},
		Database: DatabaseConfig{
			MaxConns:        20,
			MinConns:        2,
			ConnMaxLifetime: time.Hour,
			MigrateOnStart:  true,
		},
		JWT: JWTConfig{
			Expiration: 8 * time.Hour,
			Issuer:     "skillmap",
		},
		Auth: AuthConfig{
			EmailDomain:       "quinnipiac.edu",
			BcryptCost:        12,
			MinPasswordLength: 6,
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     1,
			Burst:   10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Seed: SeedConfig{
			Enabled: true,
			Majors: []string{
				"Computer Science",
				"Software Engineering",
				"Cybersecurity",
				"Data Science",
			},
		},
	}
}

// Validate ensures that the configuration is usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return ErrMissingDatabaseURL
	}
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return ErrMissingJWTSecret
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("jwt expiration must be positive, got %s", c.JWT.Expiration)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	if c.Auth.MinPasswordLength < 1 {
		return fmt.Errorf("minimum password length must be positive")
	}
	if strings.TrimSpace(c.Auth.EmailDomain) == "" || strings.Contains(c.Auth.EmailDomain, "@") {
		return fmt.Errorf("invalid email domain %q", c.Auth.EmailDomain)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate limit rps and burst must be positive when enabled")
	}
	if c.Seed.AdminEmail != "" && c.Seed.AdminPassword == "" {
		return fmt.Errorf("seed admin password is required when seed admin email is set")
	}
	return nil
}

// IsProduction reports whether the server runs in release mode
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production" || c.Server.Mode == "release"
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}
