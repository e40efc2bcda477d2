// Package config loads the API's runtime configuration.
//
// Values are resolved in three layers, later layers winning:
// built-in defaults, the YAML file named by CONFIG_FILE, then environment
// variables. A .env file in the working directory is loaded into the
// environment first when present; variables already set are kept.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"article-api/internal/infra/db"
	"article-api/pkg/env"
)

// Config is the complete runtime configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Version  string         `yaml:"version"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	Swagger         bool          `yaml:"swagger"`
}

type DatabaseConfig struct {
	Driver string              `yaml:"driver"`
	URL    string              `yaml:"url"`
	Pool   db.ConnectionConfig `yaml:"pool"`
}

// AuthConfig configures token issuance and password hashing.
// The signing secret is read from JWT_SECRET only and never from the YAML file.
type AuthConfig struct {
	JWTSecret  string        `yaml:"-"`
	Issuer     string        `yaml:"issuer"`
	TTL        time.Duration `yaml:"ttl"`
	RefreshTTL time.Duration `yaml:"refresh_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type TracingConfig struct {
	SampleRatio float64 `yaml:"sample_ratio"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
			Swagger:         true,
		},
		Database: DatabaseConfig{
			Driver: db.DriverPostgres,
			Pool:   db.DefaultConnectionConfig(),
		},
		Auth: AuthConfig{
			Issuer:     "article-api",
			TTL:        60 * time.Minute,
			RefreshTTL: 20160 * time.Minute,
			BcryptCost: bcrypt.DefaultCost,
		},
		Log:     LogConfig{Level: "info"},
		Tracing: TracingConfig{SampleRatio: 1},
		Version: "dev",
	}
}

// Load resolves and validates the configuration.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// mergeFile overlays the YAML document at path. Keys absent from the file
// keep their current values.
func (c *Config) mergeFile(path string) error {
	// #nosec G304 -- path comes from the operator's CONFIG_FILE
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.HTTP.Addr = env.String("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.ShutdownTimeout = env.Duration("SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)
	c.HTTP.Swagger = env.Bool("SWAGGER_ENABLED", c.HTTP.Swagger)

	c.Database.Driver = normalizeDriver(env.String("DB_DRIVER", c.Database.Driver))
	c.Database.URL = env.String("DATABASE_URL", c.Database.URL)
	c.Database.Pool = db.PoolFromEnv(c.Database.Pool)

	c.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	c.Auth.Issuer = env.String("JWT_ISSUER", c.Auth.Issuer)
	c.Auth.TTL = envMinutes("JWT_TTL", c.Auth.TTL)
	c.Auth.RefreshTTL = envMinutes("JWT_REFRESH_TTL", c.Auth.RefreshTTL)
	c.Auth.BcryptCost = env.Int("BCRYPT_COST", c.Auth.BcryptCost)

	c.Log.Level = env.String("LOG_LEVEL", c.Log.Level)
	c.Version = env.String("VERSION", c.Version)
}

// envMinutes reads a whole number of minutes, as JWT_TTL=60.
func envMinutes(key string, def time.Duration) time.Duration {
	return time.Duration(env.Int(key, int(def/time.Minute))) * time.Minute
}

func normalizeDriver(d string) string {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case "postgres", "postgresql", db.DriverPostgres:
		return db.DriverPostgres
	case "sqlite", db.DriverSQLite:
		return db.DriverSQLite
	default:
		return d
	}
}

// Validate reports the first setting the API cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER %q is not supported (use pgx or sqlite3)", c.Database.Driver)
	}
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL must be set")
	}
	if err := ValidateJWTSecret(c.Auth.JWTSecret); err != nil {
		return err
	}
	if c.Auth.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %v", c.Auth.TTL)
	}
	if c.Auth.RefreshTTL < c.Auth.TTL {
		return fmt.Errorf("JWT_REFRESH_TTL (%v) must not be shorter than JWT_TTL (%v)", c.Auth.RefreshTTL, c.Auth.TTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if d := c.HTTP.ShutdownTimeout; d < time.Second || d > 5*time.Minute {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be between 1s and 5m, got %v", d)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing sample_ratio must be within [0,1], got %v", c.Tracing.SampleRatio)
	}
	return nil
}
