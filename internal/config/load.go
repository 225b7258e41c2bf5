package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// PathEnv names the environment variable consulted when no explicit config
// path is given.
const PathEnv = "ACADEMICS_CONFIG"

// Load builds a Config from defaults, an optional YAML file, an optional
// .env file and finally the process environment, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if strings.TrimSpace(path) == "" {
		path = strings.TrimSpace(os.Getenv(PathEnv))
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	normalize(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func normalize(cfg *Config) {
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		cfg.HTTP.Addr = ":8080"
	}
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	cfg.Graph.MissingRelation = strings.ToLower(strings.TrimSpace(cfg.Graph.MissingRelation))
	if cfg.Graph.MissingRelation == "" {
		cfg.Graph.MissingRelation = "drop"
	}
	if cfg.Telemetry.SampleRatio < 0 {
		cfg.Telemetry.SampleRatio = 0
	}
	if cfg.Telemetry.SampleRatio > 1 {
		cfg.Telemetry.SampleRatio = 1
	}
}

// Validate rejects configurations the store or server cannot start with.
func (c *Config) Validate() error {
	d := c.Database
	switch d.Driver {
	case "postgres":
		if strings.TrimSpace(d.Host) == "" {
			return errors.New("database host is not set or is empty")
		}
		if strings.TrimSpace(d.Name) == "" {
			return errors.New("database name is not set or is empty")
		}
		if strings.TrimSpace(d.User) == "" {
			return errors.New("database user is not set or is empty")
		}
		if d.Port <= 0 || d.Port > 65535 {
			return fmt.Errorf("database port %d is invalid, must be between 1 and 65535", d.Port)
		}
	case "sqlite":
		if strings.TrimSpace(d.Path) == "" {
			return errors.New("sqlite path is not set or is empty")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", d.Driver)
	}
	if d.MaxOpenConns <= 0 {
		return errors.New("database max open conns must be greater than 0")
	}
	if d.MaxIdleConns < 0 {
		return errors.New("database max idle conns must not be negative")
	}
	switch c.Graph.MissingRelation {
	case "drop", "fail":
	default:
		return fmt.Errorf("graph missing_relation must be drop or fail, got %q", c.Graph.MissingRelation)
	}
	if c.HTTP.RequestTimeout < 0 {
		return errors.New("http request timeout must not be negative")
	}
	return nil
}
