package config

import (
	"fmt"
	"time"
)

type HTTPConfig struct {
	Addr              string        `yaml:"addr" env:"HTTP_ADDR"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"HTTP_READ_HEADER_TIMEOUT"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT"`
	// RequestTimeout bounds every request, including all fan-out branches
	// issued while assembling a response. Zero disables the deadline.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"HTTP_REQUEST_TIMEOUT"`
	CORSOrigins    []string      `yaml:"cors_origins" env:"HTTP_CORS_ORIGINS" envSeparator:","`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver" env:"DB_DRIVER"`
	Host     string `yaml:"host" env:"POSTGRES_HOST"`
	Port     int    `yaml:"port" env:"POSTGRES_PORT"`
	Name     string `yaml:"name" env:"POSTGRES_NAME"`
	User     string `yaml:"user" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	SSLMode  string `yaml:"ssl_mode" env:"POSTGRES_SSL_MODE"`
	// Path is the sqlite database file; ":memory:" keeps everything in process.
	Path            string        `yaml:"path" env:"SQLITE_PATH"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	AutoMigrate     bool          `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE"`
	LogQueries      bool          `yaml:"log_queries" env:"DB_LOG_QUERIES"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

type LogConfig struct {
	File       string `yaml:"file" env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"LOG_MAX_SIZE_MB"`
	MaxBackups int    `yaml:"max_backups" env:"LOG_MAX_BACKUPS"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS"`
}

type GraphConfig struct {
	// MissingRelation is "drop" (leave the relation unset) or "fail".
	MissingRelation string `yaml:"missing_relation" env:"GRAPH_MISSING_RELATION"`
}

type TelemetryConfig struct {
	ServiceName    string  `yaml:"service_name" env:"OTEL_SERVICE_NAME"`
	OtelEnabled    bool    `yaml:"otel_enabled" env:"OTEL_ENABLED"`
	OtlpEndpoint   string  `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtlpInsecure   bool    `yaml:"otlp_insecure" env:"OTEL_EXPORTER_OTLP_INSECURE"`
	SampleRatio    float64 `yaml:"sample_ratio" env:"OTEL_SAMPLER_RATIO"`
	MetricsEnabled bool    `yaml:"metrics_enabled" env:"METRICS_ENABLED"`
}

type Config struct {
	Env       string          `yaml:"env" env:"LOG_MODE"`
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Graph     GraphConfig     `yaml:"graph"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

func defaultConfig() *Config {
	return &Config{
		Env: "development",
		HTTP: HTTPConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   15 * time.Second,
			RequestTimeout:    30 * time.Second,
			CORSOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
				"http://127.0.0.1:3000",
				"http://127.0.0.1:5173",
			},
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			Name:            "academics",
			User:            "postgres",
			SSLMode:         "disable",
			Path:            "academics.db",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			AutoMigrate:     true,
		},
		Log: LogConfig{
			MaxSizeMB:  50,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
		Graph: GraphConfig{MissingRelation: "drop"},
		Telemetry: TelemetryConfig{
			ServiceName: "academics-backend",
			SampleRatio: 0.1,
		},
	}
}
