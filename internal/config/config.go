// Package config holds the spellbook server configuration and its YAML loader.
package config

import (
	"log/slog"
	"time"
)

// Source names a catalog record source
type Source string

// Supported catalog sources
const (
	SourceSeed     Source = "seed"
	SourceFile     Source = "file"
	SourcePostgres Source = "postgres"
	SourceUpstream Source = "upstream"
)

// Sources lists every supported source, for validation and help text
var Sources = []Source{SourceSeed, SourceFile, SourcePostgres, SourceUpstream}

// LogLevel is a textual slog level
type LogLevel string

// Supported log levels
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogLevels lists every supported log level
var LogLevels = []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}

// SlogLevel converts the level for slog.HandlerOptions. Unknown levels map
// to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config is the top level server configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Metrics MetricsConfig `yaml:"metrics"`
	Catalog CatalogConfig `yaml:"catalog"`
	Redis   RedisConfig   `yaml:"redis"`
}

// ServerConfig configures the gRPC listener
type ServerConfig struct {
	Port            int           `yaml:"port"`
	LogLevel        LogLevel      `yaml:"log_level"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// MetricsConfig configures the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// CatalogConfig selects and configures the record source
type CatalogConfig struct {
	Source      Source         `yaml:"source"`
	File        string         `yaml:"file"`
	PostgresDSN string         `yaml:"postgres_dsn"`
	Upstream    UpstreamConfig `yaml:"upstream"`
}

// UpstreamConfig configures the D&D 5e API source
type UpstreamConfig struct {
	BaseURL     string        `yaml:"base_url"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
	Concurrency int           `yaml:"concurrency"`
}

// RedisConfig configures the snapshot cache. An empty endpoint disables it.
type RedisConfig struct {
	Endpoint    string        `yaml:"endpoint"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	SnapshotTTL time.Duration `yaml:"snapshot_ttl"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            50051,
			LogLevel:        LogLevelInfo,
			ShutdownTimeout: 10 * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Addr:    ":9090",
		},
		Catalog: CatalogConfig{
			Source: SourceSeed,
		},
		Redis: RedisConfig{
			SnapshotTTL: 24 * time.Hour,
		},
	}
}
