package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/spellbook-api/internal/errors"
)

// Load reads the YAML file at path over the defaults and validates the
// result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("config file %q not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open config %q", path)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config %q", path)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r over the defaults and validates the
// result. Unknown keys are rejected. An empty document yields the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is coherent
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	errors.ValidateEnum("server.log_level", c.Server.LogLevel, LogLevels, vb)
	if c.Server.ShutdownTimeout < 0 {
		vb.InvalidField("server.shutdown_timeout", "must not be negative")
	}

	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		vb.Field("metrics.addr", "is required when metrics are enabled")
	}

	errors.ValidateEnum("catalog.source", c.Catalog.Source, Sources, vb)
	switch c.Catalog.Source {
	case SourceFile:
		if c.Catalog.File == "" {
			vb.Field("catalog.file", "is required when catalog.source is file")
		}
	case SourcePostgres:
		if c.Catalog.PostgresDSN == "" {
			vb.Field("catalog.postgres_dsn", "is required when catalog.source is postgres")
		}
	}

	if c.Catalog.Upstream.HTTPTimeout < 0 {
		vb.InvalidField("catalog.upstream.http_timeout", "must not be negative")
	}
	if c.Catalog.Upstream.CacheTTL < 0 {
		vb.InvalidField("catalog.upstream.cache_ttl", "must not be negative")
	}
	errors.ValidateNonNegative("catalog.upstream.concurrency", int64(c.Catalog.Upstream.Concurrency), vb)

	errors.ValidateNonNegative("redis.db", int64(c.Redis.DB), vb)

	return vb.Build()
}
