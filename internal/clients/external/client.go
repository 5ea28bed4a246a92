// Package external loads spells from the public D&D 5e API
package external

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"golang.org/x/sync/errgroup"

	spellentities "github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
)

const (
	defaultBaseURL     = "https://www.dnd5eapi.co/api/2014/"
	defaultHTTPTimeout = 30 * time.Second
	defaultCacheTTL    = 24 * time.Hour
	defaultConcurrency = 8
)

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Concurrency bounds the number of in-flight detail requests (optional, defaults to 8)
	Concurrency int
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = defaultConcurrency
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("http_timeout", int64(cfg.HTTPTimeout), vb)
	errors.ValidateNonNegative("cache_ttl", int64(cfg.CacheTTL), vb)
	errors.ValidateNonNegative("concurrency", int64(cfg.Concurrency), vb)
	return vb.Build()
}

// Client is a spell record source backed by the D&D 5e API
type Client struct {
	dnd5eClient dnd5e.Interface
	concurrency int
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	// Detail lookups repeat across reloads; the cached client absorbs them.
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &Client{
		dnd5eClient: cachedClient,
		concurrency: cfg.Concurrency,
	}, nil
}

// ListSpells lists every spell reference and fetches the details
// concurrently. Results keep the API's listing order. Records that cannot be
// expressed in the catalog vocabulary are logged and skipped.
func (c *Client) ListSpells(ctx context.Context) ([]*spellentities.Spell, error) {
	slog.Info("Calling D&D 5e API to list spells")
	refs, err := c.dnd5eClient.ListSpells(nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list spells from D&D 5e API")
	}
	slog.Info("Got spell references", "count", len(refs))

	converted := make([]*spellentities.Spell, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, ref := range refs {
		if ref == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			spell, err := c.dnd5eClient.GetSpell(ref.Key)
			if err != nil {
				return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get spell %s", ref.Key)
			}

			converted[i] = convertSpell(spell)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*spellentities.Spell, 0, len(converted))
	for _, spell := range converted {
		if spell == nil {
			continue
		}
		if err := spellentities.ValidateSpell(spell); err != nil {
			slog.Warn("Skipping upstream spell", "spell", spell.Name, "error", err)
			continue
		}
		result = append(result, spell)
	}

	slog.Info("Loaded spells from D&D 5e API", "count", len(result), "skipped", len(refs)-len(result))
	return result, nil
}
