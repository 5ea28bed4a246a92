package main

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/spellbook-api/internal/clients/external"
	"github.com/KirkDiggler/spellbook-api/internal/config"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/spells"
)

// openSource builds the record source named by cfg.Source. The returned
// cleanup releases any connection the source holds and is never nil.
func openSource(ctx context.Context, cfg config.CatalogConfig) (spells.Source, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case config.SourceSeed:
		src, err := spells.NewSeedSource()
		return src, noop, err
	case config.SourceFile:
		src, err := spells.NewFileSource(cfg.File)
		return src, noop, err
	case config.SourcePostgres:
		pool, err := spells.OpenPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, noop, err
		}
		repo, err := spells.NewPostgres(&spells.PostgresConfig{Pool: pool})
		if err != nil {
			pool.Close()
			return nil, noop, err
		}
		return repo, pool.Close, nil
	case config.SourceUpstream:
		upstream, err := external.New(&external.Config{
			BaseURL:     cfg.Upstream.BaseURL,
			HTTPTimeout: cfg.Upstream.HTTPTimeout,
			CacheTTL:    cfg.Upstream.CacheTTL,
			Concurrency: cfg.Upstream.Concurrency,
		})
		if err != nil {
			return nil, noop, err
		}
		return upstream, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}
