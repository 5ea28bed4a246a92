// Package catalogloader turns a record source into a ready catalog index
package catalogloader

//go:generate mockgen -destination=mock/mock_loader.go -package=catalogloadermock github.com/KirkDiggler/spellbook-api/internal/services/catalogloader Loader

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/spellbook-api/internal/catalog"
	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/pkg/clock"
	"github.com/KirkDiggler/spellbook-api/internal/pkg/idgen"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/spells"
)

// Loader builds catalog indexes
type Loader interface {
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}

// LoadInput controls a single load
type LoadInput struct {
	// SkipSnapshot forces a read from the source even when a snapshot exists.
	// The fresh record set still replaces the snapshot.
	SkipSnapshot bool
}

// LoadOutput is a freshly built index and where it came from
type LoadOutput struct {
	Index        *catalog.Index
	Version      string
	LoadedAt     time.Time
	FromSnapshot bool
}

// Config holds the dependencies for the catalog loader
type Config struct {
	Source spells.Source
	// SourceName keys the snapshot, e.g. "seed" or "postgres"
	SourceName string
	// Snapshot is optional; nil disables snapshot caching
	Snapshot    spells.Snapshot
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Source == nil {
		vb.RequiredField("Source")
	}
	errors.ValidateRequired("SourceName", c.SourceName, vb)
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type loader struct {
	source     spells.Source
	sourceName string
	snapshot   spells.Snapshot
	clock      clock.Clock
	idGen      idgen.Generator
}

// New creates a catalog loader with the provided dependencies
func New(cfg *Config) (Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &loader{
		source:     cfg.Source,
		sourceName: cfg.SourceName,
		snapshot:   cfg.Snapshot,
		clock:      cfg.Clock,
		idGen:      cfg.IDGenerator,
	}, nil
}

// Load reads the record set, from the snapshot when one is available and
// otherwise from the source, validates it and indexes it. A snapshot that
// cannot be read or stored never fails the load.
func (l *loader) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		input = &LoadInput{}
	}

	if l.snapshot != nil && !input.SkipSnapshot {
		if records, ok := l.fromSnapshot(ctx); ok {
			return l.build(records, true), nil
		}
	}

	records, err := l.source.ListSpells(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog source %s", l.sourceName)
	}

	if err := dnd5e.ValidateSpells(records); err != nil {
		return nil, errors.Wrapf(err, "catalog source %s is invalid", l.sourceName)
	}

	if l.snapshot != nil {
		if err := l.snapshot.Put(ctx, l.sourceName, records); err != nil {
			slog.Warn("Failed to store catalog snapshot", "source", l.sourceName, "error", err)
		}
	}

	return l.build(records, false), nil
}

func (l *loader) fromSnapshot(ctx context.Context) ([]*dnd5e.Spell, bool) {
	records, err := l.snapshot.Get(ctx, l.sourceName)
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.Warn("Failed to read catalog snapshot", "source", l.sourceName, "error", err)
		}
		return nil, false
	}

	if err := dnd5e.ValidateSpells(records); err != nil {
		slog.Warn("Ignoring invalid catalog snapshot", "source", l.sourceName, "error", err)
		return nil, false
	}

	return records, true
}

func (l *loader) build(records []*dnd5e.Spell, fromSnapshot bool) *LoadOutput {
	out := &LoadOutput{
		Index:        catalog.New(records),
		Version:      l.idGen.Generate(),
		LoadedAt:     l.clock.Now(),
		FromSnapshot: fromSnapshot,
	}

	slog.Info("Catalog loaded",
		"source", l.sourceName,
		"version", out.Version,
		"spells", out.Index.Len(),
		"from_snapshot", fromSnapshot)

	return out
}
