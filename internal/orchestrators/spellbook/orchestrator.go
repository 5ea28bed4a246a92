// Package spellbook implements the spellbook orchestrator: lookups and
// faceted queries over the live catalog, and hot reloads of that catalog.
package spellbook

//go:generate mockgen -destination=mock/mock_service.go -package=spellbookmock github.com/KirkDiggler/spellbook-api/internal/orchestrators/spellbook Service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/KirkDiggler/spellbook-api/internal/catalog"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/observe"
	"github.com/KirkDiggler/spellbook-api/internal/services/catalogloader"
)

// Service defines the interface for spellbook operations
type Service interface {
	GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error)
	ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error)
	QuerySpells(ctx context.Context, input *QuerySpellsInput) (*QuerySpellsOutput, error)

	// Reload builds a new catalog and swaps it in. Readers see either the
	// old or the new catalog, never a mix.
	Reload(ctx context.Context, input *ReloadInput) (*ReloadOutput, error)
	Stats(ctx context.Context, input *StatsInput) (*StatsOutput, error)
}

// Config holds the dependencies for the spellbook orchestrator
type Config struct {
	Loader catalogloader.Loader
	// Metrics is optional; nil records to a no-op provider
	Metrics *observe.Metrics
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Loader == nil {
		vb.RequiredField("Loader")
	}
	return vb.Build()
}

// live is one loaded catalog and its provenance
type live struct {
	index        *catalog.Index
	version      string
	loadedAt     time.Time
	fromSnapshot bool
}

type orchestrator struct {
	loader  catalogloader.Loader
	metrics *observe.Metrics

	current  atomic.Pointer[live]
	reloadMu sync.Mutex
}

// NewOrchestrator creates a new spellbook orchestrator. The catalog is empty
// until the first successful Reload.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	metrics := cfg.Metrics
	if metrics == nil {
		m, err := observe.NewMetrics(noop.NewMeterProvider())
		if err != nil {
			return nil, errors.Wrap(err, "failed to create metrics")
		}
		metrics = m
	}

	return &orchestrator{
		loader:  cfg.Loader,
		metrics: metrics,
	}, nil
}

func (o *orchestrator) loaded() (*live, error) {
	current := o.current.Load()
	if current == nil {
		return nil, errors.FailedPrecondition("catalog has not been loaded")
	}
	return current, nil
}

// GetSpell looks up a single spell by name
func (o *orchestrator) GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := observe.StartSpan(ctx, "spellbook.GetSpell")
	defer span.End()
	span.SetAttributes(attribute.String("spell.name", input.Name))

	current, err := o.loaded()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	spell, ok := current.index.Get(input.Name)
	o.metrics.RecordLookup(ctx, ok)
	if !ok {
		return nil, errors.NotFoundf("spell %q not found", input.Name).
			WithMeta("name", input.Name)
	}

	return &GetSpellOutput{
		Spell:   spell,
		Version: current.version,
	}, nil
}

// ListSpells returns the whole catalog in ingestion order
func (o *orchestrator) ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error) {
	_, span := observe.StartSpan(ctx, "spellbook.ListSpells")
	defer span.End()

	current, err := o.loaded()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return &ListSpellsOutput{
		Spells:  current.index.List(),
		Version: current.version,
	}, nil
}

// QuerySpells runs a faceted search against the catalog
func (o *orchestrator) QuerySpells(ctx context.Context, input *QuerySpellsInput) (*QuerySpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := observe.StartSpan(ctx, "spellbook.QuerySpells")
	defer span.End()

	current, err := o.loaded()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	start := time.Now()
	result := current.index.Query(input.Query)
	o.metrics.RecordQuery(ctx, time.Since(start).Seconds(), len(result))

	span.SetAttributes(attribute.Int("spellbook.results", len(result)))
	slog.Debug("Query evaluated", "results", len(result), "version", current.version)

	return &QuerySpellsOutput{
		Spells:  result,
		Version: current.version,
	}, nil
}

// Reload builds a fresh catalog through the loader and publishes it.
// Concurrent reloads are serialized; on failure the previous catalog stays
// live.
func (o *orchestrator) Reload(ctx context.Context, input *ReloadInput) (*ReloadOutput, error) {
	if input == nil {
		input = &ReloadInput{}
	}

	ctx, span := observe.StartSpan(ctx, "spellbook.Reload")
	defer span.End()

	o.reloadMu.Lock()
	defer o.reloadMu.Unlock()

	loaded, err := o.loader.Load(ctx, &catalogloader.LoadInput{SkipSnapshot: input.SkipSnapshot})
	if err != nil {
		o.metrics.RecordReload(ctx, 0, err)
		span.SetStatus(codes.Error, err.Error())
		slog.Error("Catalog reload failed", "error", err)
		return nil, errors.Wrap(err, "failed to reload catalog")
	}

	next := &live{
		index:        loaded.Index,
		version:      loaded.Version,
		loadedAt:     loaded.LoadedAt,
		fromSnapshot: loaded.FromSnapshot,
	}
	o.current.Store(next)
	o.metrics.RecordReload(ctx, next.index.Len(), nil)

	span.SetAttributes(
		attribute.String("catalog.version", next.version),
		attribute.Int("catalog.size", next.index.Len()),
	)

	return &ReloadOutput{
		Version:      next.version,
		LoadedAt:     next.loadedAt,
		Total:        next.index.Len(),
		FromSnapshot: next.fromSnapshot,
	}, nil
}

// Stats summarises the live catalog
func (o *orchestrator) Stats(ctx context.Context, input *StatsInput) (*StatsOutput, error) {
	_, span := observe.StartSpan(ctx, "spellbook.Stats")
	defer span.End()

	current, err := o.loaded()
	if err != nil {
		return nil, err
	}

	return &StatsOutput{
		Version:      current.version,
		LoadedAt:     current.loadedAt,
		FromSnapshot: current.fromSnapshot,
		Stats:        current.index.Stats(),
	}, nil
}
