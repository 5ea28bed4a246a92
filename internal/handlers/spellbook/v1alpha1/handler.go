// Package v1alpha1 handles the spellbook grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/orchestrators/spellbook"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	SpellService spellbook.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.SpellService == nil {
		return errors.InvalidArgument("spell service is required")
	}
	return nil
}

// Handler implements the spellbook gRPC service
type Handler struct {
	spellService spellbook.Service
}

var _ SpellServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		spellService: cfg.SpellService,
	}, nil
}

// GetSpell looks up a single spell by name
func (h *Handler) GetSpell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in GetSpellRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	output, err := h.spellService.GetSpell(ctx, &spellbook.GetSpellInput{Name: in.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&GetSpellResponse{
		Spell:   output.Spell,
		Version: output.Version,
	})
}

// ListSpells returns the whole catalog in ingestion order
func (h *Handler) ListSpells(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ListSpellsRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.spellService.ListSpells(ctx, &spellbook.ListSpellsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(spellsResponse(output.Spells, output.Version))
}

// QuerySpells runs a faceted search
func (h *Handler) QuerySpells(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in QuerySpellsRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.spellService.QuerySpells(ctx, &spellbook.QuerySpellsInput{Query: toQuery(&in)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(spellsResponse(output.Spells, output.Version))
}

// ReloadCatalog rebuilds the catalog from its source
func (h *Handler) ReloadCatalog(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ReloadCatalogRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.spellService.Reload(ctx, &spellbook.ReloadInput{SkipSnapshot: in.SkipSnapshot})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ReloadCatalogResponse{
		Version:      output.Version,
		LoadedAt:     output.LoadedAt,
		Total:        output.Total,
		FromSnapshot: output.FromSnapshot,
	})
}

// CatalogStats reports per-facet counts for the live catalog
func (h *Handler) CatalogStats(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in CatalogStatsRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.spellService.Stats(ctx, &spellbook.StatsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&CatalogStatsResponse{
		Version:      output.Version,
		LoadedAt:     output.LoadedAt,
		FromSnapshot: output.FromSnapshot,
		Total:        output.Stats.Total,
		Facets:       output.Stats.Facets,
	})
}

func respond(v any) (*structpb.Struct, error) {
	out, err := ToStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
