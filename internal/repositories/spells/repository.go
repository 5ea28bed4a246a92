// Package spells provides the record sources a catalog is loaded from, a
// Postgres store to import into, and a Redis snapshot cache of loaded record
// sets.
package spells

import (
	"context"

	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=spellsmock github.com/KirkDiggler/spellbook-api/internal/repositories/spells Source,Store,Snapshot

// Source yields a complete spell record set in ingestion order
type Source interface {
	ListSpells(ctx context.Context) ([]*dnd5e.Spell, error)
}

// Store persists a record set, replacing whatever was there
type Store interface {
	ReplaceAll(ctx context.Context, spells []*dnd5e.Spell) (*ReplaceAllOutput, error)
}

// Snapshot caches validated record sets keyed by source name.
// Get returns a NotFound error on a miss.
type Snapshot interface {
	Get(ctx context.Context, source string) ([]*dnd5e.Spell, error)
	Put(ctx context.Context, source string, spells []*dnd5e.Spell) error
}

// ReplaceAllOutput reports what a ReplaceAll changed
type ReplaceAllOutput struct {
	Deleted  int64
	Inserted int64
}
