package spellbook

import (
	"time"

	"github.com/KirkDiggler/spellbook-api/internal/catalog"
	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
)

// GetSpellInput defines the request for looking up a spell by name
type GetSpellInput struct {
	// Name is matched case-insensitively against the spell's name
	Name string
}

// GetSpellOutput defines the response for looking up a spell
type GetSpellOutput struct {
	Spell   *dnd5e.Spell
	Version string
}

// ListSpellsInput defines the request for listing the whole catalog
type ListSpellsInput struct{}

// ListSpellsOutput defines the response for listing the whole catalog
type ListSpellsOutput struct {
	Spells  []*dnd5e.Spell
	Version string
}

// QuerySpellsInput defines the request for a faceted search
type QuerySpellsInput struct {
	Query catalog.Query
}

// QuerySpellsOutput defines the response for a faceted search
type QuerySpellsOutput struct {
	Spells  []*dnd5e.Spell
	Version string
}

// ReloadInput defines the request for rebuilding the catalog
type ReloadInput struct {
	// SkipSnapshot re-reads the source even if a snapshot is cached
	SkipSnapshot bool
}

// ReloadOutput describes the catalog that is now live
type ReloadOutput struct {
	Version      string
	LoadedAt     time.Time
	Total        int
	FromSnapshot bool
}

// StatsInput defines the request for catalog statistics
type StatsInput struct{}

// StatsOutput describes the live catalog
type StatsOutput struct {
	Version      string
	LoadedAt     time.Time
	FromSnapshot bool
	Stats        catalog.Stats
}
