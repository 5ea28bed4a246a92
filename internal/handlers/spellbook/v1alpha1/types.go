package v1alpha1

import (
	"time"

	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
)

// GetSpellRequest is the JSON shape of a GetSpell request
type GetSpellRequest struct {
	Name string `json:"name"`
}

// GetSpellResponse is the JSON shape of a GetSpell response
type GetSpellResponse struct {
	Spell   *dnd5e.Spell `json:"spell"`
	Version string       `json:"version"`
}

// ListSpellsRequest is the JSON shape of a ListSpells request
type ListSpellsRequest struct{}

// SpellsResponse is the JSON shape of ListSpells and QuerySpells responses
type SpellsResponse struct {
	Spells  []*dnd5e.Spell `json:"spells"`
	Total   int            `json:"total"`
	Version string         `json:"version"`
}

// QuerySpellsRequest is the JSON shape of a QuerySpells request. Omitted
// fields place no constraint.
type QuerySpellsRequest struct {
	Classes       []string           `json:"classes,omitempty"`
	Levels        []int              `json:"levels,omitempty"`
	Schools       []string           `json:"schools,omitempty"`
	AttackTypes   []string           `json:"attackTypes,omitempty"`
	SaveTypes     []string           `json:"saveTypes,omitempty"`
	Concentration *bool              `json:"concentration,omitempty"`
	Ritual        *bool              `json:"ritual,omitempty"`
	CastingTimes  []string           `json:"castingTimes,omitempty"`
	Name          string             `json:"name,omitempty"`
	Components    *ComponentsRequest `json:"components,omitempty"`
	DamageTypes   []string           `json:"damageTypes,omitempty"`
	Conditions    []string           `json:"conditions,omitempty"`
	Durations     []string           `json:"durations,omitempty"`
}

// ComponentsRequest filters on spell components
type ComponentsRequest struct {
	Material *bool `json:"material,omitempty"`
	Somatic  *bool `json:"somatic,omitempty"`
	Verbal   *bool `json:"verbal,omitempty"`
}

// ReloadCatalogRequest is the JSON shape of a ReloadCatalog request
type ReloadCatalogRequest struct {
	SkipSnapshot bool `json:"skipSnapshot,omitempty"`
}

// ReloadCatalogResponse is the JSON shape of a ReloadCatalog response
type ReloadCatalogResponse struct {
	Version      string    `json:"version"`
	LoadedAt     time.Time `json:"loadedAt"`
	Total        int       `json:"total"`
	FromSnapshot bool      `json:"fromSnapshot"`
}

// CatalogStatsRequest is the JSON shape of a CatalogStats request
type CatalogStatsRequest struct{}

// CatalogStatsResponse is the JSON shape of a CatalogStats response
type CatalogStatsResponse struct {
	Version      string                    `json:"version"`
	LoadedAt     time.Time                 `json:"loadedAt"`
	FromSnapshot bool                      `json:"fromSnapshot"`
	Total        int                       `json:"total"`
	Facets       map[string]map[string]int `json:"facets"`
}
