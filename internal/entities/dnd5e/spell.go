package dnd5e

import "strings"

// Spell is a single catalog record. Records are treated as immutable once
// they have been loaded; the catalog index and every caller share the same
// pointers.
type Spell struct {
	Name            string       `json:"name" yaml:"name"`
	Level           int          `json:"level" yaml:"level"` // 0 for cantrips
	School          School       `json:"school" yaml:"school"`
	CastingTime     CastingTime  `json:"castingTime" yaml:"castingTime"`
	Duration        Duration     `json:"duration" yaml:"duration"`
	Range           Range        `json:"range" yaml:"range"`
	Area            *Area        `json:"area,omitempty" yaml:"area,omitempty"`
	Components      Components   `json:"components" yaml:"components"`
	Classes         []Class      `json:"classes" yaml:"classes"`
	Attack          *AttackType  `json:"attack,omitempty" yaml:"attack,omitempty"`
	Save            *Ability     `json:"save,omitempty" yaml:"save,omitempty"`
	DamageTypes     []DamageType `json:"damageType,omitempty" yaml:"damageType,omitempty"`
	Conditions      []Condition  `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Concentration   bool         `json:"concentration" yaml:"concentration"`
	Ritual          bool         `json:"ritual" yaml:"ritual"`
	ReactionTrigger string       `json:"reactionTrigger,omitempty" yaml:"reactionTrigger,omitempty"`
	Description     []string     `json:"description,omitempty" yaml:"description,omitempty"`
	HigherLevels    []string     `json:"higherLevels,omitempty" yaml:"higherLevels,omitempty"`
}

// Components describes the verbal, somatic and material requirements of a
// spell. Material is a pointer because an absent material entry is distinct
// from an explicit false.
type Components struct {
	Material            *bool  `json:"material,omitempty" yaml:"material,omitempty"`
	MaterialDescription string `json:"materialDescription,omitempty" yaml:"materialDescription,omitempty"`
	Somatic             bool   `json:"somatic" yaml:"somatic"`
	Verbal              bool   `json:"verbal" yaml:"verbal"`
}

// Area is a spell's area of effect
type Area struct {
	Shape AreaShape `json:"shape" yaml:"shape"`
	Size  int       `json:"size" yaml:"size"`
	Unit  AreaUnit  `json:"unit" yaml:"unit"`
}

// Key returns the identity key of the spell: its name lowercased.
func (s *Spell) Key() string {
	return SpellKey(s.Name)
}

// IsCantrip reports whether the spell is a level 0 spell
func (s *Spell) IsCantrip() bool {
	return s.Level == 0
}

// SpellKey normalises a spell name into its identity key
func SpellKey(name string) string {
	return strings.ToLower(name)
}

// Bool returns a pointer to v, for optional flags such as Components.Material
func Bool(v bool) *bool {
	return &v
}
