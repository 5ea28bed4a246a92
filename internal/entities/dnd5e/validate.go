package dnd5e

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/spellbook-api/internal/errors"
)

// ValidateSpell checks a single record against the catalog schema
func ValidateSpell(spell *Spell) error {
	vb := errors.NewValidationBuilder()
	validateSpell("", spell, vb)
	return vb.Build()
}

// ValidateSpells checks every record and rejects duplicate identity keys.
// Field names in the returned error are prefixed with the record position,
// e.g. "spells[3].school".
func ValidateSpells(spells []*Spell) error {
	vb := errors.NewValidationBuilder()
	if len(spells) == 0 {
		vb.Field("spells", "must contain at least one spell")
		return vb.Build()
	}

	seen := make(map[string]int, len(spells))
	for i, spell := range spells {
		prefix := fmt.Sprintf("spells[%d].", i)
		validateSpell(prefix, spell, vb)
		if spell == nil || spell.Name == "" {
			continue
		}
		if first, ok := seen[spell.Key()]; ok {
			vb.Fieldf(prefix+"name", "duplicates spells[%d] (%q)", first, spell.Key())
			continue
		}
		seen[spell.Key()] = i
	}

	return vb.Build()
}

func validateSpell(prefix string, spell *Spell, vb *errors.ValidationBuilder) {
	if spell == nil {
		vb.Field(prefix+"spell", "must not be nil")
		return
	}

	errors.ValidateRequired(prefix+"name", spell.Name, vb)
	errors.ValidateRange(prefix+"level", spell.Level, 0, MaxSpellLevel, vb)
	errors.ValidateEnum(prefix+"school", spell.School, Schools, vb)
	errors.ValidateEnum(prefix+"castingTime", spell.CastingTime, CastingTimes, vb)
	errors.ValidateEnum(prefix+"duration", spell.Duration, Durations, vb)
	errors.ValidateEnum(prefix+"range", spell.Range, Ranges, vb)

	if len(spell.Classes) == 0 {
		vb.Field(prefix+"classes", "must contain at least one class")
	}
	for _, class := range spell.Classes {
		if !slices.Contains(Classes, Class(strings.ToLower(string(class)))) {
			vb.Fieldf(prefix+"classes", "unknown class %q", class)
		}
	}

	if spell.Attack != nil {
		errors.ValidateEnum(prefix+"attack", *spell.Attack, AttackTypes, vb)
	}
	if spell.Save != nil {
		errors.ValidateEnum(prefix+"save", *spell.Save, Abilities, vb)
	}
	for _, damageType := range spell.DamageTypes {
		if !slices.Contains(DamageTypes, damageType) {
			vb.Fieldf(prefix+"damageType", "unknown damage type %q", damageType)
		}
	}
	for _, condition := range spell.Conditions {
		if !slices.Contains(Conditions, Condition(strings.ToLower(string(condition)))) {
			vb.Fieldf(prefix+"conditions", "unknown condition %q", condition)
		}
	}

	if spell.Area != nil {
		errors.ValidateEnum(prefix+"area.shape", spell.Area.Shape, AreaShapes, vb)
		errors.ValidateEnum(prefix+"area.unit", spell.Area.Unit, AreaUnits, vb)
		if spell.Area.Size <= 0 {
			vb.Field(prefix+"area.size", "must be positive")
		}
	}

	if spell.ReactionTrigger != "" && spell.CastingTime != CastingTimeReaction {
		vb.Field(prefix+"reactionTrigger", "only allowed on reaction spells")
	}
}
