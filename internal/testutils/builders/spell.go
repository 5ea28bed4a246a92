// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
)

// SpellBuilder provides a fluent interface for building test Spell instances
type SpellBuilder struct {
	spell *dnd5e.Spell
}

// NewSpellBuilder creates a builder for a valid first level wizard evocation
// with verbal and somatic components and no material entry.
func NewSpellBuilder(name string) *SpellBuilder {
	return &SpellBuilder{
		spell: &dnd5e.Spell{
			Name:        name,
			Level:       1,
			School:      dnd5e.SchoolEvocation,
			CastingTime: dnd5e.CastingTimeAction,
			Duration:    dnd5e.DurationInstantaneous,
			Range:       dnd5e.Range60Feet,
			Components: dnd5e.Components{
				Verbal:  true,
				Somatic: true,
			},
			Classes: []dnd5e.Class{dnd5e.ClassWizard},
		},
	}
}

// WithLevel sets the spell level
func (b *SpellBuilder) WithLevel(level int) *SpellBuilder {
	b.spell.Level = level
	return b
}

// WithSchool sets the school of magic
func (b *SpellBuilder) WithSchool(school dnd5e.School) *SpellBuilder {
	b.spell.School = school
	return b
}

// WithCastingTime sets the casting time
func (b *SpellBuilder) WithCastingTime(castingTime dnd5e.CastingTime) *SpellBuilder {
	b.spell.CastingTime = castingTime
	return b
}

// WithDuration sets the duration
func (b *SpellBuilder) WithDuration(duration dnd5e.Duration) *SpellBuilder {
	b.spell.Duration = duration
	return b
}

// WithRange sets the range
func (b *SpellBuilder) WithRange(r dnd5e.Range) *SpellBuilder {
	b.spell.Range = r
	return b
}

// WithArea sets the area of effect, measured in feet
func (b *SpellBuilder) WithArea(shape dnd5e.AreaShape, size int) *SpellBuilder {
	b.spell.Area = &dnd5e.Area{Shape: shape, Size: size, Unit: dnd5e.AreaUnitFeet}
	return b
}

// WithClasses replaces the class list
func (b *SpellBuilder) WithClasses(classes ...dnd5e.Class) *SpellBuilder {
	b.spell.Classes = classes
	return b
}

// WithAttack sets the spell attack type
func (b *SpellBuilder) WithAttack(attack dnd5e.AttackType) *SpellBuilder {
	b.spell.Attack = &attack
	return b
}

// WithSave sets the saving throw ability
func (b *SpellBuilder) WithSave(save dnd5e.Ability) *SpellBuilder {
	b.spell.Save = &save
	return b
}

// WithDamageTypes sets the damage types
func (b *SpellBuilder) WithDamageTypes(damageTypes ...dnd5e.DamageType) *SpellBuilder {
	b.spell.DamageTypes = damageTypes
	return b
}

// WithConditions sets the conditions the spell imposes
func (b *SpellBuilder) WithConditions(conditions ...dnd5e.Condition) *SpellBuilder {
	b.spell.Conditions = conditions
	return b
}

// WithComponents sets verbal and somatic components, leaving material untouched
func (b *SpellBuilder) WithComponents(verbal, somatic bool) *SpellBuilder {
	b.spell.Components.Verbal = verbal
	b.spell.Components.Somatic = somatic
	return b
}

// WithMaterial sets an explicit material entry, true or false
func (b *SpellBuilder) WithMaterial(material bool, description string) *SpellBuilder {
	b.spell.Components.Material = dnd5e.Bool(material)
	b.spell.Components.MaterialDescription = description
	return b
}

// Concentration marks the spell as requiring concentration
func (b *SpellBuilder) Concentration() *SpellBuilder {
	b.spell.Concentration = true
	return b
}

// Ritual marks the spell as castable as a ritual
func (b *SpellBuilder) Ritual() *SpellBuilder {
	b.spell.Ritual = true
	return b
}

// WithReactionTrigger sets the reaction trigger text
func (b *SpellBuilder) WithReactionTrigger(trigger string) *SpellBuilder {
	b.spell.ReactionTrigger = trigger
	return b
}

// WithDescription sets the description paragraphs
func (b *SpellBuilder) WithDescription(paragraphs ...string) *SpellBuilder {
	b.spell.Description = paragraphs
	return b
}

// Build returns the built spell
func (b *SpellBuilder) Build() *dnd5e.Spell {
	return b.spell
}
