package external

import (
	"strings"

	"github.com/fadedpez/dnd5e-api/entities"

	spellentities "github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
)

var castingTimes = map[string]spellentities.CastingTime{
	"1 action":       spellentities.CastingTimeAction,
	"1 bonus action": spellentities.CastingTimeBonusAction,
	"1 reaction":     spellentities.CastingTimeReaction,
}

// DC types come back as ability abbreviations
var abilities = map[string]spellentities.Ability{
	"str": spellentities.AbilityStrength,
	"dex": spellentities.AbilityDexterity,
	"con": spellentities.AbilityConstitution,
	"int": spellentities.AbilityIntelligence,
	"wis": spellentities.AbilityWisdom,
	"cha": spellentities.AbilityCharisma,
}

// convertSpell maps an API spell onto a catalog record. The API does not
// expose components, attack type or conditions, so those stay empty.
func convertSpell(spell *entities.Spell) *spellentities.Spell {
	if spell == nil {
		return nil
	}

	out := &spellentities.Spell{
		Name:          spell.Name,
		Level:         spell.SpellLevel,
		CastingTime:   convertCastingTime(spell.CastingTime),
		Duration:      convertDuration(spell.Duration),
		Range:         spellentities.Range(normalize(spell.Range)),
		Concentration: spell.Concentration,
		Ritual:        spell.Ritual,
	}

	if spell.SpellSchool != nil {
		out.School = spellentities.School(normalize(spell.SpellSchool.Name))
	}

	for _, class := range spell.SpellClasses {
		if class != nil {
			out.Classes = append(out.Classes, spellentities.Class(normalize(class.Name)))
		}
	}

	if spell.SpellDamage != nil && spell.SpellDamage.SpellDamageType != nil {
		out.DamageTypes = []spellentities.DamageType{
			spellentities.DamageType(normalize(spell.SpellDamage.SpellDamageType.Name)),
		}
	}

	if spell.DC != nil && spell.DC.DCType != nil {
		name := normalize(spell.DC.DCType.Name)
		if ability, ok := abilities[name]; ok {
			out.Save = &ability
		} else {
			save := spellentities.Ability(name)
			out.Save = &save
		}
	}

	if spell.AreaOfEffect != nil {
		out.Area = &spellentities.Area{
			Shape: spellentities.AreaShape(normalize(string(spell.AreaOfEffect.Type))),
			Size:  int(spell.AreaOfEffect.Size),
			Unit:  spellentities.AreaUnitFeet,
		}
	}

	return out
}

func convertCastingTime(value string) spellentities.CastingTime {
	v := normalize(value)
	if castingTime, ok := castingTimes[v]; ok {
		return castingTime
	}
	return spellentities.CastingTime(v)
}

// convertDuration folds "Up to 1 minute" into "1 minute"; concentration is
// carried by its own flag.
func convertDuration(value string) spellentities.Duration {
	v := normalize(value)
	v = strings.TrimPrefix(v, "up to ")
	return spellentities.Duration(v)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
