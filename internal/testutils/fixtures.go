package testutils

import (
	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook-api/internal/testutils/builders"
)

// Fixture catalog spell names, in ingestion order
const (
	SpellFireBolt          = "Fire Bolt"
	SpellSacredFlame       = "Sacred Flame"
	SpellShockingGrasp     = "Shocking Grasp"
	SpellMageHand          = "Mage Hand"
	SpellGuidance          = "Guidance"
	SpellBurningHands      = "Burning Hands"
	SpellDetectMagic       = "Detect Magic"
	SpellShield            = "Shield"
	SpellFindFamiliar      = "Find Familiar"
	SpellDivineFavor       = "Divine Favor"
	SpellHoldPerson        = "Hold Person"
	SpellMistyStep         = "Misty Step"
	SpellBlindnessDeafness = "Blindness/Deafness"
	SpellFireball          = "Fireball"
	SpellCounterspell      = "Counterspell"
	SpellFireShield        = "Fire Shield"
	SpellWallOfFire        = "Wall of Fire"
)

// CreateTestSpellCatalog returns a small, valid catalog with enough variety
// to exercise every facet. Find Familiar lists its class as "Wizard" and Hold
// Person its condition as "Paralyzed" to cover case normalisation.
// Blindness/Deafness carries an explicit material=false entry.
func CreateTestSpellCatalog() []*dnd5e.Spell {
	return []*dnd5e.Spell{
		builders.NewSpellBuilder(SpellFireBolt).
			WithLevel(0).
			WithRange(dnd5e.Range120Feet).
			WithClasses(dnd5e.ClassSorcerer, dnd5e.ClassWizard).
			WithAttack(dnd5e.AttackTypeRanged).
			WithDamageTypes(dnd5e.DamageTypeFire).
			Build(),
		builders.NewSpellBuilder(SpellSacredFlame).
			WithLevel(0).
			WithClasses(dnd5e.ClassCleric).
			WithSave(dnd5e.AbilityDexterity).
			WithDamageTypes(dnd5e.DamageTypeRadiant).
			Build(),
		builders.NewSpellBuilder(SpellShockingGrasp).
			WithLevel(0).
			WithRange(dnd5e.RangeTouch).
			WithClasses(dnd5e.ClassSorcerer, dnd5e.ClassWizard).
			WithAttack(dnd5e.AttackTypeMelee).
			WithDamageTypes(dnd5e.DamageTypeLightning).
			Build(),
		builders.NewSpellBuilder(SpellMageHand).
			WithLevel(0).
			WithSchool(dnd5e.SchoolConjuration).
			WithDuration(dnd5e.Duration1Minute).
			WithRange(dnd5e.Range30Feet).
			WithClasses(dnd5e.ClassBard, dnd5e.ClassSorcerer, dnd5e.ClassWarlock, dnd5e.ClassWizard).
			Build(),
		builders.NewSpellBuilder(SpellGuidance).
			WithLevel(0).
			WithSchool(dnd5e.SchoolDivination).
			WithDuration(dnd5e.Duration1Minute).
			WithRange(dnd5e.RangeTouch).
			WithClasses(dnd5e.ClassCleric, dnd5e.ClassDruid).
			Concentration().
			Build(),
		builders.NewSpellBuilder(SpellBurningHands).
			WithRange(dnd5e.RangeSelf).
			WithArea(dnd5e.AreaShapeCone, 15).
			WithClasses(dnd5e.ClassSorcerer, dnd5e.ClassWizard).
			WithSave(dnd5e.AbilityDexterity).
			WithDamageTypes(dnd5e.DamageTypeFire).
			Build(),
		builders.NewSpellBuilder(SpellDetectMagic).
			WithSchool(dnd5e.SchoolDivination).
			WithDuration(dnd5e.Duration10Minutes).
			WithRange(dnd5e.RangeSelf).
			WithClasses(dnd5e.ClassBard, dnd5e.ClassCleric, dnd5e.ClassDruid, dnd5e.ClassPaladin,
				dnd5e.ClassRanger, dnd5e.ClassSorcerer, dnd5e.ClassWizard).
			Concentration().
			Ritual().
			Build(),
		builders.NewSpellBuilder(SpellShield).
			WithSchool(dnd5e.SchoolAbjuration).
			WithCastingTime(dnd5e.CastingTimeReaction).
			WithDuration(dnd5e.Duration1Round).
			WithRange(dnd5e.RangeSelf).
			WithClasses(dnd5e.ClassSorcerer, dnd5e.ClassWizard).
			WithReactionTrigger("which you take when you are hit by an attack or targeted by the magic missile spell").
			Build(),
		builders.NewSpellBuilder(SpellFindFamiliar).
			WithSchool(dnd5e.SchoolConjuration).
			WithCastingTime(dnd5e.CastingTime1Hour).
			WithRange(dnd5e.Range10Feet).
			WithClasses("Wizard").
			WithMaterial(true, "10 gp worth of charcoal, incense, and herbs").
			Ritual().
			Build(),
		builders.NewSpellBuilder(SpellDivineFavor).
			WithCastingTime(dnd5e.CastingTimeBonusAction).
			WithDuration(dnd5e.Duration1Minute).
			WithRange(dnd5e.RangeSelf).
			WithClasses(dnd5e.ClassPaladin).
			WithDamageTypes(dnd5e.DamageTypeRadiant).
			Concentration().
			Build(),
		builders.NewSpellBuilder(SpellHoldPerson).
			WithLevel(2).
			WithSchool(dnd5e.SchoolEnchantment).
			WithDuration(dnd5e.Duration1Minute).
			WithClasses(dnd5e.ClassBard, dnd5e.ClassCleric, dnd5e.ClassDruid,
				dnd5e.ClassSorcerer, dnd5e.ClassWarlock, dnd5e.ClassWizard).
			WithSave(dnd5e.AbilityWisdom).
			WithConditions("Paralyzed").
			WithMaterial(true, "a small, straight piece of iron").
			Concentration().
			Build(),
		builders.NewSpellBuilder(SpellMistyStep).
			WithLevel(2).
			WithSchool(dnd5e.SchoolConjuration).
			WithCastingTime(dnd5e.CastingTimeBonusAction).
			WithRange(dnd5e.RangeSelf).
			WithClasses(dnd5e.ClassSorcerer, dnd5e.ClassWarlock, dnd5e.ClassWizard).
			WithComponents(true, false).
			Build(),
		builders.NewSpellBuilder(SpellBlindnessDeafness).
			WithLevel(2).
			WithSchool(dnd5e.SchoolNecromancy).
			WithDuration(dnd5e.Duration1Minute).
			WithRange(dnd5e.Range30Feet).
			WithClasses(dnd5e.ClassBard, dnd5e.ClassCleric, dnd5e.ClassSorcerer, dnd5e.ClassWizard).
			WithSave(dnd5e.AbilityConstitution).
			WithConditions(dnd5e.ConditionBlinded, dnd5e.ConditionDeafened).
			WithComponents(true, false).
			WithMaterial(false, "").
			Build(),
		builders.NewSpellBuilder(SpellFireball).
			WithLevel(3).
			WithRange(dnd5e.Range150Feet).
			WithArea(dnd5e.AreaShapeSphere, 20).
			WithClasses(dnd5e.ClassSorcerer, dnd5e.ClassWizard).
			WithSave(dnd5e.AbilityDexterity).
			WithDamageTypes(dnd5e.DamageTypeFire).
			WithMaterial(true, "a tiny ball of bat guano and sulfur").
			Build(),
		builders.NewSpellBuilder(SpellCounterspell).
			WithLevel(3).
			WithSchool(dnd5e.SchoolAbjuration).
			WithCastingTime(dnd5e.CastingTimeReaction).
			WithClasses(dnd5e.ClassSorcerer, dnd5e.ClassWarlock, dnd5e.ClassWizard).
			WithComponents(false, true).
			WithReactionTrigger("which you take when you see a creature within 60 feet of you casting a spell").
			Build(),
		builders.NewSpellBuilder(SpellFireShield).
			WithLevel(4).
			WithDuration(dnd5e.Duration10Minutes).
			WithRange(dnd5e.RangeSelf).
			WithClasses(dnd5e.ClassWizard).
			WithDamageTypes(dnd5e.DamageTypeFire, dnd5e.DamageTypeCold).
			WithMaterial(true, "a bit of phosphorus or a firefly").
			Build(),
		builders.NewSpellBuilder(SpellWallOfFire).
			WithLevel(4).
			WithDuration(dnd5e.Duration1Minute).
			WithRange(dnd5e.Range120Feet).
			WithClasses(dnd5e.ClassDruid, dnd5e.ClassSorcerer, dnd5e.ClassWizard).
			WithSave(dnd5e.AbilityDexterity).
			WithDamageTypes(dnd5e.DamageTypeFire).
			WithMaterial(true, "a small piece of phosphorus").
			Concentration().
			Build(),
	}
}

// SpellNames returns the names of spells, in order
func SpellNames(spells []*dnd5e.Spell) []string {
	names := make([]string, len(spells))
	for i, spell := range spells {
		names[i] = spell.Name
	}
	return names
}
