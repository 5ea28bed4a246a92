package dnd5e

// School is the school of magic a spell belongs to
type School string

// School constants
const (
	SchoolAbjuration    School = "abjuration"
	SchoolConjuration   School = "conjuration"
	SchoolDivination    School = "divination"
	SchoolEnchantment   School = "enchantment"
	SchoolEvocation     School = "evocation"
	SchoolIllusion      School = "illusion"
	SchoolNecromancy    School = "necromancy"
	SchoolTransmutation School = "transmutation"
)

// CastingTime is the casting time tier of a spell
type CastingTime string

// CastingTime constants
const (
	CastingTimeReaction    CastingTime = "reaction"
	CastingTimeBonusAction CastingTime = "bonus action"
	CastingTimeAction      CastingTime = "action"
	CastingTime1Minute     CastingTime = "1 minute"
	CastingTime10Minutes   CastingTime = "10 minutes"
	CastingTime1Hour       CastingTime = "1 hour"
	CastingTime8Hours      CastingTime = "8 hours"
	CastingTime12Hours     CastingTime = "12 hours"
	CastingTime24Hours     CastingTime = "24 hours"
)

// Duration is the duration tier of a spell
type Duration string

// Duration constants
const (
	DurationInstantaneous  Duration = "instantaneous"
	Duration1Round         Duration = "1 round"
	Duration1Minute        Duration = "1 minute"
	Duration10Minutes      Duration = "10 minutes"
	Duration1Hour          Duration = "1 hour"
	Duration2Hours         Duration = "2 hours"
	Duration8Hours         Duration = "8 hours"
	Duration12Hours        Duration = "12 hours"
	Duration24Hours        Duration = "24 hours"
	Duration1Day           Duration = "1 day"
	Duration7Days          Duration = "7 days"
	Duration10Days         Duration = "10 days"
	Duration30Days         Duration = "30 days"
	DurationSpecial        Duration = "special"
	DurationUntilDispelled Duration = "until dispelled"
)

// Range is the range tier of a spell
type Range string

// Range constants
const (
	RangeSelf      Range = "self"
	RangeTouch     Range = "touch"
	RangeSight     Range = "sight"
	Range5Feet     Range = "5 feet"
	Range10Feet    Range = "10 feet"
	Range30Feet    Range = "30 feet"
	Range60Feet    Range = "60 feet"
	Range90Feet    Range = "90 feet"
	Range100Feet   Range = "100 feet"
	Range120Feet   Range = "120 feet"
	Range150Feet   Range = "150 feet"
	Range300Feet   Range = "300 feet"
	Range500Feet   Range = "500 feet"
	Range1Mile     Range = "1 mile"
	Range500Miles  Range = "500 miles"
	RangeSpecial   Range = "special"
	RangeUnlimited Range = "unlimited"
)

// AreaShape is the shape of a spell's area of effect
type AreaShape string

// AreaShape constants
const (
	AreaShapeCone     AreaShape = "cone"
	AreaShapeCube     AreaShape = "cube"
	AreaShapeCylinder AreaShape = "cylinder"
	AreaShapeLine     AreaShape = "line"
	AreaShapeSphere   AreaShape = "sphere"
)

// AreaUnit is the unit an area size is measured in
type AreaUnit string

// AreaUnit constants
const (
	AreaUnitFeet  AreaUnit = "feet"
	AreaUnitMiles AreaUnit = "miles"
)

// AttackType is the kind of spell attack roll a spell makes
type AttackType string

// AttackType constants
const (
	AttackTypeMelee  AttackType = "melee"
	AttackTypeRanged AttackType = "ranged"
)

// Ability is an ability score, used for saving throws
type Ability string

// Ability constants
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// DamageType is a type of damage a spell can deal
type DamageType string

// DamageType constants
const (
	DamageTypeAcid        DamageType = "acid"
	DamageTypeBludgeoning DamageType = "bludgeoning"
	DamageTypeCold        DamageType = "cold"
	DamageTypeFire        DamageType = "fire"
	DamageTypeForce       DamageType = "force"
	DamageTypeLightning   DamageType = "lightning"
	DamageTypeNecrotic    DamageType = "necrotic"
	DamageTypePiercing    DamageType = "piercing"
	DamageTypePoison      DamageType = "poison"
	DamageTypePsychic     DamageType = "psychic"
	DamageTypeRadiant     DamageType = "radiant"
	DamageTypeSlashing    DamageType = "slashing"
	DamageTypeThunder     DamageType = "thunder"
)

// Class is a spellcasting class that has access to a spell
type Class string

// Class constants
const (
	ClassBard     Class = "bard"
	ClassCleric   Class = "cleric"
	ClassDruid    Class = "druid"
	ClassPaladin  Class = "paladin"
	ClassRanger   Class = "ranger"
	ClassSorcerer Class = "sorcerer"
	ClassWarlock  Class = "warlock"
	ClassWizard   Class = "wizard"
)

// Condition is a condition a spell can impose
type Condition string

// Condition constants
const (
	ConditionBlinded       Condition = "blinded"
	ConditionCharmed       Condition = "charmed"
	ConditionDeafened      Condition = "deafened"
	ConditionExhaustion    Condition = "exhaustion"
	ConditionFrightened    Condition = "frightened"
	ConditionGrappled      Condition = "grappled"
	ConditionIncapacitated Condition = "incapacitated"
	ConditionInvisible     Condition = "invisible"
	ConditionParalyzed     Condition = "paralyzed"
	ConditionPetrified     Condition = "petrified"
	ConditionPoisoned      Condition = "poisoned"
	ConditionProne         Condition = "prone"
	ConditionRestrained    Condition = "restrained"
	ConditionStunned       Condition = "stunned"
	ConditionUnconscious   Condition = "unconscious"
)

// Vocabularies accepted by the record validator.
var (
	Schools = []School{
		SchoolAbjuration, SchoolConjuration, SchoolDivination, SchoolEnchantment,
		SchoolEvocation, SchoolIllusion, SchoolNecromancy, SchoolTransmutation,
	}

	CastingTimes = []CastingTime{
		CastingTimeReaction, CastingTimeBonusAction, CastingTimeAction,
		CastingTime1Minute, CastingTime10Minutes, CastingTime1Hour,
		CastingTime8Hours, CastingTime12Hours, CastingTime24Hours,
	}

	Durations = []Duration{
		DurationInstantaneous, Duration1Round, Duration1Minute, Duration10Minutes,
		Duration1Hour, Duration2Hours, Duration8Hours, Duration12Hours,
		Duration24Hours, Duration1Day, Duration7Days, Duration10Days,
		Duration30Days, DurationSpecial, DurationUntilDispelled,
	}

	Ranges = []Range{
		RangeSelf, RangeTouch, RangeSight, Range5Feet, Range10Feet, Range30Feet,
		Range60Feet, Range90Feet, Range100Feet, Range120Feet, Range150Feet,
		Range300Feet, Range500Feet, Range1Mile, Range500Miles, RangeSpecial,
		RangeUnlimited,
	}

	AreaShapes = []AreaShape{
		AreaShapeCone, AreaShapeCube, AreaShapeCylinder, AreaShapeLine, AreaShapeSphere,
	}

	AreaUnits = []AreaUnit{AreaUnitFeet, AreaUnitMiles}

	AttackTypes = []AttackType{AttackTypeMelee, AttackTypeRanged}

	Abilities = []Ability{
		AbilityStrength, AbilityDexterity, AbilityConstitution,
		AbilityIntelligence, AbilityWisdom, AbilityCharisma,
	}

	DamageTypes = []DamageType{
		DamageTypeAcid, DamageTypeBludgeoning, DamageTypeCold, DamageTypeFire,
		DamageTypeForce, DamageTypeLightning, DamageTypeNecrotic, DamageTypePiercing,
		DamageTypePoison, DamageTypePsychic, DamageTypeRadiant, DamageTypeSlashing,
		DamageTypeThunder,
	}

	Classes = []Class{
		ClassBard, ClassCleric, ClassDruid, ClassPaladin,
		ClassRanger, ClassSorcerer, ClassWarlock, ClassWizard,
	}

	Conditions = []Condition{
		ConditionBlinded, ConditionCharmed, ConditionDeafened, ConditionExhaustion,
		ConditionFrightened, ConditionGrappled, ConditionIncapacitated, ConditionInvisible,
		ConditionParalyzed, ConditionPetrified, ConditionPoisoned, ConditionProne,
		ConditionRestrained, ConditionStunned, ConditionUnconscious,
	}
)

// MaxSpellLevel is the highest spell level; level 0 is a cantrip.
const MaxSpellLevel = 9
