package catalog

import (
	"strings"

	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
)

// Index is an immutable, multi-facet index over a spell catalog.
type Index struct {
	spells map[string]*dnd5e.Spell
	keys   []string

	byClass       map[dnd5e.Class][]string
	byLevel       map[int][]string
	bySchool      map[dnd5e.School][]string
	byAttack      map[dnd5e.AttackType][]string
	bySave        map[dnd5e.Ability][]string
	byCastingTime map[dnd5e.CastingTime][]string
	byDamageType  map[dnd5e.DamageType][]string
	byCondition   map[dnd5e.Condition][]string
	byDuration    map[dnd5e.Duration][]string

	concentration []string
	ritual        []string
	material      []string
	somatic       []string
	verbal        []string
}

// New builds an Index from spells in a single pass. The slice order is the
// ingestion order every result is reported in. Nil entries are skipped.
func New(spells []*dnd5e.Spell) *Index {
	idx := &Index{
		spells:        make(map[string]*dnd5e.Spell, len(spells)),
		keys:          make([]string, 0, len(spells)),
		byClass:       make(map[dnd5e.Class][]string),
		byLevel:       make(map[int][]string),
		bySchool:      make(map[dnd5e.School][]string),
		byAttack:      make(map[dnd5e.AttackType][]string),
		bySave:        make(map[dnd5e.Ability][]string),
		byCastingTime: make(map[dnd5e.CastingTime][]string),
		byDamageType:  make(map[dnd5e.DamageType][]string),
		byCondition:   make(map[dnd5e.Condition][]string),
		byDuration:    make(map[dnd5e.Duration][]string),
	}

	for _, spell := range spells {
		if spell != nil {
			idx.add(spell)
		}
	}

	return idx
}

func (idx *Index) add(spell *dnd5e.Spell) {
	key := spell.Key()
	if _, exists := idx.spells[key]; !exists {
		idx.keys = append(idx.keys, key)
	}
	idx.spells[key] = spell

	for _, class := range spell.Classes {
		c := normalizeClass(class)
		idx.byClass[c] = append(idx.byClass[c], key)
	}

	idx.byLevel[spell.Level] = append(idx.byLevel[spell.Level], key)
	idx.bySchool[spell.School] = append(idx.bySchool[spell.School], key)

	if spell.Attack != nil {
		idx.byAttack[*spell.Attack] = append(idx.byAttack[*spell.Attack], key)
	}
	if spell.Save != nil {
		idx.bySave[*spell.Save] = append(idx.bySave[*spell.Save], key)
	}

	if spell.Concentration {
		idx.concentration = append(idx.concentration, key)
	}
	if spell.Ritual {
		idx.ritual = append(idx.ritual, key)
	}

	// Material is indexed on presence, not on its value: an explicit false
	// still counts as "has a material entry".
	if spell.Components.Material != nil {
		idx.material = append(idx.material, key)
	}
	if spell.Components.Somatic {
		idx.somatic = append(idx.somatic, key)
	}
	if spell.Components.Verbal {
		idx.verbal = append(idx.verbal, key)
	}

	for _, damageType := range spell.DamageTypes {
		idx.byDamageType[damageType] = append(idx.byDamageType[damageType], key)
	}
	for _, condition := range spell.Conditions {
		c := normalizeCondition(condition)
		idx.byCondition[c] = append(idx.byCondition[c], key)
	}

	idx.byDuration[spell.Duration] = append(idx.byDuration[spell.Duration], key)
	idx.byCastingTime[spell.CastingTime] = append(idx.byCastingTime[spell.CastingTime], key)
}

// Get returns the spell whose name matches name case-insensitively.
// The boolean is false when no such spell exists.
func (idx *Index) Get(name string) (*dnd5e.Spell, bool) {
	spell, ok := idx.spells[dnd5e.SpellKey(name)]
	return spell, ok
}

// List returns every spell in ingestion order.
func (idx *Index) List() []*dnd5e.Spell {
	return idx.resolve(idx.keys)
}

// Len returns the number of spells in the index.
func (idx *Index) Len() int {
	return len(idx.keys)
}

func (idx *Index) resolve(keys []string) []*dnd5e.Spell {
	result := make([]*dnd5e.Spell, 0, len(keys))
	for _, key := range keys {
		if spell, ok := idx.spells[key]; ok {
			result = append(result, spell)
		}
	}
	return result
}

func normalizeClass(class dnd5e.Class) dnd5e.Class {
	return dnd5e.Class(strings.ToLower(string(class)))
}

func normalizeCondition(condition dnd5e.Condition) dnd5e.Condition {
	return dnd5e.Condition(strings.ToLower(string(condition)))
}
