package catalog

import (
	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
)

// Query is a bundle of independently optional facet filters. A nil or empty
// slice and a nil pointer all mean "no constraint" for that facet.
type Query struct {
	Classes       []dnd5e.Class
	Levels        []int
	Schools       []dnd5e.School
	AttackTypes   []dnd5e.AttackType
	SaveTypes     []dnd5e.Ability
	Concentration *bool
	Ritual        *bool
	CastingTimes  []dnd5e.CastingTime
	// Name is split on whitespace; every token must appear in the spell's
	// identity key, in the given order.
	Name        string
	Components  *ComponentsQuery
	DamageTypes []dnd5e.DamageType
	Conditions  []dnd5e.Condition
	Durations   []dnd5e.Duration
}

// ComponentsQuery filters on spell components. Material matches on the
// presence of a material entry rather than its value.
type ComponentsQuery struct {
	Material *bool
	Somatic  *bool
	Verbal   *bool
}

// IsEmpty reports whether the query places no constraint at all.
func (q *Query) IsEmpty() bool {
	if q == nil {
		return true
	}
	components := q.Components == nil ||
		(q.Components.Material == nil && q.Components.Somatic == nil && q.Components.Verbal == nil)

	return len(q.Classes) == 0 &&
		len(q.Levels) == 0 &&
		len(q.Schools) == 0 &&
		len(q.AttackTypes) == 0 &&
		len(q.SaveTypes) == 0 &&
		q.Concentration == nil &&
		q.Ritual == nil &&
		len(q.CastingTimes) == 0 &&
		len(newNameMatcher(q.Name)) == 0 &&
		components &&
		len(q.DamageTypes) == 0 &&
		len(q.Conditions) == 0 &&
		len(q.Durations) == 0
}

// Query returns the spells matching every constraint in q, in ingestion
// order. It never fails: contradictory constraints yield an empty slice.
func (idx *Index) Query(q Query) []*dnd5e.Spell {
	working := make([]string, len(idx.keys))
	copy(working, idx.keys)

	if len(q.Classes) > 0 {
		classes := make([]dnd5e.Class, len(q.Classes))
		for i, class := range q.Classes {
			classes[i] = normalizeClass(class)
		}
		working = intersect(working, union(idx.byClass, classes))
	}
	if len(q.Levels) > 0 {
		working = intersect(working, union(idx.byLevel, q.Levels))
	}
	if len(q.Schools) > 0 {
		working = intersect(working, union(idx.bySchool, q.Schools))
	}
	if len(q.AttackTypes) > 0 {
		working = intersect(working, union(idx.byAttack, q.AttackTypes))
	}
	if len(q.SaveTypes) > 0 {
		working = intersect(working, union(idx.bySave, q.SaveTypes))
	}
	if q.Concentration != nil {
		working = flag(working, idx.concentration, *q.Concentration)
	}
	if q.Ritual != nil {
		working = flag(working, idx.ritual, *q.Ritual)
	}
	if len(q.CastingTimes) > 0 {
		working = intersect(working, union(idx.byCastingTime, q.CastingTimes))
	}
	if matcher := newNameMatcher(q.Name); len(matcher) > 0 {
		working = filter(working, matcher.matches)
	}
	if c := q.Components; c != nil {
		if c.Material != nil {
			working = flag(working, idx.material, *c.Material)
		}
		if c.Somatic != nil {
			working = flag(working, idx.somatic, *c.Somatic)
		}
		if c.Verbal != nil {
			working = flag(working, idx.verbal, *c.Verbal)
		}
	}
	if len(q.DamageTypes) > 0 {
		working = intersect(working, union(idx.byDamageType, q.DamageTypes))
	}
	if len(q.Conditions) > 0 {
		conditions := make([]dnd5e.Condition, len(q.Conditions))
		for i, condition := range q.Conditions {
			conditions[i] = normalizeCondition(condition)
		}
		working = intersect(working, union(idx.byCondition, conditions))
	}
	if len(q.Durations) > 0 {
		working = intersect(working, union(idx.byDuration, q.Durations))
	}

	return idx.resolve(working)
}

// union collects the keys indexed under any of values into a set.
func union[K comparable](index map[K][]string, values []K) map[string]struct{} {
	set := make(map[string]struct{})
	for _, value := range values {
		for _, key := range index[value] {
			set[key] = struct{}{}
		}
	}
	return set
}

// intersect keeps the working keys present in set, preserving working order.
func intersect(working []string, set map[string]struct{}) []string {
	return filter(working, func(key string) bool {
		_, ok := set[key]
		return ok
	})
}

// flag keeps working keys that are members of list when want is true, and
// non-members when want is false.
func flag(working, list []string, want bool) []string {
	members := make(map[string]struct{}, len(list))
	for _, key := range list {
		members[key] = struct{}{}
	}
	return filter(working, func(key string) bool {
		_, ok := members[key]
		return ok == want
	})
}

// filter narrows working in place.
func filter(working []string, keep func(string) bool) []string {
	out := working[:0]
	for _, key := range working {
		if keep(key) {
			out = append(out, key)
		}
	}
	return out
}
