package catalog

import "strconv"

// Facet names reported by Stats.
const (
	FacetClass         = "class"
	FacetLevel         = "level"
	FacetSchool        = "school"
	FacetAttack        = "attack"
	FacetSave          = "save"
	FacetCastingTime   = "castingTime"
	FacetDamageType    = "damageType"
	FacetCondition     = "condition"
	FacetDuration      = "duration"
	FacetConcentration = "concentration"
	FacetRitual        = "ritual"
	FacetMaterial      = "material"
	FacetSomatic       = "somatic"
	FacetVerbal        = "verbal"
)

// Stats summarises an index: the total size and, per facet, how many spells
// carry each value. Boolean facets report the count under "true".
type Stats struct {
	Total  int
	Facets map[string]map[string]int
}

// Stats computes per-facet value counts.
func (idx *Index) Stats() Stats {
	stats := Stats{
		Total:  len(idx.keys),
		Facets: make(map[string]map[string]int),
	}

	stats.Facets[FacetClass] = countStrings(idx.byClass)
	stats.Facets[FacetSchool] = countStrings(idx.bySchool)
	stats.Facets[FacetAttack] = countStrings(idx.byAttack)
	stats.Facets[FacetSave] = countStrings(idx.bySave)
	stats.Facets[FacetCastingTime] = countStrings(idx.byCastingTime)
	stats.Facets[FacetDamageType] = countStrings(idx.byDamageType)
	stats.Facets[FacetCondition] = countStrings(idx.byCondition)
	stats.Facets[FacetDuration] = countStrings(idx.byDuration)

	levels := make(map[string]int, len(idx.byLevel))
	for level, keys := range idx.byLevel {
		levels[strconv.Itoa(level)] = len(keys)
	}
	stats.Facets[FacetLevel] = levels

	stats.Facets[FacetConcentration] = map[string]int{"true": len(idx.concentration)}
	stats.Facets[FacetRitual] = map[string]int{"true": len(idx.ritual)}
	stats.Facets[FacetMaterial] = map[string]int{"true": len(idx.material)}
	stats.Facets[FacetSomatic] = map[string]int{"true": len(idx.somatic)}
	stats.Facets[FacetVerbal] = map[string]int{"true": len(idx.verbal)}

	return stats
}

func countStrings[K ~string](index map[K][]string) map[string]int {
	counts := make(map[string]int, len(index))
	for value, keys := range index {
		counts[string(value)] = len(keys)
	}
	return counts
}
