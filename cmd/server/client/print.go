package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
)

func printSpell(w io.Writer, spell *dnd5e.Spell) {
	fmt.Fprintf(w, "✨ %s\n", spell.Name)

	fmt.Fprintf(w, "   Level: %d", spell.Level)
	if spell.IsCantrip() {
		fmt.Fprint(w, " (cantrip)")
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "   School: %s\n", spell.School)
	fmt.Fprintf(w, "   Casting Time: %s\n", spell.CastingTime)
	fmt.Fprintf(w, "   Range: %s\n", spell.Range)
	if components := formatComponents(spell.Components); components != "" {
		fmt.Fprintf(w, "   Components: %s\n", components)
	}
	fmt.Fprintf(w, "   Duration: %s\n", spell.Duration)

	if len(spell.Classes) > 0 {
		fmt.Fprintf(w, "   Classes: %s\n", joinTags(spell.Classes))
	}
	if spell.Concentration {
		fmt.Fprintln(w, "   🧠 Concentration: Yes")
	}
	if spell.Ritual {
		fmt.Fprintln(w, "   📜 Ritual: Yes")
	}
	if spell.Attack != nil {
		fmt.Fprintf(w, "   Attack: %s\n", *spell.Attack)
	}
	if spell.Save != nil {
		fmt.Fprintf(w, "   Save: %s\n", *spell.Save)
	}
	if len(spell.DamageTypes) > 0 {
		fmt.Fprintf(w, "   💥 Damage: %s\n", joinTags(spell.DamageTypes))
	}
	if len(spell.Conditions) > 0 {
		fmt.Fprintf(w, "   Conditions: %s\n", joinTags(spell.Conditions))
	}
	if spell.Area != nil {
		fmt.Fprintf(w, "   🎯 Area of Effect: %s (%d %s)\n", spell.Area.Shape, spell.Area.Size, spell.Area.Unit)
	}
	if spell.ReactionTrigger != "" {
		fmt.Fprintf(w, "   Trigger: %s\n", spell.ReactionTrigger)
	}
	if len(spell.Description) > 0 {
		fmt.Fprintf(w, "   Description: %s\n", strings.Join(spell.Description, " "))
	}

	fmt.Fprintln(w)
}

// formatComponents renders components the way the rules text does, e.g.
// "V, S, M (a pinch of salt)".
func formatComponents(c dnd5e.Components) string {
	var parts []string
	if c.Verbal {
		parts = append(parts, "V")
	}
	if c.Somatic {
		parts = append(parts, "S")
	}
	if c.Material != nil && *c.Material {
		material := "M"
		if c.MaterialDescription != "" {
			material = fmt.Sprintf("M (%s)", c.MaterialDescription)
		}
		parts = append(parts, material)
	}
	return strings.Join(parts, ", ")
}

func joinTags[T ~string](tags []T) string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = string(tag)
	}
	return strings.Join(out, ", ")
}
