package client

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook-api/internal/testutils/builders"
)

func TestFormatComponents(t *testing.T) {
	testCases := []struct {
		name       string
		components dnd5e.Components
		want       string
	}{
		{name: "none", components: dnd5e.Components{}, want: ""},
		{name: "verbal and somatic", components: dnd5e.Components{Verbal: true, Somatic: true}, want: "V, S"},
		{
			name:       "material with description",
			components: dnd5e.Components{Verbal: true, Material: dnd5e.Bool(true), MaterialDescription: "a pinch of salt"},
			want:       "V, M (a pinch of salt)",
		},
		{name: "explicit false material", components: dnd5e.Components{Somatic: true, Material: dnd5e.Bool(false)}, want: "S"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatComponents(tc.components))
		})
	}
}

func TestPrintSpell(t *testing.T) {
	spell := builders.NewSpellBuilder("Fire Bolt").
		WithLevel(0).
		WithClasses(dnd5e.ClassSorcerer, dnd5e.ClassWizard).
		WithAttack(dnd5e.AttackTypeRanged).
		WithDamageTypes(dnd5e.DamageTypeFire).
		Build()

	var buf bytes.Buffer
	printSpell(&buf, spell)

	out := buf.String()
	assert.Contains(t, out, "Fire Bolt")
	assert.Contains(t, out, "Level: 0 (cantrip)")
	assert.Contains(t, out, "Classes: sorcerer, wizard")
	assert.Contains(t, out, "Attack: ranged")
	assert.Contains(t, out, "Damage: fire")
	assert.NotContains(t, out, "Concentration")
}
