package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/testutils"
	"github.com/KirkDiggler/spellbook-api/internal/testutils/builders"
)

type ValidateTestSuite struct {
	suite.Suite
}

func TestValidateTestSuite(t *testing.T) {
	suite.Run(t, new(ValidateTestSuite))
}

func (s *ValidateTestSuite) fields(err error) map[string][]string {
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok, "validation_errors meta missing")
	return fields
}

func (s *ValidateTestSuite) TestFixtureCatalogIsValid() {
	s.NoError(dnd5e.ValidateSpells(testutils.CreateTestSpellCatalog()))
}

func (s *ValidateTestSuite) TestValidateSpell() {
	testCases := []struct {
		name  string
		spell *dnd5e.Spell
		field string
	}{
		{name: "missing name", spell: builders.NewSpellBuilder("").Build(), field: "name"},
		{name: "level too high", spell: builders.NewSpellBuilder("Wish").WithLevel(10).Build(), field: "level"},
		{name: "negative level", spell: builders.NewSpellBuilder("Oops").WithLevel(-1).Build(), field: "level"},
		{name: "unknown school", spell: builders.NewSpellBuilder("Oops").WithSchool("chronurgy").Build(), field: "school"},
		{name: "unknown casting time", spell: builders.NewSpellBuilder("Oops").WithCastingTime("2 actions").Build(), field: "castingTime"},
		{name: "unknown duration", spell: builders.NewSpellBuilder("Oops").WithDuration("forever").Build(), field: "duration"},
		{name: "unknown range", spell: builders.NewSpellBuilder("Oops").WithRange("far").Build(), field: "range"},
		{name: "no classes", spell: builders.NewSpellBuilder("Oops").WithClasses().Build(), field: "classes"},
		{name: "unknown class", spell: builders.NewSpellBuilder("Oops").WithClasses("artificer").Build(), field: "classes"},
		{name: "unknown attack", spell: builders.NewSpellBuilder("Oops").WithAttack("thrown").Build(), field: "attack"},
		{name: "unknown save", spell: builders.NewSpellBuilder("Oops").WithSave("luck").Build(), field: "save"},
		{name: "unknown damage type", spell: builders.NewSpellBuilder("Oops").WithDamageTypes("holy").Build(), field: "damageType"},
		{name: "unknown condition", spell: builders.NewSpellBuilder("Oops").WithConditions("sleepy").Build(), field: "conditions"},
		{name: "area without size", spell: builders.NewSpellBuilder("Oops").WithArea(dnd5e.AreaShapeCube, 0).Build(), field: "area.size"},
		{name: "unknown area shape", spell: builders.NewSpellBuilder("Oops").WithArea("torus", 10).Build(), field: "area.shape"},
		{
			name:  "reaction trigger on an action spell",
			spell: builders.NewSpellBuilder("Oops").WithReactionTrigger("when hit").Build(),
			field: "reactionTrigger",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			fields := s.fields(dnd5e.ValidateSpell(tc.spell))
			s.Contains(fields, tc.field)
		})
	}
}

func (s *ValidateTestSuite) TestValidateSpellAcceptsMixedCaseTags() {
	spell := builders.NewSpellBuilder("Hold Person").
		WithClasses("Wizard", "BARD").
		WithConditions("Paralyzed").
		Build()

	s.NoError(dnd5e.ValidateSpell(spell))
}

func (s *ValidateTestSuite) TestValidateSpellNil() {
	fields := s.fields(dnd5e.ValidateSpell(nil))
	s.Contains(fields, "spell")
}

func (s *ValidateTestSuite) TestValidateSpellsEmpty() {
	fields := s.fields(dnd5e.ValidateSpells(nil))
	s.Equal([]string{"must contain at least one spell"}, fields["spells"])
}

func (s *ValidateTestSuite) TestValidateSpellsPrefixesPosition() {
	spells := []*dnd5e.Spell{
		builders.NewSpellBuilder("Magic Missile").Build(),
		builders.NewSpellBuilder("Oops").WithSchool("chronurgy").Build(),
	}

	fields := s.fields(dnd5e.ValidateSpells(spells))
	s.Contains(fields, "spells[1].school")
	s.Len(fields, 1)
}

func (s *ValidateTestSuite) TestValidateSpellsRejectsDuplicateKeys() {
	spells := []*dnd5e.Spell{
		builders.NewSpellBuilder("Fireball").Build(),
		builders.NewSpellBuilder("Magic Missile").Build(),
		builders.NewSpellBuilder("FIREBALL").Build(),
	}

	fields := s.fields(dnd5e.ValidateSpells(spells))
	s.Equal([]string{`duplicates spells[0] ("fireball")`}, fields["spells[2].name"])
}
