package external

import (
	"context"
	"testing"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	spellentities "github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
)

// mockDND5eClient is a mock implementation of the dnd5e.Interface for testing
type mockDND5eClient struct {
	mock.Mock
}

func (m *mockDND5eClient) ListRaces() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetRace(key string) (*entities.Race, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Race), args.Error(1)
}

func (m *mockDND5eClient) ListEquipment() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetEquipment(key string) (dnd5e.EquipmentInterface, error) {
	args := m.Called(key)
	return args.Get(0).(dnd5e.EquipmentInterface), args.Error(1)
}

func (m *mockDND5eClient) GetEquipmentCategory(key string) (*entities.EquipmentCategory, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.EquipmentCategory), args.Error(1)
}

func (m *mockDND5eClient) ListClasses() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetClass(key string) (*entities.Class, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Class), args.Error(1)
}

func (m *mockDND5eClient) ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetSpell(key string) (*entities.Spell, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Spell), args.Error(1)
}

func (m *mockDND5eClient) ListFeatures() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetFeature(key string) (*entities.Feature, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Feature), args.Error(1)
}

func (m *mockDND5eClient) ListSkills() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetSkill(key string) (*entities.Skill, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Skill), args.Error(1)
}

func (m *mockDND5eClient) ListMonsters() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) ListMonstersWithFilter(input *dnd5e.ListMonstersInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetMonster(key string) (*entities.Monster, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Monster), args.Error(1)
}

func (m *mockDND5eClient) GetClassLevel(key string, level int) (*entities.Level, error) {
	args := m.Called(key, level)
	return args.Get(0).(*entities.Level), args.Error(1)
}

func (m *mockDND5eClient) GetProficiency(key string) (*entities.Proficiency, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Proficiency), args.Error(1)
}

func (m *mockDND5eClient) ListDamageTypes() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetDamageType(key string) (*entities.DamageType, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.DamageType), args.Error(1)
}

func (m *mockDND5eClient) ListBackgrounds() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetBackground(key string) (*entities.Background, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Background), args.Error(1)
}

// alloc points *p at a fresh zero value and returns it. It fills nested
// API entity pointers without naming their types.
func alloc[T any](p **T) *T {
	*p = new(T)
	return *p
}

func newAPISpell(key, name string, level int, school string, classes ...string) *entities.Spell {
	spell := &entities.Spell{
		Key:         key,
		Name:        name,
		SpellLevel:  level,
		CastingTime: "1 action",
		Range:       "150 feet",
		Duration:    "Instantaneous",
	}
	alloc(&spell.SpellSchool).Name = school
	spell.SpellClasses = make([]*entities.ReferenceItem, len(classes))
	for i, class := range classes {
		spell.SpellClasses[i] = &entities.ReferenceItem{Key: class, Name: class}
	}
	return spell
}

func TestConvertSpell(t *testing.T) {
	t.Run("fireball", func(t *testing.T) {
		api := newAPISpell("fireball", "Fireball", 3, "Evocation", "Sorcerer", "Wizard")
		alloc(&alloc(&api.SpellDamage).SpellDamageType).Name = "Fire"
		dc := alloc(&api.DC)
		alloc(&dc.DCType).Name = "DEX"
		aoe := alloc(&api.AreaOfEffect)
		aoe.Type = "sphere"
		aoe.Size = 20

		spell := convertSpell(api)

		require.NotNil(t, spell)
		assert.Equal(t, "Fireball", spell.Name)
		assert.Equal(t, 3, spell.Level)
		assert.Equal(t, spellentities.SchoolEvocation, spell.School)
		assert.Equal(t, spellentities.CastingTimeAction, spell.CastingTime)
		assert.Equal(t, spellentities.DurationInstantaneous, spell.Duration)
		assert.Equal(t, spellentities.Range150Feet, spell.Range)
		assert.Equal(t, []spellentities.Class{spellentities.ClassSorcerer, spellentities.ClassWizard}, spell.Classes)
		assert.Equal(t, []spellentities.DamageType{spellentities.DamageTypeFire}, spell.DamageTypes)
		require.NotNil(t, spell.Save)
		assert.Equal(t, spellentities.AbilityDexterity, *spell.Save)
		require.NotNil(t, spell.Area)
		assert.Equal(t, spellentities.AreaShapeSphere, spell.Area.Shape)
		assert.Equal(t, 20, spell.Area.Size)
		assert.Nil(t, spell.Components.Material)
		assert.NoError(t, spellentities.ValidateSpell(spell))
	})

	t.Run("concentration duration drops the up to prefix", func(t *testing.T) {
		api := newAPISpell("bless", "Bless", 1, "Enchantment", "Cleric")
		api.Duration = "Up to 1 minute"
		api.Concentration = true
		api.CastingTime = "1 bonus action"

		spell := convertSpell(api)

		assert.Equal(t, spellentities.Duration1Minute, spell.Duration)
		assert.Equal(t, spellentities.CastingTimeBonusAction, spell.CastingTime)
		assert.True(t, spell.Concentration)
	})

	t.Run("nil spell", func(t *testing.T) {
		assert.Nil(t, convertSpell(nil))
	})
}

func TestListSpells(t *testing.T) {
	t.Run("keeps listing order and skips unconvertible spells", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		client := &Client{dnd5eClient: mockClient, concurrency: 2}

		refs := []*entities.ReferenceItem{
			{Key: "acid-splash", Name: "Acid Splash"},
			{Key: "fireball", Name: "Fireball"},
			{Key: "odd-spell", Name: "Odd Spell"},
			{Key: "wish", Name: "Wish"},
		}
		odd := newAPISpell("odd-spell", "Odd Spell", 2, "Evocation", "Wizard")
		odd.CastingTime = "1 action, which you take when something odd happens"

		mockClient.On("ListSpells", (*dnd5e.ListSpellsInput)(nil)).Return(refs, nil)
		mockClient.On("GetSpell", "acid-splash").Return(newAPISpell("acid-splash", "Acid Splash", 0, "Conjuration", "Sorcerer", "Wizard"), nil)
		mockClient.On("GetSpell", "fireball").Return(newAPISpell("fireball", "Fireball", 3, "Evocation", "Wizard"), nil)
		mockClient.On("GetSpell", "odd-spell").Return(odd, nil)
		mockClient.On("GetSpell", "wish").Return(newAPISpell("wish", "Wish", 9, "Conjuration", "Wizard"), nil)

		result, err := client.ListSpells(context.Background())

		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, "Acid Splash", result[0].Name)
		assert.Equal(t, "Fireball", result[1].Name)
		assert.Equal(t, "Wish", result[2].Name)
		mockClient.AssertExpectations(t)
	})

	t.Run("list failure is unavailable", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		client := &Client{dnd5eClient: mockClient, concurrency: 2}

		mockClient.On("ListSpells", (*dnd5e.ListSpellsInput)(nil)).
			Return(([]*entities.ReferenceItem)(nil), assert.AnError)

		_, err := client.ListSpells(context.Background())

		assert.Error(t, err)
		assert.True(t, errors.IsUnavailable(err))
	})

	t.Run("detail failure fails the load", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		client := &Client{dnd5eClient: mockClient, concurrency: 1}

		refs := []*entities.ReferenceItem{{Key: "fireball", Name: "Fireball"}}
		mockClient.On("ListSpells", (*dnd5e.ListSpellsInput)(nil)).Return(refs, nil)
		mockClient.On("GetSpell", "fireball").Return((*entities.Spell)(nil), assert.AnError)

		_, err := client.ListSpells(context.Background())

		assert.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.Equal(t, defaultConcurrency, cfg.Concurrency)

	err := (&Config{Concurrency: -1}).Validate()
	assert.True(t, errors.IsInvalidArgument(err))
}
