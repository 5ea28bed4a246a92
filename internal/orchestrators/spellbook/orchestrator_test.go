package spellbook_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/spellbook-api/internal/catalog"
	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/orchestrators/spellbook"
	"github.com/KirkDiggler/spellbook-api/internal/services/catalogloader"
	catalogloadermock "github.com/KirkDiggler/spellbook-api/internal/services/catalogloader/mock"
	"github.com/KirkDiggler/spellbook-api/internal/testutils"
	"github.com/KirkDiggler/spellbook-api/internal/testutils/builders"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockLoader *catalogloadermock.MockLoader
	service    spellbook.Service
	ctx        context.Context
	loadedAt   time.Time
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLoader = catalogloadermock.NewMockLoader(s.ctrl)
	s.ctx = context.Background()
	s.loadedAt = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	service, err := spellbook.NewOrchestrator(&spellbook.Config{Loader: s.mockLoader})
	s.Require().NoError(err)
	s.service = service
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) loadOutput(version string, spells []*dnd5e.Spell) *catalogloader.LoadOutput {
	return &catalogloader.LoadOutput{
		Index:    catalog.New(spells),
		Version:  version,
		LoadedAt: s.loadedAt,
	}
}

func (s *OrchestratorTestSuite) reloadFixture() {
	s.mockLoader.EXPECT().
		Load(gomock.Any(), &catalogloader.LoadInput{}).
		Return(s.loadOutput("catalog_1", testutils.CreateTestSpellCatalog()), nil)

	_, err := s.service.Reload(s.ctx, &spellbook.ReloadInput{})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	_, err := spellbook.NewOrchestrator(nil)
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = spellbook.NewOrchestrator(&spellbook.Config{})
	s.Error(err)
	s.Contains(err.Error(), "Loader")
}

func (s *OrchestratorTestSuite) TestBeforeFirstLoad() {
	_, err := s.service.GetSpell(s.ctx, &spellbook.GetSpellInput{Name: testutils.SpellFireball})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.service.ListSpells(s.ctx, &spellbook.ListSpellsInput{})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.service.QuerySpells(s.ctx, &spellbook.QuerySpellsInput{})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.service.Stats(s.ctx, &spellbook.StatsInput{})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestGetSpell() {
	s.reloadFixture()

	testCases := []struct {
		name     string
		input    string
		found    bool
		wantName string
	}{
		{name: "exact name", input: "Fireball", found: true, wantName: testutils.SpellFireball},
		{name: "case insensitive", input: "wALL oF fIRE", found: true, wantName: testutils.SpellWallOfFire},
		{name: "unknown", input: "Wish", found: false},
		{name: "empty name", input: "", found: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.service.GetSpell(s.ctx, &spellbook.GetSpellInput{Name: tc.input})
			if !tc.found {
				s.Error(err)
				s.True(errors.IsNotFound(err))
				s.Equal(tc.input, errors.GetMeta(err)["name"])
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.wantName, out.Spell.Name)
			s.Equal("catalog_1", out.Version)
		})
	}
}

func (s *OrchestratorTestSuite) TestGetSpellNilInput() {
	_, err := s.service.GetSpell(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListSpells() {
	s.reloadFixture()

	out, err := s.service.ListSpells(s.ctx, &spellbook.ListSpellsInput{})
	s.Require().NoError(err)
	s.Equal(testutils.SpellNames(testutils.CreateTestSpellCatalog()), testutils.SpellNames(out.Spells))
	s.Equal("catalog_1", out.Version)
}

func (s *OrchestratorTestSuite) TestQuerySpells() {
	s.reloadFixture()

	out, err := s.service.QuerySpells(s.ctx, &spellbook.QuerySpellsInput{
		Query: catalog.Query{
			Classes: []dnd5e.Class{dnd5e.ClassWizard},
			Levels:  []int{0},
		},
	})
	s.Require().NoError(err)
	s.Equal([]string{
		testutils.SpellFireBolt,
		testutils.SpellShockingGrasp,
		testutils.SpellMageHand,
	}, testutils.SpellNames(out.Spells))
}

func (s *OrchestratorTestSuite) TestQuerySpellsEmptyQueryReturnsAll() {
	s.reloadFixture()

	out, err := s.service.QuerySpells(s.ctx, &spellbook.QuerySpellsInput{})
	s.Require().NoError(err)
	s.Len(out.Spells, 17)
}

func (s *OrchestratorTestSuite) TestReload() {
	s.reloadFixture()

	replacement := []*dnd5e.Spell{builders.NewSpellBuilder("Magic Missile").Build()}
	s.mockLoader.EXPECT().
		Load(gomock.Any(), &catalogloader.LoadInput{SkipSnapshot: true}).
		Return(s.loadOutput("catalog_2", replacement), nil)

	out, err := s.service.Reload(s.ctx, &spellbook.ReloadInput{SkipSnapshot: true})
	s.Require().NoError(err)
	s.Equal("catalog_2", out.Version)
	s.Equal(1, out.Total)
	s.Equal(s.loadedAt, out.LoadedAt)

	_, err = s.service.GetSpell(s.ctx, &spellbook.GetSpellInput{Name: testutils.SpellFireball})
	s.True(errors.IsNotFound(err))

	got, err := s.service.GetSpell(s.ctx, &spellbook.GetSpellInput{Name: "magic missile"})
	s.Require().NoError(err)
	s.Equal("catalog_2", got.Version)
}

func (s *OrchestratorTestSuite) TestReloadFailureKeepsPreviousCatalog() {
	s.reloadFixture()

	s.mockLoader.EXPECT().
		Load(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("source offline"))

	_, err := s.service.Reload(s.ctx, &spellbook.ReloadInput{})
	s.Error(err)
	s.True(errors.IsUnavailable(err))

	out, err := s.service.ListSpells(s.ctx, &spellbook.ListSpellsInput{})
	s.Require().NoError(err)
	s.Len(out.Spells, 17)
	s.Equal("catalog_1", out.Version)
}

func (s *OrchestratorTestSuite) TestReloadNilInput() {
	s.mockLoader.EXPECT().
		Load(gomock.Any(), &catalogloader.LoadInput{}).
		Return(s.loadOutput("catalog_1", testutils.CreateTestSpellCatalog()), nil)

	out, err := s.service.Reload(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(17, out.Total)
}

func (s *OrchestratorTestSuite) TestStats() {
	s.reloadFixture()

	out, err := s.service.Stats(s.ctx, &spellbook.StatsInput{})
	s.Require().NoError(err)
	s.Equal("catalog_1", out.Version)
	s.Equal(s.loadedAt, out.LoadedAt)
	s.Equal(17, out.Stats.Total)
	s.Equal(5, out.Stats.Facets[catalog.FacetLevel]["0"])
	s.Equal(2, out.Stats.Facets[catalog.FacetRitual]["true"])
}

func (s *OrchestratorTestSuite) TestConcurrentReadsDuringReload() {
	s.reloadFixture()

	s.mockLoader.EXPECT().
		Load(gomock.Any(), gomock.Any()).
		Return(s.loadOutput("catalog_2", testutils.CreateTestSpellCatalog()), nil).
		Times(5)

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.service.Reload(s.ctx, &spellbook.ReloadInput{})
		}()
		go func() {
			defer wg.Done()
			out, err := s.service.ListSpells(s.ctx, &spellbook.ListSpellsInput{})
			if err == nil && len(out.Spells) != 17 {
				s.T().Errorf("saw partial catalog of %d spells", len(out.Spells))
			}
		}()
	}
	wg.Wait()
}
