package catalogloader_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/pkg/clock"
	"github.com/KirkDiggler/spellbook-api/internal/pkg/idgen"
	spellsmock "github.com/KirkDiggler/spellbook-api/internal/repositories/spells/mock"
	"github.com/KirkDiggler/spellbook-api/internal/services/catalogloader"
	"github.com/KirkDiggler/spellbook-api/internal/testutils"
	"github.com/KirkDiggler/spellbook-api/internal/testutils/builders"
)

const testSource = "seed"

type LoaderTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockSource   *spellsmock.MockSource
	mockSnapshot *spellsmock.MockSnapshot
	clock        *clock.Fixed
	loader       catalogloader.Loader
	ctx          context.Context
	catalog      []*dnd5e.Spell
}

func (s *LoaderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSource = spellsmock.NewMockSource(s.ctrl)
	s.mockSnapshot = spellsmock.NewMockSnapshot(s.ctrl)
	s.clock = clock.NewFixed(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()
	s.catalog = testutils.CreateTestSpellCatalog()

	loader, err := catalogloader.New(&catalogloader.Config{
		Source:      s.mockSource,
		SourceName:  testSource,
		Snapshot:    s.mockSnapshot,
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("catalog"),
	})
	s.Require().NoError(err)
	s.loader = loader
}

func (s *LoaderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) TestNew() {
	testCases := []struct {
		name   string
		config *catalogloader.Config
		field  string
	}{
		{name: "nil config", config: nil},
		{
			name:   "missing source",
			config: &catalogloader.Config{SourceName: testSource, Clock: s.clock, IDGenerator: idgen.NewUUID("")},
			field:  "Source",
		},
		{
			name:   "missing source name",
			config: &catalogloader.Config{Source: s.mockSource, Clock: s.clock, IDGenerator: idgen.NewUUID("")},
			field:  "SourceName",
		},
		{
			name:   "missing clock",
			config: &catalogloader.Config{Source: s.mockSource, SourceName: testSource, IDGenerator: idgen.NewUUID("")},
			field:  "Clock",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			loader, err := catalogloader.New(tc.config)
			s.Error(err)
			s.Nil(loader)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *LoaderTestSuite) TestLoadFromSource() {
	s.mockSnapshot.EXPECT().Get(s.ctx, testSource).Return(nil, errors.NotFound("no snapshot"))
	s.mockSource.EXPECT().ListSpells(s.ctx).Return(s.catalog, nil)
	s.mockSnapshot.EXPECT().Put(s.ctx, testSource, s.catalog).Return(nil)

	out, err := s.loader.Load(s.ctx, nil)

	s.Require().NoError(err)
	s.False(out.FromSnapshot)
	s.Equal("catalog_1", out.Version)
	s.Equal(s.clock.Now(), out.LoadedAt)
	s.Equal(len(s.catalog), out.Index.Len())
	s.Equal(testutils.SpellNames(s.catalog), testutils.SpellNames(out.Index.List()))
}

func (s *LoaderTestSuite) TestLoadFromSnapshot() {
	s.mockSnapshot.EXPECT().Get(s.ctx, testSource).Return(s.catalog[:4], nil)

	out, err := s.loader.Load(s.ctx, &catalogloader.LoadInput{})

	s.Require().NoError(err)
	s.True(out.FromSnapshot)
	s.Equal(4, out.Index.Len())
}

func (s *LoaderTestSuite) TestSkipSnapshot() {
	s.mockSource.EXPECT().ListSpells(s.ctx).Return(s.catalog, nil)
	s.mockSnapshot.EXPECT().Put(s.ctx, testSource, s.catalog).Return(nil)

	out, err := s.loader.Load(s.ctx, &catalogloader.LoadInput{SkipSnapshot: true})

	s.Require().NoError(err)
	s.False(out.FromSnapshot)
}

func (s *LoaderTestSuite) TestSnapshotFailuresFallBackToSource() {
	testCases := []struct {
		name     string
		snapshot []*dnd5e.Spell
		err      error
	}{
		{name: "redis unavailable", err: errors.Unavailable("connection refused")},
		{name: "invalid snapshot", snapshot: []*dnd5e.Spell{builders.NewSpellBuilder("Oops").WithLevel(12).Build()}},
		{name: "empty snapshot", snapshot: []*dnd5e.Spell{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockSnapshot.EXPECT().Get(s.ctx, testSource).Return(tc.snapshot, tc.err)
			s.mockSource.EXPECT().ListSpells(s.ctx).Return(s.catalog, nil)
			s.mockSnapshot.EXPECT().Put(s.ctx, testSource, s.catalog).Return(nil)

			out, err := s.loader.Load(s.ctx, nil)

			s.Require().NoError(err)
			s.False(out.FromSnapshot)
			s.Equal(len(s.catalog), out.Index.Len())
		})
	}
}

func (s *LoaderTestSuite) TestSnapshotPutFailureIsNotFatal() {
	s.mockSnapshot.EXPECT().Get(s.ctx, testSource).Return(nil, errors.NotFound("no snapshot"))
	s.mockSource.EXPECT().ListSpells(s.ctx).Return(s.catalog, nil)
	s.mockSnapshot.EXPECT().Put(s.ctx, testSource, s.catalog).Return(errors.Unavailable("redis down"))

	out, err := s.loader.Load(s.ctx, nil)

	s.Require().NoError(err)
	s.Equal(len(s.catalog), out.Index.Len())
}

func (s *LoaderTestSuite) TestSourceFailure() {
	s.mockSnapshot.EXPECT().Get(s.ctx, testSource).Return(nil, errors.NotFound("no snapshot"))
	s.mockSource.EXPECT().ListSpells(s.ctx).Return(nil, errors.Unavailable("upstream down"))

	out, err := s.loader.Load(s.ctx, nil)

	s.Error(err)
	s.Nil(out)
	s.True(errors.IsUnavailable(err))
}

func (s *LoaderTestSuite) TestInvalidSourceIsRejected() {
	invalid := append([]*dnd5e.Spell{}, s.catalog...)
	invalid = append(invalid, builders.NewSpellBuilder("FIREBALL").Build())

	s.mockSnapshot.EXPECT().Get(s.ctx, testSource).Return(nil, errors.NotFound("no snapshot"))
	s.mockSource.EXPECT().ListSpells(s.ctx).Return(invalid, nil)

	out, err := s.loader.Load(s.ctx, nil)

	s.Error(err)
	s.Nil(out)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "duplicates")
}

func (s *LoaderTestSuite) TestLoadWithoutSnapshot() {
	loader, err := catalogloader.New(&catalogloader.Config{
		Source:      s.mockSource,
		SourceName:  testSource,
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("catalog"),
	})
	s.Require().NoError(err)

	s.mockSource.EXPECT().ListSpells(s.ctx).Return(s.catalog, nil).Times(2)

	first, err := loader.Load(s.ctx, nil)
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	second, err := loader.Load(s.ctx, nil)
	s.Require().NoError(err)

	s.Equal("catalog_1", first.Version)
	s.Equal("catalog_2", second.Version)
	s.Equal(time.Minute, second.LoadedAt.Sub(first.LoadedAt))
}
