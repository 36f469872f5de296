package factory_test

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-warband/internal/combatlog"
	"github.com/KirkDiggler/rpg-warband/internal/entities/warriors"
	"github.com/KirkDiggler/rpg-warband/internal/errors"
	"github.com/KirkDiggler/rpg-warband/internal/factory"
	"github.com/KirkDiggler/rpg-warband/internal/pkg/idgen"
)

type FactoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	lines   *bytes.Buffer
	factory *factory.WarriorFactory
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactoryTestSuite))
}

func (s *FactoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.lines = &bytes.Buffer{}

	var err error
	s.factory, err = factory.New(&factory.Config{
		Recorder:    combatlog.NewWriterRecorder(s.lines),
		IDGenerator: idgen.NewSequential("test"),
	})
	s.Require().NoError(err)
}

func (s *FactoryTestSuite) TestInstanceIsShared() {
	first := factory.Instance()
	second := factory.Instance()
	s.Assert().Same(first, second)

	var wg sync.WaitGroup
	seen := make([]*factory.WarriorFactory, 8)
	for i := range seen {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seen[i] = factory.Instance()
		}(i)
	}
	wg.Wait()

	for _, f := range seen {
		s.Assert().Same(first, f)
	}
}

func (s *FactoryTestSuite) TestInstanceBuildsEveryKind() {
	for _, kind := range warriors.Kinds() {
		w, err := factory.Instance().Create(kind)
		s.Require().NoError(err)
		s.Assert().Equal(kind, w.Kind())
		s.Assert().NotEmpty(w.GetID())
	}
}

func (s *FactoryTestSuite) TestNewValidation() {
	f, err := factory.New(nil)
	s.Assert().Nil(f)
	s.Assert().True(errors.IsInvalidArgument(err))

	f, err = factory.New(&factory.Config{})
	s.Assert().Nil(f)
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "IDGenerator: is required")
	s.Assert().Contains(err.Error(), "Recorder: is required")
}

func (s *FactoryTestSuite) TestCreateEachKind() {
	testCases := []struct {
		name   string
		create func() (warriors.Warrior, error)
		kind   warriors.Kind
		damage int
	}{
		{"swordsman", s.factory.CreateSwordsman, warriors.KindSwordsman, 120},
		{"archer", s.factory.CreateArcher, warriors.KindArcher, 80},
		{"crossbowman", s.factory.CreateCrossbowman, warriors.KindCrossbowman, 120},
		{"spearman", s.factory.CreateSpearman, warriors.KindSpearman, 100},
		{"knight", s.factory.CreateKnight, warriors.KindKnight, 140},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			w, err := tc.create()
			s.Require().NoError(err)
			s.Assert().Equal(tc.kind, w.Kind())
			s.Assert().NotNil(w.Weapon())
			s.Assert().Equal(tc.damage, w.Attack(s.ctx, w).Damage)
		})
	}
}

func (s *FactoryTestSuite) TestSwordsmanAttacksKnight() {
	army := make(map[warriors.Kind]warriors.Warrior)
	for _, kind := range warriors.Kinds() {
		w, err := s.factory.Create(kind)
		s.Require().NoError(err)
		army[kind] = w
	}

	entry := army[warriors.KindSwordsman].Attack(s.ctx, army[warriors.KindKnight])

	s.Assert().Equal("Swordsman attacks Knight. Damage: 120", entry.String())
	s.Assert().Equal("Swordsman attacks Knight. Damage: 120\n", s.lines.String())
}

func (s *FactoryTestSuite) TestFreshBuilderPerCall() {
	first, err := s.factory.CreateArcher()
	s.Require().NoError(err)
	second, err := s.factory.CreateArcher()
	s.Require().NoError(err)

	first.Attack(s.ctx, second)

	s.Assert().NotEqual(first.GetID(), second.GetID())
	s.Assert().Equal(39, first.(*warriors.Archer).Ammo())
	s.Assert().Equal(40, second.(*warriors.Archer).Ammo())
}

func (s *FactoryTestSuite) TestCreateUnknownKind() {
	w, err := s.factory.Create(warriors.Kind("wizard"))
	s.Assert().Nil(w)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *FactoryTestSuite) TestMuster() {
	army, err := s.factory.Muster(s.ctx, 3)
	s.Require().NoError(err)
	s.Require().Len(army, 15)

	kinds := warriors.Kinds()
	for i, w := range army {
		s.Assert().Equal(kinds[i%len(kinds)], w.Kind())
	}
	s.Assert().Equal("test_1", army[0].GetID())
	s.Assert().Equal("test_15", army[14].GetID())
}

func (s *FactoryTestSuite) TestMusterRejectsZeroRounds() {
	army, err := s.factory.Muster(s.ctx, 0)
	s.Assert().Nil(army)
	s.Assert().True(errors.IsInvalidArgument(err))
}
