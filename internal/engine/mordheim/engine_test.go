package mordheim_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/skirmishforge/warband-api/internal/catalog"
	"github.com/skirmishforge/warband-api/internal/engine"
	"github.com/skirmishforge/warband-api/internal/engine/mordheim"
	"github.com/skirmishforge/warband-api/internal/entities"
	"github.com/skirmishforge/warband-api/internal/errors"
	"github.com/skirmishforge/warband-api/internal/pkg/clock"
	"github.com/skirmishforge/warband-api/internal/testutils"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type EngineTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	warband *catalog.WarbandTemplate
	engine  engine.Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.catalog = testutils.FixtureCatalog(s.T())
	s.warband = s.catalog.GetWarband(testutils.FixtureWarbandID)
	s.Require().NotNil(s.warband)

	eng, err := mordheim.New(&mordheim.Config{
		Catalog: s.catalog,
		Clock:   clock.NewFixed(fixedNow),
	})
	s.Require().NoError(err)
	s.engine = eng
}

func (s *EngineTestSuite) newHero() *entities.Warrior {
	out, err := s.engine.NewWarrior(&engine.NewWarriorInput{
		WarriorID:    "w_1",
		Warband:      s.warband,
		TemplateType: testutils.FixtureHeroType,
		IsHero:       true,
	})
	s.Require().NoError(err)
	return out.Warrior
}

func (s *EngineTestSuite) newHenchman() *entities.Warrior {
	out, err := s.engine.NewWarrior(&engine.NewWarriorInput{
		WarriorID:    "w_2",
		Warband:      s.warband,
		TemplateType: testutils.FixtureHenchType,
		IsHero:       false,
	})
	s.Require().NoError(err)
	return out.Warrior
}

func (s *EngineTestSuite) TestNewWarriorHero() {
	hero := s.newHero()

	s.Equal("w_1", hero.ID)
	s.Equal("Champion", hero.TypeName)
	s.Equal("Champion", hero.Name)
	s.True(hero.IsHero)
	s.Equal(testutils.FixtureHeroCost, hero.Cost)
	s.Equal(0, hero.Experience)
	s.Equal(0, hero.AdvancementCount)
	s.False(hero.MissNextGame)
	s.Empty(hero.Equipment)
	s.Empty(hero.Skills)
	s.Empty(hero.Spells)
	s.Empty(hero.Injuries)
	s.Zero(hero.GroupSize)
	s.Equal(hero.BaseStats, hero.Stats)
}

func (s *EngineTestSuite) TestNewWarriorStartingExperience() {
	out, err := s.engine.NewWarrior(&engine.NewWarriorInput{
		WarriorID:    "w_cap",
		Warband:      s.warband,
		TemplateType: testutils.FixtureCaptainType,
		IsHero:       true,
	})
	s.Require().NoError(err)
	s.Equal(20, out.Warrior.Experience)
	s.Equal([]string{"Leader"}, out.Warrior.SpecialRules)
}

func (s *EngineTestSuite) TestNewWarriorHenchman() {
	hench := s.newHenchman()

	s.False(hench.IsHero)
	s.Equal(1, hench.GroupSize)
	s.Equal(0, hench.Experience)
	s.Equal(testutils.FixtureHenchCost, hench.Cost)
}

func (s *EngineTestSuite) TestNewWarriorStatsAreIndependentCopies() {
	hero := s.newHero()

	hero.Stats["WS"]++
	s.NotEqual(hero.BaseStats["WS"], hero.Stats["WS"])

	// The template itself must not be touched either.
	s.Equal(4, s.warband.Heroes[1].Stats["WS"])
}

func (s *EngineTestSuite) TestNewWarriorUnknownType() {
	_, err := s.engine.NewWarrior(&engine.NewWarriorInput{
		WarriorID:    "w_x",
		Warband:      s.warband,
		TemplateType: "ogre",
		IsHero:       true,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	// A henchman type is not reachable as a hero.
	_, err = s.engine.NewWarrior(&engine.NewWarriorInput{
		WarriorID:    "w_y",
		Warband:      s.warband,
		TemplateType: testutils.FixtureHenchType,
		IsHero:       true,
	})
	s.True(errors.IsNotFound(err))
}

func (s *EngineTestSuite) TestAddEquipmentAllowsDuplicates() {
	hero := s.newHero()

	s.NoError(s.engine.AddEquipment(hero, "dagger"))
	s.NoError(s.engine.AddEquipment(hero, "dagger"))
	s.Len(hero.Equipment, 2)
	s.Equal("Dagger", hero.Equipment[0].Name)

	err := s.engine.AddEquipment(hero, "chainsword")
	s.True(errors.IsNotFound(err))
	s.Len(hero.Equipment, 2)
}

func (s *EngineTestSuite) TestRemoveEquipmentByPosition() {
	hero := s.newHero()
	s.NoError(s.engine.AddEquipment(hero, "dagger"))
	s.NoError(s.engine.AddEquipment(hero, "sword"))

	s.NoError(s.engine.RemoveEquipment(hero, 0))
	s.Len(hero.Equipment, 1)
	s.Equal("sword", hero.Equipment[0].ID)

	s.True(errors.IsOutOfRange(s.engine.RemoveEquipment(hero, 5)))
	s.True(errors.IsOutOfRange(s.engine.RemoveEquipment(hero, -1)))
}

func (s *EngineTestSuite) TestAddSkillRejectsDuplicates() {
	hero := s.newHero()

	s.NoError(s.engine.AddSkill(hero, "mighty_blow"))

	err := s.engine.AddSkill(hero, "mighty_blow")
	s.True(errors.IsAlreadyExists(err))
	s.Len(hero.Skills, 1)

	s.NoError(s.engine.AddSkill(hero, "step_aside"))
	s.Len(hero.Skills, 2)
	s.Equal("mighty_blow", hero.Skills[0].ID)
	s.Equal("step_aside", hero.Skills[1].ID)

	s.True(errors.IsNotFound(s.engine.AddSkill(hero, "psychic_scream")))
}

func (s *EngineTestSuite) TestAddSpellMirrorsSkillContract() {
	hero := s.newHero()

	s.NoError(s.engine.AddSpell(hero, "fires_of_uzhul"))
	s.True(errors.IsAlreadyExists(s.engine.AddSpell(hero, "fires_of_uzhul")))
	s.True(errors.IsNotFound(s.engine.AddSpell(hero, "fireball")))
	s.Len(hero.Spells, 1)

	s.NoError(s.engine.RemoveSpell(hero, 0))
	s.Empty(hero.Spells)
}

func (s *EngineTestSuite) TestAddInjuryIsUnvalidated() {
	hero := s.newHero()

	s.engine.AddInjury(hero, "Leg Wound")
	s.engine.AddInjury(hero, "Bitten by a Giant Rat")

	s.Len(hero.Injuries, 2)
	s.Equal(0, hero.Injuries[0].GameNumber)

	s.NoError(s.engine.RemoveInjury(hero, 1))
	s.Len(hero.Injuries, 1)
	s.True(errors.IsOutOfRange(s.engine.RemoveInjury(hero, 1)))
}

func (s *EngineTestSuite) TestModifyStat() {
	hero := s.newHero()
	s.Require().Equal(4, hero.Stats["S"])

	s.Run("increase within cap", func() {
		s.NoError(s.engine.ModifyStat(hero, "S", 1))
		s.Equal(5, hero.Stats["S"])
	})

	s.Run("increase past cap fails without mutation", func() {
		// S is unconfigured in the fixture, so it caps at 10.
		err := s.engine.ModifyStat(hero, "S", 6)
		s.True(errors.IsOutOfRange(err))
		s.Equal(5, hero.Stats["S"])
	})

	s.Run("configured cap is enforced", func() {
		s.Require().Equal(3, hero.Stats["T"])
		s.NoError(s.engine.ModifyStat(hero, "T", 1))
		s.True(errors.IsOutOfRange(s.engine.ModifyStat(hero, "T", 1)))
		s.Equal(4, hero.Stats["T"])
	})

	s.Run("decrease below zero fails without mutation", func() {
		err := s.engine.ModifyStat(hero, "W", -2)
		s.True(errors.IsOutOfRange(err))
		s.Equal(1, hero.Stats["W"])

		s.NoError(s.engine.ModifyStat(hero, "W", -1))
		s.Equal(0, hero.Stats["W"])
	})
}

func (s *EngineTestSuite) TestAddExperienceClampsAtZero() {
	hero := s.newHero()

	s.engine.AddExperience(hero, 3)
	s.Equal(3, hero.Experience)

	s.engine.AddExperience(hero, -10)
	s.Equal(0, hero.Experience)
}

func (s *EngineTestSuite) TestHeroLevel() {
	// Thresholds are [0, 1, 3, 6, 10].
	testCases := []struct {
		experience int
		level      int
	}{
		{0, 1},
		{1, 2},
		{2, 2},
		{5, 3},
		{6, 4},
		{10, 5},
		{99, 5},
	}

	for _, tc := range testCases {
		s.Equal(tc.level, s.engine.HeroLevel(tc.experience),
			"experience %d", tc.experience)
	}
}

func (s *EngineTestSuite) TestNextThreshold() {
	s.Equal(1, s.engine.NextThreshold(0))
	s.Equal(6, s.engine.NextThreshold(5))
	s.Equal(10, s.engine.NextThreshold(6))

	// Beyond the table: experience + 10.
	s.Equal(20, s.engine.NextThreshold(10))
	s.Equal(60, s.engine.NextThreshold(50))
}

func (s *EngineTestSuite) TestLevelStableUntilNextThreshold() {
	for _, experience := range []int{0, 1, 2, 5, 6, 9, 10, 11, 25} {
		next := s.engine.NextThreshold(experience)
		s.Greater(next, experience)
		s.Equal(s.engine.HeroLevel(experience), s.engine.HeroLevel(next-1),
			"level must not change before threshold %d", next)
	}
}

func (s *EngineTestSuite) TestWarbandRating() {
	roster := &entities.Roster{WarbandID: testutils.FixtureWarbandID}
	s.Equal(0, s.engine.WarbandRating(roster))

	hero := s.newHero()
	hero.Experience = 4
	s.NoError(s.engine.AddEquipment(hero, "sword"))
	s.NoError(s.engine.AddEquipment(hero, "dagger"))
	roster.Heroes = append(roster.Heroes, hero)

	// 5 base + 4 experience + 2 items * 5.
	s.Equal(19, s.engine.WarbandRating(roster))

	hench := s.newHenchman()
	hench.GroupSize = 3
	hench.Experience = 2
	s.NoError(s.engine.AddEquipment(hench, "sword"))
	roster.Henchmen = append(roster.Henchmen, hench)

	// Henchman equipment adds nothing to rating, only bodies and
	// experience: 3*5 + 2*3 = 21.
	s.Equal(19+21, s.engine.WarbandRating(roster))
}

func (s *EngineTestSuite) TestTotalCost() {
	roster := &entities.Roster{WarbandID: testutils.FixtureWarbandID}

	hero := s.newHero()
	s.NoError(s.engine.AddEquipment(hero, "sword"))
	roster.Heroes = append(roster.Heroes, hero)

	// 35 + 10.
	s.Equal(45, s.engine.TotalCost(roster))

	hench := s.newHenchman()
	hench.GroupSize = 3
	roster.Henchmen = append(roster.Henchmen, hench)

	// Henchman cost multiplies by group size: 25 * 3 = 75.
	s.Equal(45+75, s.engine.TotalCost(roster))

	// Equipment multiplies by group size too: (25 + 2) * 3 = 81.
	s.NoError(s.engine.AddEquipment(hench, "dagger"))
	s.Equal(45+81, s.engine.TotalCost(roster))
}

func (s *EngineTestSuite) TestStaleEquipmentContributesZero() {
	hero := s.newHero()
	hero.Equipment = append(hero.Equipment, entities.Reference{ID: "retired_item", Name: "Retired Item"})
	roster := &entities.Roster{Heroes: []*entities.Warrior{hero}}

	s.Equal(testutils.FixtureHeroCost, s.engine.TotalCost(roster))
}

func (s *EngineTestSuite) TestDerivedValuesAreIdempotentReads() {
	hero := s.newHero()
	hero.Experience = 7
	s.NoError(s.engine.AddEquipment(hero, "halberd"))
	hench := s.newHenchman()
	hench.GroupSize = 2
	roster := &entities.Roster{
		Heroes:   []*entities.Warrior{hero},
		Henchmen: []*entities.Warrior{hench},
	}

	s.Equal(s.engine.WarbandRating(roster), s.engine.WarbandRating(roster))
	s.Equal(s.engine.TotalCost(roster), s.engine.TotalCost(roster))
	s.Equal(s.engine.MemberCount(roster), s.engine.MemberCount(roster))
}

func (s *EngineTestSuite) TestMemberCount() {
	roster := &entities.Roster{}
	s.Equal(0, s.engine.MemberCount(roster))

	roster.Heroes = append(roster.Heroes, s.newHero())
	hench := s.newHenchman()
	hench.GroupSize = 4
	roster.Henchmen = append(roster.Henchmen, hench)

	s.Equal(5, s.engine.MemberCount(roster))

	// An unset group size counts as one fighter.
	roster.Henchmen = append(roster.Henchmen, &entities.Warrior{ID: "w_3"})
	s.Equal(6, s.engine.MemberCount(roster))
}

func (s *EngineTestSuite) TestAddBattle() {
	roster := &entities.Roster{}

	s.engine.AddBattle(roster, "Victory against the Skaven", "Captured the wyrdstone cache")
	s.engine.AddBattle(roster, "Draw", "")

	s.Require().Len(roster.BattleLog, 2)
	s.Equal(1, roster.BattleLog[0].Number)
	s.Equal(2, roster.BattleLog[1].Number)
	s.Equal("Victory against the Skaven", roster.BattleLog[0].Result)
	s.Equal(fixedNow, roster.BattleLog[0].Date)
}
