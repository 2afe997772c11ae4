package roster_test

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/mock/gomock"

	"github.com/skirmishforge/warband-api/internal/entities"
	"github.com/skirmishforge/warband-api/internal/errors"
	rostersvc "github.com/skirmishforge/warband-api/internal/orchestrators/roster"
	rosterrepo "github.com/skirmishforge/warband-api/internal/repositories/roster"
	"github.com/skirmishforge/warband-api/internal/testutils"
)

func (s *OrchestratorTestSuite) TestExportRoster() {
	r := s.storedRoster()
	warrior := s.recruitHero(r, testutils.FixtureHeroType)

	s.expectGet(r)
	output, err := s.svc.ExportRoster(s.ctx, &rostersvc.ExportRosterInput{RosterID: r.ID})
	s.Require().NoError(err)

	s.True(strings.HasPrefix(output.Data, "{\n"), "export should be indented JSON")

	var decoded entities.Roster
	s.Require().NoError(json.Unmarshal([]byte(output.Data), &decoded))
	s.Equal(r.ID, decoded.ID)
	s.Equal(r.Name, decoded.Name)
	s.Require().Len(decoded.Heroes, 1)
	s.Equal(warrior.ID, decoded.Heroes[0].ID)
}

func (s *OrchestratorTestSuite) TestImportRoster() {
	r := s.storedRoster()
	s.recruitHero(r, testutils.FixtureHeroType)

	s.expectGet(r)
	exported, err := s.svc.ExportRoster(s.ctx, &rostersvc.ExportRosterInput{RosterID: r.ID})
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input rosterrepo.CreateInput) (*rosterrepo.CreateOutput, error) {
			return &rosterrepo.CreateOutput{Roster: input.Roster}, nil
		})

	imported, err := s.svc.ImportRoster(s.ctx, &rostersvc.ImportRosterInput{Data: exported.Data})
	s.Require().NoError(err)

	got := imported.Roster
	s.NotEqual(r.ID, got.ID, "import assigns a fresh ID")
	s.Equal(r.Name, got.Name)
	s.Equal(r.WarbandID, got.WarbandID)
	s.Equal(r.Gold, got.Gold)
	s.Require().Len(got.Heroes, 1)
	s.Equal(r.Heroes[0].ID, got.Heroes[0].ID)
	s.True(got.CreatedAt.Equal(r.CreatedAt), "import preserves the creation time")
	s.True(got.UpdatedAt.Equal(fixedNow), "import stamps the modification time")
}

func (s *OrchestratorTestSuite) TestImportRosterNormalizesSparseWarriors() {
	// Minimal validation admits documents whose warriors omit the
	// stats object and reference lists entirely.
	doc := `{
		"id": "r_old",
		"name": "Old Export",
		"warbandId": "mercenaries",
		"gold": 100,
		"heroes": [
			{"id": "w_old", "type": "champion", "typeName": "Champion", "name": "Gunther", "isHero": true, "cost": 35}
		]
	}`

	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input rosterrepo.CreateInput) (*rosterrepo.CreateOutput, error) {
			return &rosterrepo.CreateOutput{Roster: input.Roster}, nil
		})

	imported, err := s.svc.ImportRoster(s.ctx, &rostersvc.ImportRosterInput{Data: doc})
	s.Require().NoError(err)

	got := imported.Roster
	s.Require().Len(got.Heroes, 1)
	hero := got.Heroes[0]
	s.NotNil(hero.Stats)
	s.NotNil(hero.BaseStats)
	s.NotNil(hero.Equipment)
	s.NotNil(hero.Skills)
	s.NotNil(hero.Spells)
	s.NotNil(hero.Injuries)

	// The imported warrior must be safely mutable.
	s.expectGet(got)
	s.expectUpdate()
	output, err := s.svc.ModifyStat(s.ctx, &rostersvc.ModifyStatInput{
		RosterID:  got.ID,
		WarriorID: hero.ID,
		Stat:      "S",
		Delta:     1,
	})
	s.Require().NoError(err)
	s.Equal(1, output.Warrior.Stats["S"])
}

func (s *OrchestratorTestSuite) TestImportRosterMalformedJSON() {
	_, err := s.svc.ImportRoster(s.ctx, &rostersvc.ImportRosterInput{Data: "{not json"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestImportRosterMissingFields() {
	_, err := s.svc.ImportRoster(s.ctx, &rostersvc.ImportRosterInput{Data: `{"id": "r1", "name": "Orphans"}`})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestImportRosterEmpty() {
	_, err := s.svc.ImportRoster(s.ctx, &rostersvc.ImportRosterInput{Data: ""})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
