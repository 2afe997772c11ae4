package roster

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/skirmishforge/warband-api/internal/entities"
	"github.com/skirmishforge/warband-api/internal/errors"
	rosterrepo "github.com/skirmishforge/warband-api/internal/repositories/roster"
)

// ExportRoster serializes a roster as an indented JSON document
// suitable for sharing between players.
func (o *Orchestrator) ExportRoster(ctx context.Context, input *ExportRosterInput) (*ExportRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(roster, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to serialize roster %s", roster.ID)
	}

	return &ExportRosterOutput{Data: string(data)}, nil
}

// ImportRoster stores a previously exported roster document under a
// fresh ID. The original creation time is preserved; the modification
// time is stamped at import.
func (o *Orchestrator) ImportRoster(ctx context.Context, input *ImportRosterInput) (*ImportRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Data == "" {
		return nil, errors.InvalidArgument("roster data is required")
	}

	var roster entities.Roster
	if err := json.Unmarshal([]byte(input.Data), &roster); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid roster format")
	}
	if roster.ID == "" || roster.Name == "" || roster.WarbandID == "" {
		return nil, errors.InvalidArgument("invalid roster format")
	}

	imported := roster.ID
	roster.ID = o.idGen.Generate()
	roster.UpdatedAt = o.clock.Now()
	if roster.Heroes == nil {
		roster.Heroes = []*entities.Warrior{}
	}
	if roster.Henchmen == nil {
		roster.Henchmen = []*entities.Warrior{}
	}
	if roster.BattleLog == nil {
		roster.BattleLog = []entities.BattleLogEntry{}
	}
	for _, w := range roster.Heroes {
		w.Normalize()
	}
	for _, w := range roster.Henchmen {
		w.Normalize()
	}

	output, err := o.repo.Create(ctx, rosterrepo.CreateInput{Roster: &roster})
	if err != nil {
		return nil, err
	}

	o.log.InfoContext(ctx, "imported roster",
		slog.String("roster_id", roster.ID),
		slog.String("source_id", imported),
	)

	return &ImportRosterOutput{Roster: output.Roster}, nil
}
