// Package roster implements the roster orchestrator: the coordination
// layer between storage, the reference catalog, and the rules engine.
// The orchestrator owns cross-entity policy (recruit limits, treasury
// bounds) and delegates per-warrior mechanics to the engine.
package roster

import (
	"context"
	"log/slog"

	"github.com/skirmishforge/warband-api/internal/catalog"
	"github.com/skirmishforge/warband-api/internal/engine"
	"github.com/skirmishforge/warband-api/internal/entities"
	"github.com/skirmishforge/warband-api/internal/errors"
	"github.com/skirmishforge/warband-api/internal/pkg/clock"
	"github.com/skirmishforge/warband-api/internal/pkg/idgen"
	rosterrepo "github.com/skirmishforge/warband-api/internal/repositories/roster"
)

const (
	minGroupSize = 1
	maxGroupSize = 5
)

// Config holds dependencies for the roster orchestrator
type Config struct {
	Repository rosterrepo.Repository
	Engine     engine.Engine
	Catalog    *catalog.Catalog
	IDGen      idgen.Generator
	Clock      clock.Clock
	Logger     *slog.Logger
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}

	return vb.Build()
}

// Orchestrator implements the roster Service
type Orchestrator struct {
	repo    rosterrepo.Repository
	engine  engine.Engine
	catalog *catalog.Catalog
	idGen   idgen.Generator
	clock   clock.Clock
	log     *slog.Logger
}

// New creates a new roster orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Orchestrator{
		repo:    cfg.Repository,
		engine:  cfg.Engine,
		catalog: cfg.Catalog,
		idGen:   cfg.IDGen,
		clock:   clk,
		log:     log,
	}, nil
}

var _ Service = (*Orchestrator)(nil)

// loadRoster fetches a roster or returns the repository's coded error.
func (o *Orchestrator) loadRoster(ctx context.Context, rosterID string) (*entities.Roster, error) {
	if rosterID == "" {
		return nil, errors.InvalidArgument("roster ID is required")
	}

	output, err := o.repo.Get(ctx, rosterrepo.GetInput{ID: rosterID})
	if err != nil {
		return nil, err
	}
	return output.Roster, nil
}

// saveRoster stamps the modification time and writes the roster back.
func (o *Orchestrator) saveRoster(ctx context.Context, r *entities.Roster) error {
	r.UpdatedAt = o.clock.Now()
	_, err := o.repo.Update(ctx, rosterrepo.UpdateInput{Roster: r})
	return err
}

// findWarrior locates a warrior on the roster or returns NotFound.
func findWarrior(r *entities.Roster, warriorID string) (*entities.Warrior, error) {
	if warriorID == "" {
		return nil, errors.InvalidArgument("warrior ID is required")
	}
	w := r.FindWarrior(warriorID)
	if w == nil {
		return nil, errors.NotFoundf("warrior %s not found in roster %s", warriorID, r.ID)
	}
	return w, nil
}

// CreateRoster creates a new roster for a warband type, seeding the
// treasury from the warband's starting gold.
func (o *Orchestrator) CreateRoster(ctx context.Context, input *CreateRosterInput) (*CreateRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.Name == "" {
		vb.RequiredField("Name")
	}
	if input.WarbandID == "" {
		vb.RequiredField("WarbandID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	warband := o.catalog.GetWarband(input.WarbandID)
	if warband == nil {
		return nil, errors.NotFoundf("warband type %s not found", input.WarbandID)
	}

	now := o.clock.Now()
	roster := &entities.Roster{
		ID:        o.idGen.Generate(),
		Name:      input.Name,
		WarbandID: warband.ID,
		Gold:      warband.StartingGold,
		Heroes:    []*entities.Warrior{},
		Henchmen:  []*entities.Warrior{},
		BattleLog: []entities.BattleLogEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	output, err := o.repo.Create(ctx, rosterrepo.CreateInput{Roster: roster})
	if err != nil {
		return nil, err
	}

	o.log.InfoContext(ctx, "created roster",
		slog.String("roster_id", roster.ID),
		slog.String("warband", warband.ID),
	)

	return &CreateRosterOutput{Roster: output.Roster}, nil
}

// GetRoster retrieves a roster by ID
func (o *Orchestrator) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	return &GetRosterOutput{Roster: roster}, nil
}

// ListRosters returns all stored rosters ordered by creation time
func (o *Orchestrator) ListRosters(ctx context.Context, _ *ListRostersInput) (*ListRostersOutput, error) {
	output, err := o.repo.List(ctx, rosterrepo.ListInput{})
	if err != nil {
		return nil, err
	}
	return &ListRostersOutput{Rosters: output.Rosters}, nil
}

// DeleteRoster removes a roster by ID
func (o *Orchestrator) DeleteRoster(ctx context.Context, input *DeleteRosterInput) (*DeleteRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.RosterID == "" {
		return nil, errors.InvalidArgument("roster ID is required")
	}

	if _, err := o.repo.Delete(ctx, rosterrepo.DeleteInput{ID: input.RosterID}); err != nil {
		return nil, err
	}

	o.log.InfoContext(ctx, "deleted roster", slog.String("roster_id", input.RosterID))
	return &DeleteRosterOutput{}, nil
}

// SetGold replaces the treasury total. Negative totals are rejected.
func (o *Orchestrator) SetGold(ctx context.Context, input *SetGoldInput) (*SetGoldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Gold < 0 {
		return nil, errors.InvalidArgument("gold cannot be negative")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	roster.Gold = input.Gold
	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &SetGoldOutput{Roster: roster}, nil
}

// SetWyrdstone replaces the wyrdstone count. Negative counts are rejected.
func (o *Orchestrator) SetWyrdstone(ctx context.Context, input *SetWyrdstoneInput) (*SetWyrdstoneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Wyrdstone < 0 {
		return nil, errors.InvalidArgument("wyrdstone cannot be negative")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	roster.Wyrdstone = input.Wyrdstone
	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &SetWyrdstoneOutput{Roster: roster}, nil
}

// SetNotes replaces the free-form roster notes
func (o *Orchestrator) SetNotes(ctx context.Context, input *SetNotesInput) (*SetNotesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	roster.Notes = input.Notes
	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &SetNotesOutput{Roster: roster}, nil
}

// AddWarrior recruits a warrior from the roster's warband templates.
// Hero counts are capped per template and total membership is capped by
// the warband's maximum size.
func (o *Orchestrator) AddWarrior(ctx context.Context, input *AddWarriorInput) (*AddWarriorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TemplateType == "" {
		return nil, errors.InvalidArgument("template type is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	warband := o.catalog.GetWarband(roster.WarbandID)
	if warband == nil {
		return nil, errors.Internalf("roster %s references unknown warband %s", roster.ID, roster.WarbandID)
	}

	if input.IsHero {
		for _, tmpl := range warband.Heroes {
			if tmpl.Type != input.TemplateType {
				continue
			}
			if tmpl.Max > 0 && roster.CountHeroType(tmpl.Type) >= tmpl.Max {
				return nil, errors.FailedPreconditionf("warband already has the maximum %d %s", tmpl.Max, tmpl.Name)
			}
		}
	}
	if o.engine.MemberCount(roster) >= warband.MaxWarband {
		return nil, errors.FailedPreconditionf("warband is at its maximum size of %d", warband.MaxWarband)
	}

	output, err := o.engine.NewWarrior(&engine.NewWarriorInput{
		WarriorID:    o.idGen.Generate(),
		Warband:      warband,
		TemplateType: input.TemplateType,
		IsHero:       input.IsHero,
	})
	if err != nil {
		return nil, err
	}

	warrior := output.Warrior
	if input.IsHero {
		roster.Heroes = append(roster.Heroes, warrior)
	} else {
		roster.Henchmen = append(roster.Henchmen, warrior)
	}

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}

	o.log.InfoContext(ctx, "recruited warrior",
		slog.String("roster_id", roster.ID),
		slog.String("warrior_id", warrior.ID),
		slog.String("type", warrior.Type),
	)

	return &AddWarriorOutput{Roster: roster, Warrior: warrior}, nil
}

// RemoveWarrior removes a warrior from the roster
func (o *Orchestrator) RemoveWarrior(ctx context.Context, input *RemoveWarriorInput) (*RemoveWarriorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	if !roster.RemoveWarrior(input.WarriorID) {
		return nil, errors.NotFoundf("warrior %s not found in roster %s", input.WarriorID, roster.ID)
	}

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &RemoveWarriorOutput{Roster: roster}, nil
}

// RenameWarrior sets a warrior's display name. An empty name reverts
// to the template's type name.
func (o *Orchestrator) RenameWarrior(ctx context.Context, input *RenameWarriorInput) (*RenameWarriorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	warrior, err := findWarrior(roster, input.WarriorID)
	if err != nil {
		return nil, err
	}

	name := input.Name
	if name == "" {
		name = warrior.TypeName
	}
	warrior.Name = name

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &RenameWarriorOutput{Roster: roster, Warrior: warrior}, nil
}

// AdjustGroupSize resizes a henchman group by delta, clamped to the
// 1..5 range. Total membership stays capped by the warband's maximum.
func (o *Orchestrator) AdjustGroupSize(ctx context.Context, input *AdjustGroupSizeInput) (*AdjustGroupSizeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	warrior, err := findWarrior(roster, input.WarriorID)
	if err != nil {
		return nil, err
	}
	if warrior.IsHero {
		return nil, errors.FailedPrecondition("heroes do not form groups")
	}

	size := warrior.EffectiveGroupSize() + input.Delta
	if size < minGroupSize {
		size = minGroupSize
	}
	if size > maxGroupSize {
		size = maxGroupSize
	}

	if input.Delta > 0 {
		warband := o.catalog.GetWarband(roster.WarbandID)
		if warband == nil {
			return nil, errors.Internalf("roster %s references unknown warband %s", roster.ID, roster.WarbandID)
		}
		grown := size - warrior.EffectiveGroupSize()
		if grown > 0 && o.engine.MemberCount(roster)+grown > warband.MaxWarband {
			return nil, errors.FailedPreconditionf("warband is at its maximum size of %d", warband.MaxWarband)
		}
	}

	warrior.GroupSize = size

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &AdjustGroupSizeOutput{Roster: roster, Warrior: warrior}, nil
}

// SetMissNextGame flags or clears a warrior sitting out the next game
func (o *Orchestrator) SetMissNextGame(ctx context.Context, input *SetMissNextGameInput) (*SetMissNextGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	warrior, err := findWarrior(roster, input.WarriorID)
	if err != nil {
		return nil, err
	}

	warrior.MissNextGame = input.Miss

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &SetMissNextGameOutput{Roster: roster, Warrior: warrior}, nil
}

// AddEquipment adds an equipment item to a warrior
func (o *Orchestrator) AddEquipment(ctx context.Context, input *AddEquipmentInput) (*AddEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	warrior, err := findWarrior(roster, input.WarriorID)
	if err != nil {
		return nil, err
	}

	if err := o.engine.AddEquipment(warrior, input.ItemID); err != nil {
		return nil, err
	}

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &AddEquipmentOutput{Roster: roster, Warrior: warrior}, nil
}

// RemoveEquipment removes a warrior's equipment entry by position
func (o *Orchestrator) RemoveEquipment(ctx context.Context, input *RemoveEquipmentInput) (*RemoveEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	warrior, err := findWarrior(roster, input.WarriorID)
	if err != nil {
		return nil, err
	}

	if err := o.engine.RemoveEquipment(warrior, input.Index); err != nil {
		return nil, err
	}

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &RemoveEquipmentOutput{Roster: roster, Warrior: warrior}, nil
}

// AddSkill adds a skill to a warrior
func (o *Orchestrator) AddSkill(ctx context.Context, input *AddSkillInput) (*AddSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	warrior, err := findWarrior(roster, input.WarriorID)
	if err != nil {
		return nil, err
	}

	if err := o.engine.AddSkill(warrior, input.SkillID); err != nil {
		return nil, err
	}

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &AddSkillOutput{Roster: roster, Warrior: warrior}, nil
}

// RemoveSkill removes a warrior's skill entry by position
func (o *Orchestrator) RemoveSkill(ctx context.Context, input *RemoveSkillInput) (*RemoveSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	warrior, err := findWarrior(roster, input.WarriorID)
	if err != nil {
		return nil, err
	}

	if err := o.engine.RemoveSkill(warrior, input.Index); err != nil {
		return nil, err
	}

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &RemoveSkillOutput{Roster: roster, Warrior: warrior}, nil
}

// AddSpell adds a spell to a warrior
func (o *Orchestrator) AddSpell(ctx context.Context, input *AddSpellInput) (*AddSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	warrior, err := findWarrior(roster, input.WarriorID)
	if err != nil {
		return nil, err
	}

	if err := o.engine.AddSpell(warrior, input.SpellID); err != nil {
		return nil, err
	}

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &AddSpellOutput{Roster: roster, Warrior: warrior}, nil
}

// RemoveSpell removes a warrior's spell entry by position
func (o *Orchestrator) RemoveSpell(ctx context.Context, input *RemoveSpellInput) (*RemoveSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	warrior, err := findWarrior(roster, input.WarriorID)
	if err != nil {
		return nil, err
	}

	if err := o.engine.RemoveSpell(warrior, input.Index); err != nil {
		return nil, err
	}

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &RemoveSpellOutput{Roster: roster, Warrior: warrior}, nil
}

// AddInjury records a lasting injury against a warrior, tagged with
// the current battle number.
func (o *Orchestrator) AddInjury(ctx context.Context, input *AddInjuryInput) (*AddInjuryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.InjuryName == "" {
		return nil, errors.InvalidArgument("injury name is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	warrior, err := findWarrior(roster, input.WarriorID)
	if err != nil {
		return nil, err
	}

	o.engine.AddInjury(warrior, input.InjuryName)
	// Tag the injury with the battle it was sustained in.
	warrior.Injuries[len(warrior.Injuries)-1].GameNumber = len(roster.BattleLog)

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &AddInjuryOutput{Roster: roster, Warrior: warrior}, nil
}

// RemoveInjury removes a warrior's injury entry by position
func (o *Orchestrator) RemoveInjury(ctx context.Context, input *RemoveInjuryInput) (*RemoveInjuryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	warrior, err := findWarrior(roster, input.WarriorID)
	if err != nil {
		return nil, err
	}

	if err := o.engine.RemoveInjury(warrior, input.Index); err != nil {
		return nil, err
	}

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &RemoveInjuryOutput{Roster: roster, Warrior: warrior}, nil
}

// ModifyStat adjusts a warrior's stat by delta, subject to the
// catalog's racial maximums.
func (o *Orchestrator) ModifyStat(ctx context.Context, input *ModifyStatInput) (*ModifyStatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	warrior, err := findWarrior(roster, input.WarriorID)
	if err != nil {
		return nil, err
	}

	if err := o.engine.ModifyStat(warrior, input.Stat, input.Delta); err != nil {
		return nil, err
	}
	if input.Delta > 0 {
		warrior.AdvancementCount++
	}

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &ModifyStatOutput{Roster: roster, Warrior: warrior}, nil
}

// AdjustExperience adjusts a warrior's experience and reports the
// resulting progression.
func (o *Orchestrator) AdjustExperience(ctx context.Context, input *AdjustExperienceInput) (*AdjustExperienceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}
	warrior, err := findWarrior(roster, input.WarriorID)
	if err != nil {
		return nil, err
	}

	o.engine.AddExperience(warrior, input.Amount)

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &AdjustExperienceOutput{
		Roster:        roster,
		Warrior:       warrior,
		Level:         o.engine.HeroLevel(warrior.Experience),
		NextThreshold: o.engine.NextThreshold(warrior.Experience),
	}, nil
}

// AddBattle records a battle outcome in the roster's log
func (o *Orchestrator) AddBattle(ctx context.Context, input *AddBattleInput) (*AddBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Result == "" {
		return nil, errors.InvalidArgument("battle result is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	o.engine.AddBattle(roster, input.Result, input.Notes)

	if err := o.saveRoster(ctx, roster); err != nil {
		return nil, err
	}
	return &AddBattleOutput{
		Roster: roster,
		Entry:  roster.BattleLog[len(roster.BattleLog)-1],
	}, nil
}

// GetSummary returns the roster together with its derived values
func (o *Orchestrator) GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roster, err := o.loadRoster(ctx, input.RosterID)
	if err != nil {
		return nil, err
	}

	return &GetSummaryOutput{
		Roster:      roster,
		Rating:      o.engine.WarbandRating(roster),
		TotalCost:   o.engine.TotalCost(roster),
		MemberCount: o.engine.MemberCount(roster),
	}, nil
}
