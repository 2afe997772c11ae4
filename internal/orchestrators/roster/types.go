package roster

import (
	"context"

	"github.com/skirmishforge/warband-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=rostersvcmock github.com/skirmishforge/warband-api/internal/orchestrators/roster Service

// Service defines the roster orchestrator interface
type Service interface {
	// Roster lifecycle
	CreateRoster(ctx context.Context, input *CreateRosterInput) (*CreateRosterOutput, error)
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)
	ListRosters(ctx context.Context, input *ListRostersInput) (*ListRostersOutput, error)
	DeleteRoster(ctx context.Context, input *DeleteRosterInput) (*DeleteRosterOutput, error)

	// Treasury and notes
	SetGold(ctx context.Context, input *SetGoldInput) (*SetGoldOutput, error)
	SetWyrdstone(ctx context.Context, input *SetWyrdstoneInput) (*SetWyrdstoneOutput, error)
	SetNotes(ctx context.Context, input *SetNotesInput) (*SetNotesOutput, error)

	// Recruitment
	AddWarrior(ctx context.Context, input *AddWarriorInput) (*AddWarriorOutput, error)
	RemoveWarrior(ctx context.Context, input *RemoveWarriorInput) (*RemoveWarriorOutput, error)
	RenameWarrior(ctx context.Context, input *RenameWarriorInput) (*RenameWarriorOutput, error)
	AdjustGroupSize(ctx context.Context, input *AdjustGroupSizeInput) (*AdjustGroupSizeOutput, error)
	SetMissNextGame(ctx context.Context, input *SetMissNextGameInput) (*SetMissNextGameOutput, error)

	// Equipment, skills, spells, injuries
	AddEquipment(ctx context.Context, input *AddEquipmentInput) (*AddEquipmentOutput, error)
	RemoveEquipment(ctx context.Context, input *RemoveEquipmentInput) (*RemoveEquipmentOutput, error)
	AddSkill(ctx context.Context, input *AddSkillInput) (*AddSkillOutput, error)
	RemoveSkill(ctx context.Context, input *RemoveSkillInput) (*RemoveSkillOutput, error)
	AddSpell(ctx context.Context, input *AddSpellInput) (*AddSpellOutput, error)
	RemoveSpell(ctx context.Context, input *RemoveSpellInput) (*RemoveSpellOutput, error)
	AddInjury(ctx context.Context, input *AddInjuryInput) (*AddInjuryOutput, error)
	RemoveInjury(ctx context.Context, input *RemoveInjuryInput) (*RemoveInjuryOutput, error)

	// Stats and experience
	ModifyStat(ctx context.Context, input *ModifyStatInput) (*ModifyStatOutput, error)
	AdjustExperience(ctx context.Context, input *AdjustExperienceInput) (*AdjustExperienceOutput, error)

	// Campaign progress
	AddBattle(ctx context.Context, input *AddBattleInput) (*AddBattleOutput, error)
	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)

	// Portability
	ExportRoster(ctx context.Context, input *ExportRosterInput) (*ExportRosterOutput, error)
	ImportRoster(ctx context.Context, input *ImportRosterInput) (*ImportRosterOutput, error)
}

// Roster lifecycle types

// CreateRosterInput defines the request for creating a roster
type CreateRosterInput struct {
	Name      string
	WarbandID string
}

// CreateRosterOutput defines the response for creating a roster
type CreateRosterOutput struct {
	Roster *entities.Roster
}

// GetRosterInput defines the request for getting a roster
type GetRosterInput struct {
	RosterID string
}

// GetRosterOutput defines the response for getting a roster
type GetRosterOutput struct {
	Roster *entities.Roster
}

// ListRostersInput defines the request for listing rosters
type ListRostersInput struct{}

// ListRostersOutput defines the response for listing rosters
type ListRostersOutput struct {
	Rosters []*entities.Roster
}

// DeleteRosterInput defines the request for deleting a roster
type DeleteRosterInput struct {
	RosterID string
}

// DeleteRosterOutput defines the response for deleting a roster
type DeleteRosterOutput struct{}

// Treasury and notes types

// SetGoldInput defines the request for setting the treasury
type SetGoldInput struct {
	RosterID string
	Gold     int
}

// SetGoldOutput defines the response for setting the treasury
type SetGoldOutput struct {
	Roster *entities.Roster
}

// SetWyrdstoneInput defines the request for setting the wyrdstone count
type SetWyrdstoneInput struct {
	RosterID  string
	Wyrdstone int
}

// SetWyrdstoneOutput defines the response for setting the wyrdstone count
type SetWyrdstoneOutput struct {
	Roster *entities.Roster
}

// SetNotesInput defines the request for replacing the roster notes
type SetNotesInput struct {
	RosterID string
	Notes    string
}

// SetNotesOutput defines the response for replacing the roster notes
type SetNotesOutput struct {
	Roster *entities.Roster
}

// Recruitment types

// AddWarriorInput defines the request for recruiting a warrior
type AddWarriorInput struct {
	RosterID     string
	TemplateType string
	IsHero       bool
}

// AddWarriorOutput defines the response for recruiting a warrior
type AddWarriorOutput struct {
	Roster  *entities.Roster
	Warrior *entities.Warrior
}

// RemoveWarriorInput defines the request for removing a warrior
type RemoveWarriorInput struct {
	RosterID  string
	WarriorID string
}

// RemoveWarriorOutput defines the response for removing a warrior
type RemoveWarriorOutput struct {
	Roster *entities.Roster
}

// RenameWarriorInput defines the request for renaming a warrior. An
// empty name restores the template's type name.
type RenameWarriorInput struct {
	RosterID  string
	WarriorID string
	Name      string
}

// RenameWarriorOutput defines the response for renaming a warrior
type RenameWarriorOutput struct {
	Roster  *entities.Roster
	Warrior *entities.Warrior
}

// AdjustGroupSizeInput defines the request for resizing a henchman group
type AdjustGroupSizeInput struct {
	RosterID  string
	WarriorID string
	Delta     int
}

// AdjustGroupSizeOutput defines the response for resizing a henchman group
type AdjustGroupSizeOutput struct {
	Roster  *entities.Roster
	Warrior *entities.Warrior
}

// SetMissNextGameInput defines the request for flagging a warrior as
// missing the next game
type SetMissNextGameInput struct {
	RosterID  string
	WarriorID string
	Miss      bool
}

// SetMissNextGameOutput defines the response for the miss-next-game flag
type SetMissNextGameOutput struct {
	Roster  *entities.Roster
	Warrior *entities.Warrior
}

// Equipment, skill, spell, and injury types

// AddEquipmentInput defines the request for adding equipment
type AddEquipmentInput struct {
	RosterID  string
	WarriorID string
	ItemID    string
}

// AddEquipmentOutput defines the response for adding equipment
type AddEquipmentOutput struct {
	Roster  *entities.Roster
	Warrior *entities.Warrior
}

// RemoveEquipmentInput defines the request for removing equipment by position
type RemoveEquipmentInput struct {
	RosterID  string
	WarriorID string
	Index     int
}

// RemoveEquipmentOutput defines the response for removing equipment
type RemoveEquipmentOutput struct {
	Roster  *entities.Roster
	Warrior *entities.Warrior
}

// AddSkillInput defines the request for adding a skill
type AddSkillInput struct {
	RosterID  string
	WarriorID string
	SkillID   string
}

// AddSkillOutput defines the response for adding a skill
type AddSkillOutput struct {
	Roster  *entities.Roster
	Warrior *entities.Warrior
}

// RemoveSkillInput defines the request for removing a skill by position
type RemoveSkillInput struct {
	RosterID  string
	WarriorID string
	Index     int
}

// RemoveSkillOutput defines the response for removing a skill
type RemoveSkillOutput struct {
	Roster  *entities.Roster
	Warrior *entities.Warrior
}

// AddSpellInput defines the request for adding a spell
type AddSpellInput struct {
	RosterID  string
	WarriorID string
	SpellID   string
}

// AddSpellOutput defines the response for adding a spell
type AddSpellOutput struct {
	Roster  *entities.Roster
	Warrior *entities.Warrior
}

// RemoveSpellInput defines the request for removing a spell by position
type RemoveSpellInput struct {
	RosterID  string
	WarriorID string
	Index     int
}

// RemoveSpellOutput defines the response for removing a spell
type RemoveSpellOutput struct {
	Roster  *entities.Roster
	Warrior *entities.Warrior
}

// AddInjuryInput defines the request for recording an injury
type AddInjuryInput struct {
	RosterID   string
	WarriorID  string
	InjuryName string
}

// AddInjuryOutput defines the response for recording an injury
type AddInjuryOutput struct {
	Roster  *entities.Roster
	Warrior *entities.Warrior
}

// RemoveInjuryInput defines the request for removing an injury by position
type RemoveInjuryInput struct {
	RosterID  string
	WarriorID string
	Index     int
}

// RemoveInjuryOutput defines the response for removing an injury
type RemoveInjuryOutput struct {
	Roster  *entities.Roster
	Warrior *entities.Warrior
}

// Stat and experience types

// ModifyStatInput defines the request for adjusting a stat
type ModifyStatInput struct {
	RosterID  string
	WarriorID string
	Stat      string
	Delta     int
}

// ModifyStatOutput defines the response for adjusting a stat
type ModifyStatOutput struct {
	Roster  *entities.Roster
	Warrior *entities.Warrior
}

// AdjustExperienceInput defines the request for adjusting experience
type AdjustExperienceInput struct {
	RosterID  string
	WarriorID string
	Amount    int
}

// AdjustExperienceOutput defines the response for adjusting experience
type AdjustExperienceOutput struct {
	Roster  *entities.Roster
	Warrior *entities.Warrior
	// Level and NextThreshold reflect the warrior's progression after
	// the adjustment.
	Level         int
	NextThreshold int
}

// Campaign progress types

// AddBattleInput defines the request for recording a battle
type AddBattleInput struct {
	RosterID string
	Result   string
	Notes    string
}

// AddBattleOutput defines the response for recording a battle
type AddBattleOutput struct {
	Roster *entities.Roster
	Entry  entities.BattleLogEntry
}

// GetSummaryInput defines the request for the derived roster summary
type GetSummaryInput struct {
	RosterID string
}

// GetSummaryOutput defines the response for the derived roster summary
type GetSummaryOutput struct {
	Roster      *entities.Roster
	Rating      int
	TotalCost   int
	MemberCount int
}

// Portability types

// ExportRosterInput defines the request for exporting a roster
type ExportRosterInput struct {
	RosterID string
}

// ExportRosterOutput defines the response for exporting a roster
type ExportRosterOutput struct {
	// Data is the pretty-printed JSON document.
	Data string
}

// ImportRosterInput defines the request for importing a roster document
type ImportRosterInput struct {
	Data string
}

// ImportRosterOutput defines the response for importing a roster
type ImportRosterOutput struct {
	Roster *entities.Roster
}
