// Package engine defines the warband rules engine: warrior construction,
// roster mutations, and the derived values that must stay consistent as
// a roster evolves over a campaign.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/skirmishforge/warband-api/internal/engine Engine

import (
	"github.com/skirmishforge/warband-api/internal/entities"
)

// Engine provides game mechanics and rules calculations. Mutating
// operations apply fully or not at all; failures are reported as coded
// errors, never panics.
type Engine interface {
	// NewWarrior constructs a warrior from a template in the given
	// warband. Returns errors.NotFound if the type is not in the
	// warband's hero or henchman list.
	NewWarrior(input *NewWarriorInput) (*NewWarriorOutput, error)

	// AddEquipment appends an equipment reference. Duplicates are
	// permitted; a warrior may carry several of the same item.
	// Returns errors.NotFound for an unknown item id.
	AddEquipment(warrior *entities.Warrior, itemID string) error
	// RemoveEquipment removes the equipment entry at the given position.
	RemoveEquipment(warrior *entities.Warrior, index int) error

	// AddSkill appends a skill reference. Returns errors.NotFound for an
	// unknown skill id and errors.AlreadyExists if the warrior already
	// has the skill.
	AddSkill(warrior *entities.Warrior, skillID string) error
	// RemoveSkill removes the skill entry at the given position.
	RemoveSkill(warrior *entities.Warrior, index int) error

	// AddSpell and RemoveSpell follow the same contract as skills.
	AddSpell(warrior *entities.Warrior, spellID string) error
	RemoveSpell(warrior *entities.Warrior, index int) error

	// AddInjury appends an injury unconditionally. The name is resolved
	// by the caller from the catalog's injury tables, not validated here.
	AddInjury(warrior *entities.Warrior, injuryName string)
	// RemoveInjury removes the injury entry at the given position.
	RemoveInjury(warrior *entities.Warrior, index int) error

	// ModifyStat adjusts a stat by delta. Returns errors.OutOfRange,
	// leaving the stat unchanged, if the result would fall below 0 or
	// exceed the catalog's cap for that stat.
	ModifyStat(warrior *entities.Warrior, stat string, delta int) error

	// AddExperience adjusts experience by the signed amount, clamping
	// the result at 0.
	AddExperience(warrior *entities.Warrior, amount int)

	// HeroLevel returns the highest level whose threshold the given
	// experience meets; equality counts as met.
	HeroLevel(experience int) int
	// NextThreshold returns the smallest configured threshold strictly
	// greater than the given experience, extrapolating by 10 once the
	// authored table is exhausted.
	NextThreshold(experience int) int

	// Derived values, always recomputed from current state.
	WarbandRating(roster *entities.Roster) int
	TotalCost(roster *entities.Roster) int
	MemberCount(roster *entities.Roster) int

	// AddBattle appends a battle log entry numbered log length + 1.
	AddBattle(roster *entities.Roster, result, notes string)
}
