// Package mordheim provides the concrete implementation of the engine
// interface for the Mordheim ruleset.
package mordheim

import (
	"log/slog"

	"github.com/skirmishforge/warband-api/internal/catalog"
	"github.com/skirmishforge/warband-api/internal/engine"
	"github.com/skirmishforge/warband-api/internal/entities"
	"github.com/skirmishforge/warband-api/internal/errors"
	"github.com/skirmishforge/warband-api/internal/pkg/clock"
)

// Rating weights. Every fighter is worth 5 plus 1 per experience point;
// hero equipment adds 5 per item carried. Henchman equipment does not
// contribute to rating, an intentional asymmetry in the source rules.
const (
	ratingPerFighter       = 5
	ratingPerExperience    = 1
	ratingPerHeroEquipment = 5
)

// Engine implements the engine.Engine interface for the fixed ruleset
type Engine struct {
	catalog *catalog.Catalog
	clock   clock.Clock
	log     *slog.Logger
}

// Config contains configuration for creating a new Engine
type Config struct {
	Catalog *catalog.Catalog
	Clock   clock.Clock
	Logger  *slog.Logger
}

// Validate checks that all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Catalog == nil {
		return errors.InvalidArgument("catalog is required")
	}
	return nil
}

// New creates a new ruleset engine
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Engine{
		catalog: cfg.Catalog,
		clock:   c,
		log:     log,
	}, nil
}

// Ensure Engine implements the engine interface
var _ engine.Engine = (*Engine)(nil)

// NewWarrior constructs a warrior from its template. Stats and base
// stats are independent copies so later advancement can be compared
// against the recruitment profile.
func (e *Engine) NewWarrior(input *engine.NewWarriorInput) (*engine.NewWarriorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Warband == nil {
		return nil, errors.InvalidArgument("warband template is required")
	}

	var (
		name         string
		cost         int
		stats        map[string]int
		startingExp  int
		specialRules []string
		found        bool
	)

	if input.IsHero {
		for i := range input.Warband.Heroes {
			t := &input.Warband.Heroes[i]
			if t.Type == input.TemplateType {
				name, cost, stats, startingExp, specialRules = t.Name, t.Cost, t.Stats, t.StartingExp, t.SpecialRules
				found = true
				break
			}
		}
	} else {
		for i := range input.Warband.Henchmen {
			t := &input.Warband.Henchmen[i]
			if t.Type == input.TemplateType {
				name, cost, stats, specialRules = t.Name, t.Cost, t.Stats, t.SpecialRules
				found = true
				break
			}
		}
	}

	if !found {
		return nil, errors.NotFoundf("warband %q has no %s type %q",
			input.Warband.ID, roleName(input.IsHero), input.TemplateType)
	}

	warrior := &entities.Warrior{
		ID:           input.WarriorID,
		Type:         input.TemplateType,
		TypeName:     name,
		Name:         name,
		IsHero:       input.IsHero,
		Stats:        copyStats(stats),
		BaseStats:    copyStats(stats),
		Equipment:    []entities.Reference{},
		Skills:       []entities.Reference{},
		Spells:       []entities.Reference{},
		Injuries:     []entities.Injury{},
		Experience:   startingExp,
		Cost:         cost,
		SpecialRules: append([]string{}, specialRules...),
	}

	if !input.IsHero {
		warrior.GroupSize = 1
	}

	return &engine.NewWarriorOutput{Warrior: warrior}, nil
}

// AddEquipment appends an equipment reference. Duplicates are allowed;
// several of the same tool may be carried.
func (e *Engine) AddEquipment(warrior *entities.Warrior, itemID string) error {
	item := e.catalog.GetEquipmentItem(itemID)
	if item == nil {
		return errors.NotFoundf("unknown item %q", itemID)
	}
	warrior.Equipment = append(warrior.Equipment, entities.Reference{ID: itemID, Name: item.Name})
	return nil
}

// RemoveEquipment removes the equipment entry at the given position
func (e *Engine) RemoveEquipment(warrior *entities.Warrior, index int) error {
	if index < 0 || index >= len(warrior.Equipment) {
		return errors.OutOfRangef("equipment index %d out of range", index)
	}
	warrior.Equipment = append(warrior.Equipment[:index], warrior.Equipment[index+1:]...)
	return nil
}

// AddSkill appends a skill reference, rejecting duplicates
func (e *Engine) AddSkill(warrior *entities.Warrior, skillID string) error {
	skill := e.catalog.GetSkill(skillID)
	if skill == nil {
		return errors.NotFoundf("unknown skill %q", skillID)
	}
	if warrior.HasSkill(skillID) {
		return errors.AlreadyExistsf("warrior already has skill %q", skillID)
	}
	warrior.Skills = append(warrior.Skills, entities.Reference{ID: skillID, Name: skill.Name})
	return nil
}

// RemoveSkill removes the skill entry at the given position
func (e *Engine) RemoveSkill(warrior *entities.Warrior, index int) error {
	if index < 0 || index >= len(warrior.Skills) {
		return errors.OutOfRangef("skill index %d out of range", index)
	}
	warrior.Skills = append(warrior.Skills[:index], warrior.Skills[index+1:]...)
	return nil
}

// AddSpell appends a spell reference, rejecting duplicates
func (e *Engine) AddSpell(warrior *entities.Warrior, spellID string) error {
	spell := e.catalog.GetSpell(spellID)
	if spell == nil {
		return errors.NotFoundf("unknown spell %q", spellID)
	}
	if warrior.HasSpell(spellID) {
		return errors.AlreadyExistsf("warrior already has spell %q", spellID)
	}
	warrior.Spells = append(warrior.Spells, entities.Reference{ID: spellID, Name: spell.Name})
	return nil
}

// RemoveSpell removes the spell entry at the given position
func (e *Engine) RemoveSpell(warrior *entities.Warrior, index int) error {
	if index < 0 || index >= len(warrior.Spells) {
		return errors.OutOfRangef("spell index %d out of range", index)
	}
	warrior.Spells = append(warrior.Spells[:index], warrior.Spells[index+1:]...)
	return nil
}

// AddInjury appends an injury unconditionally. Injury names are chosen
// by the player from the catalog's tables; the engine does not validate
// them.
func (e *Engine) AddInjury(warrior *entities.Warrior, injuryName string) {
	warrior.Injuries = append(warrior.Injuries, entities.Injury{Name: injuryName})
}

// RemoveInjury removes the injury entry at the given position
func (e *Engine) RemoveInjury(warrior *entities.Warrior, index int) error {
	if index < 0 || index >= len(warrior.Injuries) {
		return errors.OutOfRangef("injury index %d out of range", index)
	}
	warrior.Injuries = append(warrior.Injuries[:index], warrior.Injuries[index+1:]...)
	return nil
}

// ModifyStat is the sole gate protecting 0 <= stat <= cap. A rejected
// mutation leaves the stat unchanged.
func (e *Engine) ModifyStat(warrior *entities.Warrior, stat string, delta int) error {
	maxVal := e.catalog.GetMaxStat(stat)
	newVal := warrior.Stats[stat] + delta
	if newVal < 0 || newVal > maxVal {
		return errors.OutOfRangef("stat %s would be %d, allowed range is 0-%d", stat, newVal, maxVal)
	}
	warrior.Stats[stat] = newVal
	return nil
}

// AddExperience adjusts experience by the signed amount. Experience
// never drops below zero.
func (e *Engine) AddExperience(warrior *entities.Warrior, amount int) {
	warrior.Experience += amount
	if warrior.Experience < 0 {
		warrior.Experience = 0
	}
}

// HeroLevel returns the count of thresholds the experience meets,
// scanning in increasing order and stopping at the first miss.
func (e *Engine) HeroLevel(experience int) int {
	level := 0
	for _, t := range e.catalog.ExpThresholds() {
		if experience < t {
			break
		}
		level++
	}
	return level
}

// NextThreshold returns the next level-up boundary above the given
// experience. Once the authored table is exhausted it extrapolates at
// 10 experience per level, mirroring the catalog's policy.
func (e *Engine) NextThreshold(experience int) int {
	for _, t := range e.catalog.ExpThresholds() {
		if experience < t {
			return t
		}
	}
	return experience + 10
}

// WarbandRating computes the campaign matchmaking score
func (e *Engine) WarbandRating(roster *entities.Roster) int {
	rating := 0
	for _, h := range roster.Heroes {
		rating += ratingPerFighter + h.Experience*ratingPerExperience
		rating += len(h.Equipment) * ratingPerHeroEquipment
	}
	for _, hg := range roster.Henchmen {
		size := hg.EffectiveGroupSize()
		rating += size * ratingPerFighter
		rating += hg.Experience * size
	}
	return rating
}

// TotalCost computes the warband's full value in gold crowns. Equipment
// references that no longer resolve in the catalog contribute 0.
func (e *Engine) TotalCost(roster *entities.Roster) int {
	total := 0
	for _, h := range roster.Heroes {
		total += h.Cost + e.equipmentCost(h)
	}
	for _, hg := range roster.Henchmen {
		total += (hg.Cost + e.equipmentCost(hg)) * hg.EffectiveGroupSize()
	}
	return total
}

func (e *Engine) equipmentCost(warrior *entities.Warrior) int {
	cost := 0
	for _, eq := range warrior.Equipment {
		item := e.catalog.GetEquipmentItem(eq.ID)
		if item == nil {
			e.log.Warn("equipment id no longer in catalog, contributing 0 to cost",
				"item_id", eq.ID, "warrior_id", warrior.ID)
			continue
		}
		cost += item.Cost
	}
	return cost
}

// MemberCount counts heroes plus the size of every henchman group
func (e *Engine) MemberCount(roster *entities.Roster) int {
	count := len(roster.Heroes)
	for _, hg := range roster.Henchmen {
		count += hg.EffectiveGroupSize()
	}
	return count
}

// AddBattle appends a battle log entry numbered log length + 1
func (e *Engine) AddBattle(roster *entities.Roster, result, notes string) {
	roster.BattleLog = append(roster.BattleLog, entities.BattleLogEntry{
		Number: len(roster.BattleLog) + 1,
		Result: result,
		Notes:  notes,
		Date:   e.clock.Now(),
	})
}

func copyStats(stats map[string]int) map[string]int {
	copied := make(map[string]int, len(stats))
	for k, v := range stats {
		copied[k] = v
	}
	return copied
}

func roleName(isHero bool) string {
	if isHero {
		return "hero"
	}
	return "henchman"
}
