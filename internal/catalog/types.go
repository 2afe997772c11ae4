package catalog

import (
	"encoding/json"
	"fmt"
)

// WarbandTemplate describes a recruitable warband type: its treasury,
// size limit, and the hero and henchman templates it may field.
type WarbandTemplate struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	StartingGold int                `json:"startingGold"`
	MaxWarband   int                `json:"maxWarband"`
	Heroes       []HeroTemplate     `json:"heroes"`
	Henchmen     []HenchmanTemplate `json:"henchmen"`

	// Equipment categories each role may buy from.
	HeroEquipment     []string `json:"heroEquipment"`
	HenchmanEquipment []string `json:"henchmanEquipment"`
}

// HeroTemplate is the recruitment template for an individually tracked warrior.
type HeroTemplate struct {
	Type         string         `json:"type"`
	Name         string         `json:"name"`
	Cost         int            `json:"cost"`
	Stats        map[string]int `json:"stats"`
	StartingExp  int            `json:"startingExp"`
	Max          int            `json:"max"`
	SpecialRules []string       `json:"specialRules,omitempty"`
	SkillAccess  []string       `json:"skillAccess,omitempty"`
	SpellList    string         `json:"spellList,omitempty"`
}

// HenchmanTemplate is the recruitment template for a henchman group.
type HenchmanTemplate struct {
	Type         string         `json:"type"`
	Name         string         `json:"name"`
	Cost         int            `json:"cost"`
	Stats        map[string]int `json:"stats"`
	SpecialRules []string       `json:"specialRules,omitempty"`
}

// Item is a single piece of equipment.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Description string `json:"description,omitempty"`
}

// EquipmentCategory groups items (melee, ranged, armour, miscellaneous).
type EquipmentCategory struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Skill is a learnable hero skill.
type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SkillCategory groups skills (combat, shooting, academic, ...).
type SkillCategory struct {
	Name   string  `json:"name"`
	Skills []Skill `json:"skills"`
}

// Spell is a castable spell or prayer.
type Spell struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Difficulty  Difficulty `json:"difficulty"`
	Description string     `json:"description,omitempty"`
}

// SpellList groups spells by the list a caster draws from.
type SpellList struct {
	Name   string  `json:"name"`
	Spells []Spell `json:"spells"`
}

// AutoDifficulty marks a spell that requires no casting roll.
const AutoDifficulty = "Auto"

// Difficulty is a spell casting difficulty: a numeric target or the
// sentinel "Auto". Source documents carry it as either a JSON number or
// the string "Auto", so it unmarshals from both.
type Difficulty string

// UnmarshalJSON accepts a number or a string
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*d = Difficulty(asString)
		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(data, &asNumber); err != nil {
		return fmt.Errorf("difficulty must be a number or %q: %w", AutoDifficulty, err)
	}
	*d = Difficulty(asNumber.String())
	return nil
}

// IsAuto reports whether the spell is cast without a roll
func (d Difficulty) IsAuto() bool {
	return string(d) == AutoDifficulty
}

// InjuryEntry is one row of an injury table.
type InjuryEntry struct {
	Roll        string `json:"roll"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// InjuryTables holds the serious-injury tables per role.
type InjuryTables struct {
	HeroInjuries     []InjuryEntry `json:"heroInjuries"`
	HenchmanInjuries []InjuryEntry `json:"henchmanInjuries"`
}

// AdvancementConfig holds experience thresholds and stat caps.
type AdvancementConfig struct {
	HeroAdvancement struct {
		ExpThresholds []int `json:"expThresholds"`
	} `json:"heroAdvancement"`
	MaxStats map[string]int `json:"maxStats"`
}

// Document envelopes, matching the on-disk layout of the six ruleset files.

type warbandsDoc struct {
	Warbands []WarbandTemplate `json:"warbands"`
}

type equipmentDoc struct {
	Categories map[string]EquipmentCategory `json:"categories"`
}

type skillsDoc struct {
	SkillCategories map[string]SkillCategory `json:"skillCategories"`
}

type spellsDoc struct {
	SpellLists map[string]SpellList `json:"spellLists"`
}
