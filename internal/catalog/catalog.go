// Package catalog provides read-only lookups over the fixed ruleset:
// warband templates, equipment, skills, spells, injury tables, and
// advancement configuration. A Catalog is loaded once at startup and is
// safe for concurrent reads thereafter.
package catalog

import (
	"sort"
)

// defaultMaxStat caps any stat that has no configured maximum.
const defaultMaxStat = 10

// Catalog is the immutable ruleset. Lookups return nil or an empty slice
// for unknown ids rather than failing.
type Catalog struct {
	warbands    []WarbandTemplate
	equipment   map[string]EquipmentCategory
	skills      map[string]SkillCategory
	spells      map[string]SpellList
	injuries    InjuryTables
	advancement AdvancementConfig
}

// Warbands returns all warband templates in document order.
func (c *Catalog) Warbands() []WarbandTemplate {
	return c.warbands
}

// GetWarband returns the warband template with the given id, or nil.
func (c *Catalog) GetWarband(id string) *WarbandTemplate {
	for i := range c.warbands {
		if c.warbands[i].ID == id {
			return &c.warbands[i]
		}
	}
	return nil
}

// GetEquipmentItem returns the item with the given id, or nil. The
// category is not encoded in the id, so all categories are scanned.
func (c *Catalog) GetEquipmentItem(itemID string) *Item {
	for _, cat := range c.equipment {
		for i := range cat.Items {
			if cat.Items[i].ID == itemID {
				return &cat.Items[i]
			}
		}
	}
	return nil
}

// GetEquipmentByCategory returns the items in a category, or an empty
// slice if the category is unknown.
func (c *Catalog) GetEquipmentByCategory(categoryID string) []Item {
	cat, ok := c.equipment[categoryID]
	if !ok {
		return []Item{}
	}
	return cat.Items
}

// GetAllEquipment returns every item across all categories, ordered by
// category id for stable iteration.
func (c *Catalog) GetAllEquipment() []Item {
	categoryIDs := make([]string, 0, len(c.equipment))
	for id := range c.equipment {
		categoryIDs = append(categoryIDs, id)
	}
	sort.Strings(categoryIDs)

	var all []Item
	for _, id := range categoryIDs {
		all = append(all, c.equipment[id].Items...)
	}
	return all
}

// GetSkill returns the skill with the given id, or nil.
func (c *Catalog) GetSkill(skillID string) *Skill {
	for _, cat := range c.skills {
		for i := range cat.Skills {
			if cat.Skills[i].ID == skillID {
				return &cat.Skills[i]
			}
		}
	}
	return nil
}

// GetSkillsByCategory returns the skills in a category, or an empty
// slice if the category is unknown.
func (c *Catalog) GetSkillsByCategory(categoryID string) []Skill {
	cat, ok := c.skills[categoryID]
	if !ok {
		return []Skill{}
	}
	return cat.Skills
}

// GetSpell returns the spell with the given id, or nil.
func (c *Catalog) GetSpell(spellID string) *Spell {
	for _, list := range c.spells {
		for i := range list.Spells {
			if list.Spells[i].ID == spellID {
				return &list.Spells[i]
			}
		}
	}
	return nil
}

// GetSpellsByList returns the spells in a list, or an empty slice if the
// list is unknown.
func (c *Catalog) GetSpellsByList(listID string) []Spell {
	list, ok := c.spells[listID]
	if !ok {
		return []Spell{}
	}
	return list.Spells
}

// HeroInjuries returns the hero serious-injury table.
func (c *Catalog) HeroInjuries() []InjuryEntry {
	return c.injuries.HeroInjuries
}

// HenchmanInjuries returns the henchman serious-injury table.
func (c *Catalog) HenchmanInjuries() []InjuryEntry {
	return c.injuries.HenchmanInjuries
}

// ExpThresholds returns the configured hero experience thresholds.
func (c *Catalog) ExpThresholds() []int {
	return c.advancement.HeroAdvancement.ExpThresholds
}

// GetExpThreshold returns the cumulative experience required to reach
// the given level, where level indexes the threshold table from zero.
// Levels beyond the table extrapolate linearly at 10 experience per
// level past the last authored threshold.
func (c *Catalog) GetExpThreshold(level int) int {
	thresholds := c.advancement.HeroAdvancement.ExpThresholds
	if level < len(thresholds) {
		return thresholds[level]
	}
	last := thresholds[len(thresholds)-1]
	return last + (level-len(thresholds)+1)*10
}

// GetMaxStat returns the configured cap for a stat, defaulting to 10
// for unconfigured stats.
func (c *Catalog) GetMaxStat(stat string) int {
	if maxVal, ok := c.advancement.MaxStats[stat]; ok {
		return maxVal
	}
	return defaultMaxStat
}
