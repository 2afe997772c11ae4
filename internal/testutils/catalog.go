// Package testutils provides helpers for testing, including a fixture
// ruleset catalog and Redis test helpers.
package testutils

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/skirmishforge/warband-api/internal/catalog"
)

// Fixture ruleset constants, referenced by tests across packages.
const (
	FixtureWarbandID    = "mercenaries"
	FixtureStartingGold = 500
	FixtureMaxWarband   = 4
	FixtureHeroType     = "champion"
	FixtureHeroCost     = 35
	FixtureCaptainType  = "captain"
	FixtureHenchType    = "warrior"
	FixtureHenchCost    = 25
)

// FixtureCatalog builds a small in-memory ruleset with known values:
// experience thresholds [0, 1, 3, 6, 10], stat caps S=10/T=4, one
// warband with a captain (max 1), a champion (max 2), and a henchman
// warrior type.
func FixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	fsys := fstest.MapFS{
		"warbands.json": &fstest.MapFile{Data: []byte(`{
			"warbands": [{
				"id": "mercenaries",
				"name": "Mercenaries",
				"startingGold": 500,
				"maxWarband": 4,
				"heroEquipment": ["melee"],
				"henchmanEquipment": ["melee"],
				"heroes": [
					{
						"type": "captain",
						"name": "Captain",
						"cost": 60,
						"stats": { "M": 4, "WS": 4, "BS": 4, "S": 3, "T": 3, "W": 1, "I": 4, "A": 1, "Ld": 8 },
						"startingExp": 20,
						"max": 1,
						"specialRules": ["Leader"],
						"skillAccess": ["combat"]
					},
					{
						"type": "champion",
						"name": "Champion",
						"cost": 35,
						"stats": { "M": 4, "WS": 4, "BS": 3, "S": 4, "T": 3, "W": 1, "I": 3, "A": 1, "Ld": 7 },
						"startingExp": 0,
						"max": 2,
						"skillAccess": ["combat"],
						"spellList": "lesser_magic"
					}
				],
				"henchmen": [
					{
						"type": "warrior",
						"name": "Warrior",
						"cost": 25,
						"stats": { "M": 4, "WS": 3, "BS": 3, "S": 3, "T": 3, "W": 1, "I": 3, "A": 1, "Ld": 7 }
					}
				]
			}]
		}`)},
		"equipment.json": &fstest.MapFile{Data: []byte(`{
			"categories": {
				"melee": {
					"name": "Melee",
					"items": [
						{ "id": "dagger", "name": "Dagger", "cost": 2 },
						{ "id": "sword", "name": "Sword", "cost": 10 },
						{ "id": "halberd", "name": "Halberd", "cost": 10 }
					]
				}
			}
		}`)},
		"skills.json": &fstest.MapFile{Data: []byte(`{
			"skillCategories": {
				"combat": {
					"name": "Combat",
					"skills": [
						{ "id": "mighty_blow", "name": "Mighty Blow" },
						{ "id": "step_aside", "name": "Step Aside" }
					]
				}
			}
		}`)},
		"injuries.json": &fstest.MapFile{Data: []byte(`{
			"heroInjuries": [{ "roll": "22", "name": "Leg Wound" }],
			"henchmanInjuries": [{ "roll": "1-2", "name": "Dead" }]
		}`)},
		"advancement.json": &fstest.MapFile{Data: []byte(`{
			"heroAdvancement": { "expThresholds": [0, 1, 3, 6, 10] },
			"maxStats": { "T": 4 }
		}`)},
		"spells.json": &fstest.MapFile{Data: []byte(`{
			"spellLists": {
				"lesser_magic": {
					"name": "Lesser Magic",
					"spells": [
						{ "id": "fires_of_uzhul", "name": "Fires of U'Zhul", "difficulty": 7 },
						{ "id": "luck_of_shemtek", "name": "Luck of Shemtek", "difficulty": 6 }
					]
				}
			}
		}`)},
	}

	c, err := catalog.Load(fsys)
	require.NoError(t, err, "failed to load fixture catalog")
	return c
}
