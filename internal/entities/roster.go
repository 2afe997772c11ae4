// Package entities defines the warband roster data model. Types here
// are plain data; rules and derived values live in the engine.
package entities

import "time"

// Roster is a player's warband over the course of a campaign.
type Roster struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	WarbandID string           `json:"warbandId"`
	Gold      int              `json:"gold"`
	Wyrdstone int              `json:"wyrdstone"`
	Heroes    []*Warrior       `json:"heroes"`
	Henchmen  []*Warrior       `json:"henchmen"`
	BattleLog []BattleLogEntry `json:"battleLog"`
	Notes     string           `json:"notes"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// BattleLogEntry records one played battle. Number is assigned at
// append time as log length + 1.
type BattleLogEntry struct {
	Number int       `json:"number"`
	Result string    `json:"result"`
	Notes  string    `json:"notes"`
	Date   time.Time `json:"date"`
}

// FindWarrior returns the warrior with the given id from either list,
// or nil if no such warrior is on the roster.
func (r *Roster) FindWarrior(warriorID string) *Warrior {
	for _, w := range r.Heroes {
		if w.ID == warriorID {
			return w
		}
	}
	for _, w := range r.Henchmen {
		if w.ID == warriorID {
			return w
		}
	}
	return nil
}

// RemoveWarrior deletes the warrior with the given id from whichever
// list holds it, reporting whether a warrior was removed. No reference
// to the warrior is kept.
func (r *Roster) RemoveWarrior(warriorID string) bool {
	for i, w := range r.Heroes {
		if w.ID == warriorID {
			r.Heroes = append(r.Heroes[:i], r.Heroes[i+1:]...)
			return true
		}
	}
	for i, w := range r.Henchmen {
		if w.ID == warriorID {
			r.Henchmen = append(r.Henchmen[:i], r.Henchmen[i+1:]...)
			return true
		}
	}
	return false
}

// CountHeroType returns how many heroes of the given template type are
// on the roster, for recruit-limit checks.
func (r *Roster) CountHeroType(templateType string) int {
	count := 0
	for _, h := range r.Heroes {
		if h.Type == templateType {
			count++
		}
	}
	return count
}
