package entities

// StatNames lists warrior stats in profile order.
var StatNames = []string{"M", "WS", "BS", "S", "T", "W", "I", "A", "Ld"}

// Warrior is a single hero or a henchman group. Heroes and henchmen
// share the same shape; henchmen additionally carry a group size
// multiplier. Reference lists are always present, never nil.
type Warrior struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	TypeName string `json:"typeName"`
	Name     string `json:"name"`
	IsHero   bool   `json:"isHero"`

	// Stats is the current profile; BaseStats is the immutable snapshot
	// taken from the template at recruitment, kept to detect and display
	// advancements.
	Stats     map[string]int `json:"stats"`
	BaseStats map[string]int `json:"baseStats"`

	Equipment []Reference `json:"equipment"`
	Skills    []Reference `json:"skills"`
	Spells    []Reference `json:"spells"`
	Injuries  []Injury    `json:"injuries"`

	Experience       int  `json:"experience"`
	AdvancementCount int  `json:"advancementCount"`
	MissNextGame     bool `json:"missNextGame"`

	// Cost is the recruitment cost from the template, excluding equipment.
	Cost         int      `json:"cost"`
	SpecialRules []string `json:"specialRules"`

	// GroupSize is 1 or more for henchman groups, omitted for heroes.
	GroupSize int `json:"groupSize,omitempty"`
}

// Reference points at a catalog entity by id, with the display name
// denormalized at add time.
type Reference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Injury is a lasting injury assigned by the player from the catalog's
// injury tables. The name is free text; the engine does not validate it.
type Injury struct {
	Name       string `json:"name"`
	GameNumber int    `json:"gameNumber"`
}

// HasSkill reports whether the warrior already knows the given skill.
func (w *Warrior) HasSkill(skillID string) bool {
	for _, s := range w.Skills {
		if s.ID == skillID {
			return true
		}
	}
	return false
}

// HasSpell reports whether the warrior already knows the given spell.
func (w *Warrior) HasSpell(spellID string) bool {
	for _, s := range w.Spells {
		if s.ID == spellID {
			return true
		}
	}
	return false
}

// Normalize fills in collections a hand-edited or older exported
// document may omit, so later mutations never hit a nil map or slice.
func (w *Warrior) Normalize() {
	if w.Stats == nil {
		w.Stats = map[string]int{}
	}
	if w.BaseStats == nil {
		w.BaseStats = map[string]int{}
	}
	if w.Equipment == nil {
		w.Equipment = []Reference{}
	}
	if w.Skills == nil {
		w.Skills = []Reference{}
	}
	if w.Spells == nil {
		w.Spells = []Reference{}
	}
	if w.Injuries == nil {
		w.Injuries = []Injury{}
	}
}

// EffectiveGroupSize returns the group multiplier, treating an unset
// size as a single fighter.
func (w *Warrior) EffectiveGroupSize() int {
	if w.GroupSize < 1 {
		return 1
	}
	return w.GroupSize
}
