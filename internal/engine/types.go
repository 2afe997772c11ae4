package engine

import (
	"github.com/skirmishforge/warband-api/internal/catalog"
	"github.com/skirmishforge/warband-api/internal/entities"
)

// NewWarriorInput defines the request for constructing a warrior
type NewWarriorInput struct {
	// WarriorID is assigned by the caller; the engine does not generate ids.
	WarriorID string
	// Warband supplies the hero and henchman templates to draw from.
	Warband      *catalog.WarbandTemplate
	TemplateType string
	IsHero       bool
}

// NewWarriorOutput defines the response for constructing a warrior
type NewWarriorOutput struct {
	Warrior *entities.Warrior
}
