// Package roster provides the interface for roster persistence
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=rostermock github.com/skirmishforge/warband-api/internal/repositories/roster Repository

import (
	"context"

	"github.com/skirmishforge/warband-api/internal/entities"
)

// Repository defines the interface for roster persistence. The store is
// a key-value collection of rosters keyed by roster id, with exclusive
// single-writer access assumed: Update is an unconditional last-write-wins
// overwrite.
type Repository interface {
	// Create stores a new roster.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a roster with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a roster by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the roster doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update overwrites a roster, inserting it if absent
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a roster by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the roster doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves all stored rosters ordered by creation time
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for storing a new roster
type CreateInput struct {
	Roster *entities.Roster
}

// CreateOutput defines the output for storing a new roster
type CreateOutput struct {
	Roster *entities.Roster
}

// GetInput defines the input for getting a roster
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a roster
type GetOutput struct {
	Roster *entities.Roster
}

// UpdateInput defines the input for overwriting a roster
type UpdateInput struct {
	Roster *entities.Roster
}

// UpdateOutput defines the output for overwriting a roster
type UpdateOutput struct {
	Roster *entities.Roster
}

// DeleteInput defines the input for deleting a roster
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a roster
type DeleteOutput struct{}

// ListInput defines the input for listing rosters
type ListInput struct{}

// ListOutput defines the output for listing rosters
type ListOutput struct {
	Rosters []*entities.Roster
}
