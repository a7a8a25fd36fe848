package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-labyrinth/domain"
	"github.com/google/uuid"
)

// DesignerRepo defines the interface for designer persistence operations.
type DesignerRepo interface {
	// Save inserts or updates a designer in the repository.
	// Returns dmn.ErrUsernameConflict when another designer holds the username.
	Save(ctx context.Context, designer *dmn.Designer) error

	// ByID retrieves a designer by their unique ID.
	// Returns dmn.ErrDesignerNotFound if there is no such designer.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Designer, error)

	// ByUsername retrieves a designer by their username.
	// Returns dmn.ErrDesignerNotFound if there is no such designer.
	ByUsername(ctx context.Context, username string) (*dmn.Designer, error)

	// IncrementLevels atomically adds one to the level count of a designer.
	// Returns dmn.ErrDesignerNotFound if there is no such designer.
	IncrementLevels(ctx context.Context, id uuid.UUID) error
}

// LevelRepo defines the interface for level persistence operations.
type LevelRepo interface {
	// Save inserts or replaces a level.
	Save(ctx context.Context, level *dmn.Level) error

	// ByID retrieves a level. Returns dmn.ErrLevelNotFound if there is none.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Level, error)

	// ByDesigner lists the levels of a designer, newest first.
	ByDesigner(ctx context.Context, designerID uuid.UUID) ([]*dmn.Level, error)
}
