package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-labyrinth/domain"
	"github.com/google/uuid"
)

// LevelService creates levels and looks them up.
type LevelService interface {
	Create(ctx context.Context, designerID uuid.UUID, req dmn.LevelRequest) (*dmn.Level, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Level, error)
	ByDesigner(ctx context.Context, designerID uuid.UUID) ([]*dmn.Level, error)
	Top(ctx context.Context, limit int) ([]dmn.RankedLevel, error)
}
