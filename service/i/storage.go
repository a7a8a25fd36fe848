package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-labyrinth/domain"
	"github.com/google/uuid"
)

// LevelCache keeps recently used levels close at hand.
type LevelCache interface {
	// Get returns dmn.ErrLevelNotFound on a miss.
	Get(ctx context.Context, id uuid.UUID) (*dmn.Level, error)
	Set(ctx context.Context, level *dmn.Level) error
}

// LevelRanking orders levels by exit path length.
type LevelRanking interface {
	// Add records a level with its exit path length.
	Add(ctx context.Context, id uuid.UUID, pathLength int) error

	// Top returns up to n levels, longest exit path first.
	Top(ctx context.Context, n int64) ([]dmn.RankedLevel, error)
}
