package level

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-labyrinth/domain"
	"github.com/beka-birhanu/vinom-labyrinth/maze"
)

// CreateLevelRequest asks for a new level. Omitted fields take the server
// defaults.
type CreateLevelRequest struct {
	Width     int              `json:"width" binding:"omitempty,min=1"`
	Height    int              `json:"height" binding:"omitempty,min=1"`
	Start     *maze.Coordinate `json:"start"`
	Algorithm string           `json:"algorithm"`
	Obstacles *int             `json:"obstacles" binding:"omitempty,min=0"`
	Seed      *uint64          `json:"seed"`
}

func (r CreateLevelRequest) toDomain() dmn.LevelRequest {
	req := dmn.LevelRequest{
		Width:     r.Width,
		Height:    r.Height,
		Algorithm: r.Algorithm,
		Obstacles: r.Obstacles,
		Seed:      r.Seed,
	}
	if r.Start != nil {
		req.Start = *r.Start
	}
	return req
}

// LevelResponse is the public view of a level.
type LevelResponse struct {
	ID         string          `json:"id"`
	DesignerID string          `json:"designerId"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Algorithm  string          `json:"algorithm"`
	Seed       uint64          `json:"seed"`
	Rows       []string        `json:"rows"`
	Descriptor maze.Descriptor `json:"descriptor"`
	Stats      maze.Stats      `json:"stats"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func newLevelResponse(l *dmn.Level) LevelResponse {
	return LevelResponse{
		ID:         l.ID.String(),
		DesignerID: l.DesignerID.String(),
		Width:      l.Width,
		Height:     l.Height,
		Algorithm:  string(l.Algorithm),
		Seed:       l.Seed,
		Rows:       l.Rows,
		Descriptor: l.Descriptor,
		Stats:      l.Stats,
		CreatedAt:  l.CreatedAt,
	}
}

// RankedLevelResponse is one entry of the ranking.
type RankedLevelResponse struct {
	LevelID    string `json:"levelId"`
	PathLength int    `json:"pathLength"`
}
