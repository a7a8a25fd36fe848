package domain

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-labyrinth/maze"
	"github.com/google/uuid"
)

// MaxSeed is the largest seed a level accepts. Seeds are stored as signed
// 64-bit integers.
const MaxSeed = math.MaxInt64

// Level is a generated maze together with the parameters that reproduce it.
type Level struct {
	ID         uuid.UUID       `json:"id" bson:"_id"`
	DesignerID uuid.UUID       `json:"designerId" bson:"designerId"`
	Width      int             `json:"width" bson:"width"`
	Height     int             `json:"height" bson:"height"`
	Algorithm  maze.Algorithm  `json:"algorithm" bson:"algorithm"`
	Seed       uint64          `json:"seed" bson:"seed"`
	Rows       []string        `json:"rows" bson:"rows"`
	Descriptor maze.Descriptor `json:"descriptor" bson:"descriptor"`
	Stats      maze.Stats      `json:"stats" bson:"stats"`
	CreatedAt  time.Time       `json:"createdAt" bson:"createdAt"`
}

// LevelConfig holds the parameters NewLevel generates a level from.
type LevelConfig struct {
	ID         uuid.UUID
	DesignerID uuid.UUID
	Width      int
	Height     int
	Start      maze.Coordinate
	Algorithm  maze.Algorithm
	Obstacles  int
	Seed       uint64
	Print      bool
	Output     io.Writer
}

// LevelRequest is what a designer asks for. Zero Width, Height or Algorithm
// and nil Obstacles or Seed mean "use the default".
type LevelRequest struct {
	Width     int
	Height    int
	Start     maze.Coordinate
	Algorithm string
	Obstacles *int
	Seed      *uint64
}

// RankedLevel is an entry of the level ranking.
type RankedLevel struct {
	LevelID    uuid.UUID
	PathLength int
}

// NewLevel generates the maze described by config. The same config always
// yields the same level. The exit must differ from the start.
func NewLevel(config LevelConfig) (*Level, error) {
	if config.Seed > MaxSeed {
		return nil, fmt.Errorf("%w: %d is above %d", ErrInvalidSeed, config.Seed, uint64(MaxSeed))
	}

	algorithm := config.Algorithm
	if algorithm == "" {
		algorithm = maze.Backtracker
	}

	descriptor, grid, err := maze.CreateWithGrid(&maze.Config{
		Width:             config.Width,
		Height:            config.Height,
		Start:             config.Start,
		Print:             config.Print,
		Output:            config.Output,
		Algorithm:         algorithm,
		Obstacles:         &config.Obstacles,
		RequireNonTrivial: true,
		Rand:              maze.NewRand(config.Seed),
	})
	if err != nil {
		return nil, err
	}

	return &Level{
		ID:         config.ID,
		DesignerID: config.DesignerID,
		Width:      config.Width,
		Height:     config.Height,
		Algorithm:  algorithm,
		Seed:       config.Seed,
		Rows:       grid.Rows(),
		Descriptor: *descriptor,
		Stats:      maze.Analyze(grid, config.Start),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// PathLength is the number of cells on the exit path, start included.
func (l *Level) PathLength() int {
	return len(l.Descriptor.ExitPath)
}

// ASCII renders the level grid one row per line.
func (l *Level) ASCII() string {
	if len(l.Rows) == 0 {
		return ""
	}
	return strings.Join(l.Rows, "\n") + "\n"
}

// Grid parses the stored rows back into a grid.
func (l *Level) Grid() (*maze.Grid, error) {
	return maze.ParseGrid(l.Rows)
}
