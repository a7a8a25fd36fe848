package maze

import (
	"io"
	"math/rand/v2"
)

const (
	DefaultWidth     = 10
	DefaultHeight    = 10
	DefaultObstacles = 20
)

// Config holds the parameters of Create.
type Config struct {
	Width     int
	Height    int
	Start     Coordinate
	Print     bool      // write the generated grid as text to Output
	Output    io.Writer // defaults to os.Stderr
	Algorithm Algorithm
	Obstacles *int // maximum number of obstacles to place, nil means DefaultObstacles

	// RequireNonTrivial makes Create fail with ErrDisconnectedRegion when the
	// start cell has no floor neighbors.
	RequireNonTrivial bool

	Rand *rand.Rand // defaults to a randomly seeded source
}

// DefaultConfig returns a 10x10 maze starting in the top-left corner with up
// to DefaultObstacles obstacles.
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Start:     Coordinate{X: 0, Y: 0},
		Algorithm: Backtracker,
	}
}

// obstacleCap resolves the Obstacles override.
func (c *Config) obstacleCap() int {
	if c.Obstacles == nil {
		return DefaultObstacles
	}
	return *c.Obstacles
}

// Descriptor is everything a renderer or physics engine needs to build a
// level. Exit is always the last cell of ExitPath.
type Descriptor struct {
	Walls     []Wall       `json:"walls" bson:"walls"`
	Start     Coordinate   `json:"start" bson:"start"`
	Exit      Coordinate   `json:"exit" bson:"exit"`
	ExitPath  []Coordinate `json:"exitPath" bson:"exitPath"`
	Obstacles []Coordinate `json:"obstacles" bson:"obstacles"`
}

// Create generates a maze and assembles its descriptor. A nil cfg uses
// DefaultConfig.
func Create(cfg *Config) (*Descriptor, error) {
	d, _, err := CreateWithGrid(cfg)
	return d, err
}

// CreateWithGrid is Create that also returns the generated grid.
func CreateWithGrid(cfg *Config) (*Descriptor, *Grid, error) {
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}

	rng := cfg.Rand
	if rng == nil {
		rng = newRand()
	}

	grid, err := Generate(GenerateConfig{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Start:     cfg.Start,
		Print:     cfg.Print,
		Output:    cfg.Output,
		Algorithm: cfg.Algorithm,
		Rand:      rng,
	})
	if err != nil {
		return nil, nil, err
	}

	exitPath, err := LongestPath(grid, cfg.Start)
	if err != nil {
		return nil, nil, err
	}
	if cfg.RequireNonTrivial && len(exitPath) < 2 {
		return nil, nil, ErrDisconnectedRegion
	}
	exit := exitPath[len(exitPath)-1]

	obstacles := PlaceObstacles(grid, []Coordinate{cfg.Start, exit}, cfg.obstacleCap(), rng)
	walls := ExtractWalls(grid)

	return &Descriptor{
		Walls:     walls,
		Start:     cfg.Start,
		Exit:      exit,
		ExitPath:  exitPath,
		Obstacles: obstacles,
	}, grid, nil
}
