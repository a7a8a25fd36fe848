package maze

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
)

// Algorithm names a maze carving strategy.
type Algorithm string

const (
	// Backtracker carves a tree of single-cell corridors by randomized
	// depth-first search. It works for any dimensions.
	Backtracker Algorithm = "backtracker"
	// Wilson carves a uniform spanning tree with loop-erased random walks on
	// the lattice of cells sharing the start cell's parity.
	Wilson Algorithm = "wilson"
)

// ParseAlgorithm maps a name to an Algorithm. An empty name selects
// Backtracker.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case "", Backtracker:
		return Backtracker, nil
	case Wilson:
		return Wilson, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// GenerateConfig holds the parameters of Generate.
type GenerateConfig struct {
	Width     int
	Height    int
	Start     Coordinate
	Print     bool       // write the text rendering to Output
	Output    io.Writer  // defaults to os.Stderr
	Algorithm Algorithm  // defaults to Backtracker
	Rand      *rand.Rand // defaults to a randomly seeded source
}

// NewRand returns a random source fully determined by seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Generate creates a grid and carves a maze into it. The start cell is always
// a floor and every floor cell is reachable from it.
func Generate(cfg GenerateConfig) (*Grid, error) {
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	if !grid.InBound(cfg.Start.Y, cfg.Start.X) {
		return nil, fmt.Errorf("%w: %+v in %dx%d", ErrStartOutOfBounds, cfg.Start, cfg.Width, cfg.Height)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = newRand()
	}

	switch cfg.Algorithm {
	case "", Backtracker:
		carveBacktracker(grid, cfg.Start, rng)
	case Wilson:
		carveWilson(grid, cfg.Start, rng)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
	}

	if cfg.Print {
		out := cfg.Output
		if out == nil {
			out = os.Stderr
		}
		_, _ = io.WriteString(out, grid.String())
	}

	return grid, nil
}

// carveBacktracker turns walls into floor by randomized depth-first search
// from start. A wall is carved only when the cell carving it is its sole
// floor neighbor, so the floor cells form a tree.
func carveBacktracker(g *Grid, start Coordinate, rng *rand.Rand) {
	g.setWall(start, false)
	stack := []Coordinate{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var candidates []Coordinate
		for _, n := range g.Neighbors(cur.Y, cur.X) {
			if g.IsWall(n.Y, n.X) && g.carvable(n, cur) {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) == 0 {
			pop(&stack)
			continue
		}

		next := candidates[rng.IntN(len(candidates))]
		g.setWall(next, false)
		stack = append(stack, next)
	}
}

// carvable reports whether c touches no floor other than from.
func (g *Grid) carvable(c, from Coordinate) bool {
	for _, n := range g.Neighbors(c.Y, c.X) {
		if n != from && !g.IsWall(n.Y, n.X) {
			return false
		}
	}
	return true
}

// pop removes and returns the last element of a stack of coordinates.
func pop(s *[]Coordinate) Coordinate {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
