/*
Package maze generates rectangular wall/floor mazes and derives level data
from them.

A Grid holds Height rows of Width cells, indexed [y][x]. Generate carves a
connected maze into a grid, LongestPath finds a long dead-ending route from a
start cell, ExtractWalls merges wall cells into thin rectangular strips and
PlaceObstacles scatters non-adjacent obstacles over the floor. Create runs the
whole pipeline and returns a Descriptor.
*/
package maze

import (
	"fmt"
	"strings"
)

const (
	// MaxDimension caps the width and height of a maze.
	MaxDimension = 200

	wallGlyph  = '#'
	floorGlyph = '-'
)

// Grid is a rectangular matrix of cells.
type Grid struct {
	Width  int      // Width of the grid (number of columns)
	Height int      // Height of the grid (number of rows)
	cells  [][]Cell // cells indexed [y][x]
}

// NewGrid creates a grid of the given dimensions where every cell is a wall.
func NewGrid(width, height int) (*Grid, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Cell{Wall: true}
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
	}, nil
}

// ParseGrid builds a grid from its text rows, '#' for a wall and '-' for a
// floor. It is the inverse of Rows.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimension)
	}

	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), g.Width)
		}
		for x, glyph := range []byte(row) {
			switch glyph {
			case wallGlyph:
				g.cells[y][x].Wall = true
			case floorGlyph:
				g.cells[y][x].Wall = false
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrMalformedGrid, glyph, x, y)
			}
		}
	}

	return g, nil
}

func validateDimensions(width, height int) error {
	if min(width, height) <= 0 || max(width, height) > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return nil
}

// InBound reports whether the row and column lie inside the grid.
func (g *Grid) InBound(y, x int) bool {
	return y >= 0 && y < g.Height && x >= 0 && x < g.Width
}

// At returns the cell at the given row and column.
func (g *Grid) At(y, x int) Cell {
	return g.cells[y][x]
}

// IsWall reports whether the cell at the given row and column is a wall.
func (g *Grid) IsWall(y, x int) bool {
	return g.cells[y][x].Wall
}

// IsFloor reports whether c is inside the grid and walkable.
func (g *Grid) IsFloor(c Coordinate) bool {
	return g.InBound(c.Y, c.X) && !g.cells[c.Y][c.X].Wall
}

func (g *Grid) setWall(c Coordinate, wall bool) {
	g.cells[c.Y][c.X].Wall = wall
}

// index maps a coordinate to its row-major position.
func (g *Grid) index(c Coordinate) int {
	return c.Y*g.Width + c.X
}

// Neighbors returns the in-bounds orthogonal neighbors of the cell at the
// given row and column, in the order up, right, down, left. Diagonals and
// wraparound are never included.
func (g *Grid) Neighbors(y, x int) []Coordinate {
	result := make([]Coordinate, 0, len(directions))
	for _, d := range directions {
		n := Coordinate{X: x + d.X, Y: y + d.Y}
		if g.InBound(n.Y, n.X) {
			result = append(result, n)
		}
	}
	return result
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.Height)
	for y := range cells {
		cells[y] = make([]Cell, g.Width)
		copy(cells[y], g.cells[y])
	}
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Rows renders each row of the grid as text, '#' for a wall and '-' for a
// floor.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x].Wall {
				sb.WriteByte(wallGlyph)
			} else {
				sb.WriteByte(floorGlyph)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n") + "\n"
}
