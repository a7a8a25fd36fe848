package maze

// ExtractWalls covers every wall cell of g with disjoint strips one cell thick.
//
// Cells are scanned column by column. Each wall cell not yet covered seeds
// the longer of its rightward and downward runs, preferring the horizontal
// run on ties, and the run's cells are consumed. The cover is exact but not
// guaranteed to use the fewest strips.
func ExtractWalls(g *Grid) []Wall {
	work := g.withSentinels()
	walls := []Wall{}

	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			if !work.IsWall(y, x) {
				continue
			}

			horizontal := work.horizontalRun(y, x)
			vertical := work.verticalRun(y, x)

			var wall Wall
			if horizontal >= vertical {
				wall = Wall{X: x, Y: y, Width: horizontal, Height: 1}
			} else {
				wall = Wall{X: x, Y: y, Width: 1, Height: vertical}
			}
			walls = append(walls, wall)

			// Consume the strip so none of its cells seeds another wall.
			for _, c := range wall.Cells() {
				work.setWall(c, false)
			}
		}
	}

	return walls
}

// withSentinels copies g with an extra floor column on the right and an extra
// floor row at the bottom, so runs always stop inside the copy.
func (g *Grid) withSentinels() *Grid {
	cells := make([][]Cell, g.Height+1)
	for y := range cells {
		cells[y] = make([]Cell, g.Width+1)
		if y < g.Height {
			copy(cells[y], g.cells[y])
		}
	}
	return &Grid{Width: g.Width + 1, Height: g.Height + 1, cells: cells}
}

// horizontalRun counts the contiguous walls starting at (y, x) with
// increasing x.
func (g *Grid) horizontalRun(y, x int) int {
	n := 0
	for g.cells[y][x+n].Wall {
		n++
	}
	return n
}

// verticalRun counts the contiguous walls starting at (y, x) with
// increasing y.
func (g *Grid) verticalRun(y, x int) int {
	n := 0
	for g.cells[y+n][x].Wall {
		n++
	}
	return n
}
