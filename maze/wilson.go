package maze

import "math/rand/v2"

// lattice addresses the cells of a grid that share the parity of an origin
// cell. Two lattice nodes are joined by opening the single cell between them.
type lattice struct {
	grid    *Grid
	originX int
	originY int
	cols    int
	rows    int
}

// move connects two neighboring lattice nodes.
type move struct {
	from Coordinate
	to   Coordinate
}

func newLattice(g *Grid, start Coordinate) *lattice {
	ox, oy := start.X%2, start.Y%2
	return &lattice{
		grid:    g,
		originX: ox,
		originY: oy,
		cols:    (g.Width - ox + 1) / 2,
		rows:    (g.Height - oy + 1) / 2,
	}
}

// node returns the lattice node holding grid cell c.
func (l *lattice) node(c Coordinate) Coordinate {
	return Coordinate{X: (c.X - l.originX) / 2, Y: (c.Y - l.originY) / 2}
}

// cell returns the grid cell of lattice node n.
func (l *lattice) cell(n Coordinate) Coordinate {
	return Coordinate{X: l.originX + 2*n.X, Y: l.originY + 2*n.Y}
}

// randomNode generates a random node within the lattice.
func (l *lattice) randomNode(rng *rand.Rand) Coordinate {
	return Coordinate{X: rng.IntN(l.cols), Y: rng.IntN(l.rows)}
}

// randomUnvisitedNode selects a random node that is not yet part of the maze.
func (l *lattice) randomUnvisitedNode(visited map[Coordinate]struct{}, rng *rand.Rand) Coordinate {
	for {
		n := l.randomNode(rng)
		if _, included := visited[n]; !included {
			return n
		}
	}
}

// neighbors finds all moves from n to an adjacent lattice node.
func (l *lattice) neighbors(n Coordinate) []move {
	var result []move
	for _, d := range directions {
		to := Coordinate{X: n.X + d.X, Y: n.Y + d.Y}
		if to.X >= 0 && to.X < l.cols && to.Y >= 0 && to.Y < l.rows {
			result = append(result, move{from: n, to: to})
		}
	}
	return result
}

// open turns both nodes of m and the cell between them into floor.
func (l *lattice) open(m move) {
	a, b := l.cell(m.from), l.cell(m.to)
	l.grid.setWall(a, false)
	l.grid.setWall(Coordinate{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}, false)
	l.grid.setWall(b, false)
}

// randomWalk walks from a random unvisited node until it hits the maze. It
// returns the walk's start and the last move taken out of every node on the
// walk.
func (l *lattice) randomWalk(visited map[Coordinate]struct{}, rng *rand.Rand) (Coordinate, map[Coordinate]move) {
	visits := make(map[Coordinate]move)
	start := l.randomUnvisitedNode(visited, rng)

	n := start
	for {
		neighbors := l.neighbors(n)
		next := neighbors[rng.IntN(len(neighbors))]
		visits[n] = next
		if _, included := visited[next.to]; included {
			break
		}
		n = next.to
	}

	return start, visits
}

// branch follows the last exits of a walk from start until it reaches the
// maze. The result is the walk with its loops erased; nodes that only lay on
// a loop are not part of it.
func branch(start Coordinate, visits map[Coordinate]move, visited map[Coordinate]struct{}) []move {
	var moves []move
	for n := start; ; {
		if _, included := visited[n]; included {
			return moves
		}
		m := visits[n]
		moves = append(moves, m)
		n = m.to
	}
}

// carveWilson grows a uniform spanning tree over the lattice, rooted at
// start, with Wilson's loop-erased random walks.
func carveWilson(g *Grid, start Coordinate, rng *rand.Rand) {
	l := newLattice(g, start)
	g.setWall(start, false)

	visited := map[Coordinate]struct{}{l.node(start): {}}
	for len(visited) < l.cols*l.rows {
		from, visits := l.randomWalk(visited, rng)
		for _, m := range branch(from, visits, visited) {
			l.open(m)
			visited[m.from] = struct{}{}
		}
	}
}
