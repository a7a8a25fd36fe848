package maze

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Stats summarizes the floor layout of a grid.
type Stats struct {
	Floors     int `json:"floors" bson:"floors"`         // number of floor cells
	Walls      int `json:"walls" bson:"walls"`           // number of wall cells
	Reachable  int `json:"reachable" bson:"reachable"`   // floor cells connected to start, start included
	Components int `json:"components" bson:"components"` // connected floor regions
	DeadEnds   int `json:"deadEnds" bson:"deadEnds"`     // floor cells with exactly one floor neighbor
}

// Connected reports whether every floor cell is reachable from the start.
func (s Stats) Connected() bool {
	return s.Floors > 0 && s.Reachable == s.Floors
}

// floorGraph builds the undirected graph of floor cells, with node IDs equal
// to the cells' row-major index and an edge between orthogonal floor
// neighbors.
func floorGraph(g *Grid) *simple.UndirectedGraph {
	fg := simple.NewUndirectedGraph()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsWall(y, x) {
				fg.AddNode(simple.Node(g.index(Coordinate{X: x, Y: y})))
			}
		}
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Coordinate{X: x, Y: y}
			if g.IsWall(y, x) {
				continue
			}
			// Right and down are enough to see every edge once.
			for _, n := range []Coordinate{{X: x + 1, Y: y}, {X: x, Y: y + 1}} {
				if g.IsFloor(n) {
					fg.SetEdge(simple.Edge{F: simple.Node(g.index(c)), T: simple.Node(g.index(n))})
				}
			}
		}
	}

	return fg
}

// Analyze computes floor statistics of g as seen from start. Reachable is 0
// when start is not a floor cell.
func Analyze(g *Grid, start Coordinate) Stats {
	fg := floorGraph(g)
	stats := Stats{
		Floors: fg.Nodes().Len(),
	}
	stats.Walls = g.Width*g.Height - stats.Floors

	components := topo.ConnectedComponents(fg)
	stats.Components = len(components)

	if g.IsFloor(start) {
		startID := int64(g.index(start))
		for _, component := range components {
			for _, n := range component {
				if n.ID() == startID {
					stats.Reachable = len(component)
				}
			}
		}
	}

	nodes := fg.Nodes()
	for nodes.Next() {
		if fg.From(nodes.Node().ID()).Len() == 1 {
			stats.DeadEnds++
		}
	}

	return stats
}
