package maze

import (
	"fmt"

	"github.com/beka-birhanu/vinom-labyrinth/pqueue"
)

// pathNode is one step of a partial path. Nodes are never modified after they
// are queued, so branches share their common prefix.
type pathNode struct {
	cell   Coordinate
	prev   *pathNode
	length int
}

func (p *pathNode) extend(c Coordinate) *pathNode {
	return &pathNode{cell: c, prev: p, length: p.length + 1}
}

// coordinates lists the path from its first cell to its last.
func (p *pathNode) coordinates() []Coordinate {
	path := make([]Coordinate, p.length)
	for n := p; n != nil; n = n.prev {
		path[n.length-1] = n.cell
	}
	return path
}

// LongestPath searches for a long simple path from start that ends in a dead
// end. Partial paths are expanded longest first and a cell is claimed by the
// first path that reaches it, so the result is a greedy approximation rather
// than the true longest path. A start without floor neighbors yields the
// one-cell path [start].
func LongestPath(g *Grid, start Coordinate) ([]Coordinate, error) {
	if !g.IsFloor(start) {
		return nil, fmt.Errorf("%w: %+v", ErrStartOutOfBounds, start)
	}

	visited := make([]bool, g.Width*g.Height)
	visited[g.index(start)] = true

	paths := pqueue.New[*pathNode]()
	paths.Enqueue(-1, &pathNode{cell: start, length: 1})

	var longest *pathNode
	for paths.Size() > 0 {
		path, _ := paths.Dequeue()
		if deadEnd := expandPath(g, path, visited, paths); deadEnd {
			longest = path
		}
	}

	return longest.coordinates(), nil
}

// expandPath queues one extension of path per unvisited floor neighbor of its
// last cell, marking those neighbors visited. It reports true, queueing
// nothing, when path has reached a dead end.
func expandPath(g *Grid, path *pathNode, visited []bool, paths *pqueue.Queue[*pathNode]) bool {
	last := path.cell

	var candidates []Coordinate
	for _, n := range g.Neighbors(last.Y, last.X) {
		if !g.IsWall(n.Y, n.X) && !visited[g.index(n)] {
			candidates = append(candidates, n)
		}
	}

	if len(candidates) == 0 {
		return true
	}

	for _, c := range candidates {
		visited[g.index(c)] = true
		next := path.extend(c)
		paths.Enqueue(-float64(next.length), next)
	}
	return false
}
