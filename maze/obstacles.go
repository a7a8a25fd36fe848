package maze

import (
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"
)

// PlaceObstacles picks up to count floor cells for obstacles. No two picked
// cells are orthogonal neighbors and none is in ignore. Candidates are tried
// in an order shuffled by rng; a nil rng uses a randomly seeded source.
// It never fails: a small maze simply gets fewer obstacles.
func PlaceObstacles(g *Grid, ignore []Coordinate, count int, rng *rand.Rand) []Coordinate {
	obstacles := []Coordinate{}
	if count <= 0 {
		return obstacles
	}

	ignored := mapset.New[Coordinate]()
	for _, c := range ignore {
		ignored.Put(c)
	}

	var candidates []Coordinate
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Coordinate{X: x, Y: y}
			if !g.IsWall(y, x) && !ignored.Has(c) {
				candidates = append(candidates, c)
			}
		}
	}

	if rng == nil {
		rng = newRand()
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	placed := mapset.New[Coordinate]()
	for _, c := range candidates {
		if len(obstacles) >= count {
			break
		}
		if anyIn(placed, g.Neighbors(c.Y, c.X)) {
			continue
		}
		placed.Put(c)
		obstacles = append(obstacles, c)
	}

	return obstacles
}

// anyIn reports whether any of cells is in set.
func anyIn(set mapset.Set[Coordinate], cells []Coordinate) bool {
	for _, c := range cells {
		if set.Has(c) {
			return true
		}
	}
	return false
}
