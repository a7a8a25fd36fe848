package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertObstacles checks the obstacle invariants against g and ignore.
func assertObstacles(t *testing.T, g *Grid, ignore, obstacles []Coordinate, count int) {
	t.Helper()
	assert.LessOrEqual(t, len(obstacles), max(count, 0))
	for i, a := range obstacles {
		assert.True(t, g.IsFloor(a), "obstacle %+v is not on a floor", a)
		assert.NotContains(t, ignore, a)
		for _, b := range obstacles[i+1:] {
			assert.NotEqual(t, a, b)
			assert.False(t, adjacent(a, b), "obstacles %+v and %+v touch", a, b)
		}
	}
}

func TestPlaceObstacles(t *testing.T) {
	open := mustParse(t,
		"-----",
		"-----",
		"-----",
		"-----",
		"-----",
	)

	t.Run("Non-positive count", func(t *testing.T) {
		for _, n := range []int{0, -3} {
			obstacles := PlaceObstacles(open, nil, n, NewRand(1))
			assert.NotNil(t, obstacles)
			assert.Empty(t, obstacles)
		}
	})

	t.Run("Caps at count", func(t *testing.T) {
		obstacles := PlaceObstacles(open, nil, 3, NewRand(1))
		assert.Len(t, obstacles, 3)
		assertObstacles(t, open, nil, obstacles, 3)
	})

	t.Run("Respects ignore list", func(t *testing.T) {
		ignore := []Coordinate{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 2}}
		for seed := uint64(1); seed <= 20; seed++ {
			obstacles := PlaceObstacles(open, ignore, 25, NewRand(seed))
			assertObstacles(t, open, ignore, obstacles, 25)
			assert.NotEmpty(t, obstacles)
		}
	})

	t.Run("Fewer cells than requested", func(t *testing.T) {
		g := mustParse(t, "#-#", "###")
		obstacles := PlaceObstacles(g, nil, 20, NewRand(2))
		assert.Equal(t, []Coordinate{{X: 1, Y: 0}}, obstacles)

		obstacles = PlaceObstacles(g, []Coordinate{{X: 1, Y: 0}}, 20, NewRand(2))
		assert.Empty(t, obstacles)
	})

	t.Run("Same seed same placement", func(t *testing.T) {
		a := PlaceObstacles(open, nil, 6, NewRand(77))
		b := PlaceObstacles(open, nil, 6, NewRand(77))
		assert.Equal(t, a, b)
	})

	t.Run("Non-square grid", func(t *testing.T) {
		g := mustParse(t, "--------", "--------")
		obstacles := PlaceObstacles(g, nil, 20, NewRand(4))
		assertObstacles(t, g, nil, obstacles, 20)
		for _, o := range obstacles {
			assert.True(t, g.InBound(o.Y, o.X))
		}
	})
}

func TestPlaceObstaclesGenerated(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			g, err := Generate(GenerateConfig{Width: 12, Height: 12, Rand: NewRand(seed)})
			require.NoError(t, err)
			ignore := []Coordinate{{X: 0, Y: 0}}
			obstacles := PlaceObstacles(g, ignore, DefaultObstacles, NewRand(seed))
			assertObstacles(t, g, ignore, obstacles, DefaultObstacles)
		})
	}
}
