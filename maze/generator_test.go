package maze

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		cfg  GenerateConfig
		want error
	}{
		{"zero width", GenerateConfig{Width: 0, Height: 4}, ErrInvalidDimension},
		{"negative height", GenerateConfig{Width: 4, Height: -2}, ErrInvalidDimension},
		{"start right of grid", GenerateConfig{Width: 4, Height: 4, Start: Coordinate{X: 4, Y: 0}}, ErrStartOutOfBounds},
		{"start above grid", GenerateConfig{Width: 4, Height: 4, Start: Coordinate{X: 0, Y: -1}}, ErrStartOutOfBounds},
		{"unknown algorithm", GenerateConfig{Width: 4, Height: 4, Algorithm: "prim"}, ErrUnknownAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Generate(tt.cfg)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, g)
		})
	}
}

func TestGenerateConnectivity(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 1}, {1, 7}, {5, 5}, {10, 10}, {17, 9}, {30, 24}}
	starts := func(w, h int) []Coordinate {
		return []Coordinate{{X: 0, Y: 0}, {X: w / 2, Y: h / 2}, {X: w - 1, Y: h - 1}}
	}

	for _, algorithm := range []Algorithm{Backtracker, Wilson} {
		for _, size := range sizes {
			for _, start := range starts(size[0], size[1]) {
				for seed := uint64(1); seed <= 5; seed++ {
					name := fmt.Sprintf("%s/%dx%d/%d,%d/seed%d", algorithm, size[0], size[1], start.X, start.Y, seed)
					t.Run(name, func(t *testing.T) {
						g, err := Generate(GenerateConfig{
							Width:     size[0],
							Height:    size[1],
							Start:     start,
							Algorithm: algorithm,
							Rand:      NewRand(seed),
						})
						require.NoError(t, err)
						assert.Equal(t, size[0], g.Width)
						assert.Equal(t, size[1], g.Height)
						assert.True(t, g.IsFloor(start), "start must be a floor")

						stats := Analyze(g, start)
						assert.True(t, stats.Connected(), "stats %+v", stats)
						assert.Equal(t, 1, stats.Components)
					})
				}
			}
		}
	}
}

func TestGenerateBacktrackerIsTree(t *testing.T) {
	g, err := Generate(GenerateConfig{Width: 20, Height: 15, Rand: NewRand(3)})
	require.NoError(t, err)

	// A connected graph is a tree when it has one edge fewer than nodes.
	fg := floorGraph(g)
	assert.Equal(t, fg.Nodes().Len()-1, fg.Edges().Len())
}

func TestGenerateSmallGrids(t *testing.T) {
	one, err := Generate(GenerateConfig{Width: 1, Height: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"-"}, one.Rows())

	two, err := Generate(GenerateConfig{Width: 2, Height: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"--"}, two.Rows())
}

func TestGenerateDeterministic(t *testing.T) {
	for _, algorithm := range []Algorithm{Backtracker, Wilson} {
		a, err := Generate(GenerateConfig{Width: 12, Height: 12, Algorithm: algorithm, Rand: NewRand(42)})
		require.NoError(t, err)
		b, err := Generate(GenerateConfig{Width: 12, Height: 12, Algorithm: algorithm, Rand: NewRand(42)})
		require.NoError(t, err)
		assert.Equal(t, a.Rows(), b.Rows(), "algorithm %s", algorithm)
	}
}

func TestGeneratePrint(t *testing.T) {
	var out bytes.Buffer
	g, err := Generate(GenerateConfig{Width: 6, Height: 4, Print: true, Output: &out, Rand: NewRand(9)})
	require.NoError(t, err)
	assert.Equal(t, g.String(), out.String())

	out.Reset()
	_, err = Generate(GenerateConfig{Width: 6, Height: 4, Output: &out, Rand: NewRand(9)})
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, Backtracker, a)

	a, err = ParseAlgorithm("wilson")
	require.NoError(t, err)
	assert.Equal(t, Wilson, a)

	_, err = ParseAlgorithm("eller")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
