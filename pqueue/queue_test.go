package pqueue

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	t.Run("Empty queue", func(t *testing.T) {
		q := New[string]()

		v, ok := q.Dequeue()
		assert.False(t, ok)
		assert.Empty(t, v)

		v, ok = q.Peek()
		assert.False(t, ok)
		assert.Empty(t, v)
		assert.Equal(t, 0, q.Size())
	})

	t.Run("Lowest priority first", func(t *testing.T) {
		q := New[string]()
		q.Enqueue(3, "c")
		q.Enqueue(-2, "a")
		q.Enqueue(0, "b")

		head, ok := q.Peek()
		require.True(t, ok)
		assert.Equal(t, "a", head)
		assert.Equal(t, 3, q.Size())

		var got []string
		for q.Size() > 0 {
			v, ok := q.Dequeue()
			require.True(t, ok)
			got = append(got, v)
		}
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("Ties keep insertion order", func(t *testing.T) {
		q := New[int]()
		for i := 0; i < 10; i++ {
			q.Enqueue(-1, i)
		}
		for want := 0; want < 10; want++ {
			v, ok := q.Dequeue()
			require.True(t, ok)
			assert.Equal(t, want, v)
		}
	})

	t.Run("Peek does not remove", func(t *testing.T) {
		q := New[int]()
		q.Enqueue(1, 7)
		for i := 0; i < 3; i++ {
			v, ok := q.Peek()
			require.True(t, ok)
			assert.Equal(t, 7, v)
		}
		assert.Equal(t, 1, q.Size())
	})
}

func TestQueueOrdering(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	q := New[float64]()
	for i := 0; i < 500; i++ {
		p := float64(rng.IntN(50) - 25)
		q.Enqueue(p, p)
	}

	prev := -1e9
	for size := q.Size(); size > 0; size-- {
		v, ok := q.Dequeue()
		require.True(t, ok)
		assert.GreaterOrEqual(t, v, prev)
		assert.Equal(t, size-1, q.Size())
		prev = v
	}

	_, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Size())
}
