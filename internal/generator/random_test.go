package generator

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays values in order and wraps around.
type scriptedSource struct {
	values []float64
	next   int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++

	return v
}

func zeros() *scriptedSource { return &scriptedSource{values: []float64{0}} }

func TestRandomElement(t *testing.T) {
	seq := []string{"a", "b", "c", "d"}

	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero picks first", 0, "a"},
		{"just below a quarter", 0.2499, "a"},
		{"a quarter picks second", 0.25, "b"},
		{"middle", 0.5, "c"},
		{"close to one picks last", 0.9999999, "d"},
		{"out of range is clamped", 1, "d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scriptedSource{values: []float64{tt.value}}
			assert.Equal(t, tt.want, RandomElement(src, seq))
		})
	}
}

func TestRandomElement_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() {
		RandomElement(zeros(), []int{})
	})
}

func TestShuffle_Deterministic(t *testing.T) {
	// i=3 j=0, i=2 j=0, i=1 j=0
	got := Shuffle(zeros(), []int{1, 2, 3, 4})
	assert.Equal(t, []int{2, 3, 4, 1}, got)
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c"}

	out := Shuffle(NewSource(7), in)

	assert.Equal(t, []string{"a", "b", "c"}, in)
	assert.ElementsMatch(t, in, out)
}

func TestShuffle_Empty(t *testing.T) {
	assert.Empty(t, Shuffle(zeros(), []int{}))
	assert.Len(t, Shuffle(zeros(), []int{9}), 1)
}

func TestShuffle_ReachesEveryPermutation(t *testing.T) {
	src := NewSource(42)
	seen := make(map[string]int)

	for range 2000 {
		p := Shuffle(src, []string{"a", "b", "c"})
		require.Len(t, p, 3)
		seen[strings.Join(p, "")]++
	}

	assert.Len(t, seen, 6)
	for perm, n := range seen {
		assert.Greater(t, n, 200, "permutation %s is under-represented", perm)
	}
}

func TestNewSource_Seeded(t *testing.T) {
	a := NewSource(99)
	b := NewSource(99)

	for range 10 {
		v := a.Float64()
		assert.Equal(t, v, b.Float64())
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestNewSource_ConcurrentUse(t *testing.T) {
	src := NewSource(0)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = src.Float64()
			}
		}()
	}
	wg.Wait()
}
