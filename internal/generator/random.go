// Package generator implements the name, tagline and logo engines.
//
// Every engine draws randomness from a Source that yields uniform values in
// [0, 1). Index selection is floor(value * length), so a scripted Source makes
// every draw reproducible in tests.
package generator

import (
	"math/rand/v2"
	"sync"
	"time"
)

// pcgStream is the fixed second PCG seed word; only the first word varies.
const pcgStream = 0x9e3779b97f4a7c15

// Source yields uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// RandomElement returns a uniformly chosen element of seq.
// It panics if seq is empty.
func RandomElement[T any](src Source, seq []T) T {
	if len(seq) == 0 {
		panic("generator: RandomElement called with an empty sequence")
	}

	return seq[index(src, len(seq))]
}

// Shuffle returns a uniformly permuted copy of seq using Fisher-Yates,
// walking from the last index down to 1. seq is not modified.
func Shuffle[T any](src Source, seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)

	for i := len(out) - 1; i > 0; i-- {
		j := index(src, i+1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// index maps one draw onto [0, n).
func index(src Source, n int) int {
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}

	return i
}

// lockedSource serializes access to a math/rand/v2 generator so one Engine can
// serve concurrent requests.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a goroutine-safe Source. A zero seed seeds from the clock.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &lockedSource{rng: rand.New(rand.NewPCG(seed, pcgStream))}
}

// Float64 implements Source.
func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64()
}
