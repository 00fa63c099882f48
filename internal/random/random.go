// Package random provides the injectable source of randomness used by the
// blob generator, the selection store and the grain painter.
package random

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"time"
)

// Source yields uniform floats in [0, 1).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// New returns a non-deterministic source seeded from crypto/rand.
func New() Source {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to the clock if the system entropy source fails.
		now := uint64(time.Now().UnixNano()) // #nosec G115 -- any bit pattern is a valid seed
		binary.LittleEndian.PutUint64(buf[0:8], now)
		binary.LittleEndian.PutUint64(buf[8:16], now^0x9e3779b97f4a7c15)
	}
	// #nosec G404 -- visual randomness, not security sensitive
	return mrand.New(mrand.NewPCG(
		binary.LittleEndian.Uint64(buf[0:8]),
		binary.LittleEndian.Uint64(buf[8:16]),
	))
}

// Range returns a uniform value in [lo, hi).
func Range(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Intn returns a uniform index in [0, n). n must be positive.
func Intn(src Source, n int) int {
	i := int(src.Float64() * float64(n))
	if i >= n {
		// Float64 from a custom source may return exactly 1.
		i = n - 1
	}
	return i
}

// Sequence replays a fixed list of values, cycling when exhausted.
// It is intended for tests that need exact control over sampling.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence returns a Sequence over values. An empty list always yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next value in the sequence.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Calls returns how many values have been drawn.
func (s *Sequence) Calls() int {
	return s.next
}
