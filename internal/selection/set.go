// Package selection implements the active-emotion state machine and the
// store that recomputes a card whenever the selection or parameters change.
package selection

import (
	"slices"
	"strconv"
	"strings"

	"github.com/jmylchreest/mindlog/internal/emotion"
	"github.com/jmylchreest/mindlog/internal/random"
)

// Set is an ordered set of active emotion indices. The zero value is empty.
// Transitions return a new Set and never modify the receiver.
type Set struct {
	indices []int
}

// NewSet builds a Set from indices, dropping duplicates.
func NewSet(indices ...int) Set {
	var s Set
	for _, i := range indices {
		if !s.Contains(i) {
			s.indices = append(s.indices, i)
		}
	}
	return s
}

// Toggle adds i when inactive and removes it when active, except that the
// sole remaining member is kept.
func (s Set) Toggle(i int) Set {
	pos := slices.Index(s.indices, i)
	if pos < 0 {
		return Set{indices: append(slices.Clone(s.indices), i)}
	}
	if len(s.indices) == 1 {
		return s
	}
	return Set{indices: slices.Delete(slices.Clone(s.indices), pos, pos+1)}
}

// GenerateRandom returns a singleton holding one uniformly random emotion.
func GenerateRandom(src random.Source) Set {
	return Set{indices: []int{random.Intn(src, emotion.Count)}}
}

// Reset returns the empty set.
func Reset() Set {
	return Set{}
}

// Indices returns a copy of the active indices in insertion order.
func (s Set) Indices() []int {
	return slices.Clone(s.indices)
}

// Contains reports whether i is active.
func (s Set) Contains(i int) bool {
	return slices.Contains(s.indices, i)
}

// Len returns the number of active emotions.
func (s Set) Len() int {
	return len(s.indices)
}

// Empty reports whether nothing is selected.
func (s Set) Empty() bool {
	return len(s.indices) == 0
}

// Equal reports whether both sets hold the same indices in the same order.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.indices, other.indices)
}

// String renders the set as "{0,3}".
func (s Set) String() string {
	parts := make([]string, len(s.indices))
	for i, idx := range s.indices {
		parts[i] = strconv.Itoa(idx)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
