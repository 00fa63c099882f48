package selection

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/mindlog/internal/blob"
	"github.com/jmylchreest/mindlog/internal/config"
	"github.com/jmylchreest/mindlog/internal/emotion"
	"github.com/jmylchreest/mindlog/internal/grain"
	"github.com/jmylchreest/mindlog/internal/random"
)

// ErrOutOfRange is returned when toggling an index outside the emotion table.
var ErrOutOfRange = errors.New("emotion index out of range")

// Card is everything a presentation layer needs to draw one frame.
type Card struct {
	// Active holds the selected indices in insertion order.
	Active []int

	// Result holds the blobs and dominant emotion. For a placeholder card
	// there are no blobs and the dominant is the fallback emotion.
	Result blob.Result

	// Params are the parameters the card was generated with.
	Params config.Params

	// Grain is the noise overlay painted for this card.
	Grain *grain.Surface

	// Placeholder is set when nothing is selected.
	Placeholder bool
}

// Label returns the dominant label, or "" for a placeholder card.
func (c Card) Label() string {
	if c.Placeholder {
		return ""
	}
	return c.Result.Dominant.Label()
}

// Store owns the selection, the parameters and the current card.
type Store struct {
	mu     sync.Mutex
	src    random.Source
	logger hclog.Logger
	set    Set
	params config.Params
	card   Card
}

// NewStore creates a store with an empty selection and an initial placeholder card.
func NewStore(src random.Source, params config.Params, logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	s := &Store{
		src:    src,
		logger: logger.Named("selection"),
		params: params,
	}
	s.regenerate()
	return s
}

// Card returns the current card.
func (s *Store) Card() Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.card
}

// Selection returns the current selection.
func (s *Store) Selection() Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set
}

// Params returns the current parameters.
func (s *Store) Params() config.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Toggle flips emotion i in the selection and regenerates if anything changed.
func (s *Store) Toggle(i int) error {
	if !emotion.Valid(i) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.set.Toggle(i)
	if next.Equal(s.set) {
		s.logger.Debug("toggle ignored, last active emotion", "index", i)
		return nil
	}
	s.set = next
	s.logger.Debug("toggled", "index", i, "active", s.set.String())
	s.regenerate()
	return nil
}

// Select toggles each index in order, as a sequence of palette clicks would.
func (s *Store) Select(indices ...int) error {
	for _, i := range indices {
		if err := s.Toggle(i); err != nil {
			return err
		}
	}
	return nil
}

// Generate replaces the selection with one random emotion and regenerates.
func (s *Store) Generate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set = GenerateRandom(s.src)
	s.logger.Debug("generated", "active", s.set.String())
	s.regenerate()
}

// Reset clears the selection, leaving a placeholder card.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set = Reset()
	s.logger.Debug("reset")
	s.regenerate()
}

// SetBlobCount changes the blob count and regenerates.
func (s *Store) SetBlobCount(n int) error {
	return s.updateParams(func(p *config.Params) { p.BlobCount = n }, true)
}

// SetBlurMax changes the blur ceiling and regenerates.
func (s *Store) SetBlurMax(v float64) error {
	return s.updateParams(func(p *config.Params) { p.BlurMax = v }, true)
}

// SetGrain changes the grain intensity and repaints the grain only.
func (s *Store) SetGrain(v float64) error {
	return s.updateParams(func(p *config.Params) { p.Grain = v }, false)
}

func (s *Store) updateParams(apply func(*config.Params), blobs bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.params
	apply(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	if next == s.params {
		return nil
	}
	s.params = next

	if blobs {
		s.regenerate()
		return nil
	}
	s.card.Params = s.params
	s.card.Grain = s.paintGrain()
	return nil
}

// regenerate recomputes the card. Callers hold s.mu, except NewStore.
func (s *Store) regenerate() {
	card := Card{
		Active: s.set.Indices(),
		Params: s.params,
	}

	if s.set.Empty() {
		card.Placeholder = true
		card.Result = blob.Result{Blobs: []blob.Blob{}, Dominant: emotion.Fallback()}
	} else {
		card.Result = blob.Generate(s.src, card.Active, s.params.BlobCount, s.params.BlurMax)
		s.logger.Trace("regenerated", "dominant", card.Result.Dominant.Name, "blobs", len(card.Result.Blobs))
	}

	s.card = card
	// Grain follows every blob change.
	s.card.Grain = s.paintGrain()
}

// paintGrain paints a fresh surface so earlier cards keep their own grain.
func (s *Store) paintGrain() *grain.Surface {
	surface := grain.NewSurface()
	grain.Paint(s.src, surface, s.params.GrainOpacity())
	return surface
}
