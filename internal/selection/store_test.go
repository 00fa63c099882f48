package selection

import (
	"errors"
	"slices"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/mindlog/internal/config"
	"github.com/jmylchreest/mindlog/internal/random"
)

func newTestStore() *Store {
	return NewStore(random.New(), config.Defaults(), hclog.NewNullLogger())
}

func TestStoreInitialPlaceholder(t *testing.T) {
	s := newTestStore()
	card := s.Card()

	if !card.Placeholder {
		t.Error("initial card should be a placeholder")
	}
	if len(card.Result.Blobs) != 0 {
		t.Errorf("placeholder blobs = %d, want 0", len(card.Result.Blobs))
	}
	if card.Result.Dominant.Name != "Vigilance" {
		t.Errorf("placeholder dominant = %s, want Vigilance", card.Result.Dominant.Name)
	}
	if card.Label() != "" {
		t.Errorf("placeholder label = %q, want empty", card.Label())
	}
	if card.Grain == nil || card.Grain.Opacity != "0.55" {
		t.Errorf("placeholder grain should be painted at 0.55, got %+v", card.Grain)
	}
}

func TestStoreToggleRegenerates(t *testing.T) {
	s := newTestStore()

	if err := s.Toggle(0); err != nil {
		t.Fatalf("Toggle(0) error = %v", err)
	}

	card := s.Card()
	if card.Placeholder {
		t.Fatal("card should not be a placeholder after toggle")
	}
	if len(card.Result.Blobs) != 7 {
		t.Errorf("blobs = %d, want 7", len(card.Result.Blobs))
	}
	if card.Result.Dominant.Name != "Rage" {
		t.Errorf("dominant = %s, want Rage", card.Result.Dominant.Name)
	}
	if card.Label() != "RAGE" {
		t.Errorf("label = %q, want RAGE", card.Label())
	}
}

func TestStoreToggleSoleMemberIsNoop(t *testing.T) {
	s := newTestStore()
	if err := s.Toggle(2); err != nil {
		t.Fatal(err)
	}
	before := s.Card()

	if err := s.Toggle(2); err != nil {
		t.Fatal(err)
	}
	after := s.Card()

	if !slices.Equal(after.Active, []int{2}) {
		t.Errorf("active = %v, want [2]", after.Active)
	}
	if after.Grain != before.Grain {
		t.Error("no-op toggle should not regenerate the card")
	}
}

func TestStoreToggleOutOfRange(t *testing.T) {
	s := newTestStore()
	for _, i := range []int{-1, 8} {
		if err := s.Toggle(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Toggle(%d) error = %v, want ErrOutOfRange", i, err)
		}
	}
	if !s.Selection().Empty() {
		t.Error("rejected toggle should not change the selection")
	}
}

func TestStoreGenerateAndReset(t *testing.T) {
	s := newTestStore()
	if err := s.Select(0, 3, 5); err != nil {
		t.Fatal(err)
	}

	s.Generate()
	if s.Selection().Len() != 1 {
		t.Fatalf("selection after Generate = %v, want singleton", s.Selection())
	}
	if s.Card().Placeholder {
		t.Error("generated card should not be a placeholder")
	}

	s.Reset()
	if !s.Selection().Empty() {
		t.Errorf("selection after Reset = %v, want empty", s.Selection())
	}
	if !s.Card().Placeholder {
		t.Error("card after Reset should be a placeholder")
	}
}

func TestStoreGrainChangeKeepsBlobs(t *testing.T) {
	s := newTestStore()
	if err := s.Toggle(4); err != nil {
		t.Fatal(err)
	}
	before := s.Card()

	if err := s.SetGrain(20); err != nil {
		t.Fatalf("SetGrain() error = %v", err)
	}
	after := s.Card()

	if !slices.Equal(before.Result.Blobs, after.Result.Blobs) {
		t.Error("grain change should not regenerate blobs")
	}
	if after.Grain == before.Grain {
		t.Error("grain change should repaint the grain")
	}
	if after.Grain.Opacity != "0.2" {
		t.Errorf("grain opacity = %q, want 0.2", after.Grain.Opacity)
	}
	if after.Params.Grain != 20 {
		t.Errorf("card params grain = %v, want 20", after.Params.Grain)
	}
}

func TestStoreParamChanges(t *testing.T) {
	s := newTestStore()
	if err := s.Toggle(1); err != nil {
		t.Fatal(err)
	}

	if err := s.SetBlobCount(12); err != nil {
		t.Fatalf("SetBlobCount() error = %v", err)
	}
	if got := len(s.Card().Result.Blobs); got != 12 {
		t.Errorf("blobs = %d, want 12", got)
	}

	if err := s.SetBlurMax(20); err != nil {
		t.Fatalf("SetBlurMax() error = %v", err)
	}
	for _, b := range s.Card().Result.Blobs {
		if b.Blur < 7 || b.Blur > 20 {
			t.Errorf("blur = %v, want [7,20]", b.Blur)
		}
	}

	if err := s.SetBlobCount(0); err == nil {
		t.Error("SetBlobCount(0) should fail")
	}
	if s.Params().BlobCount != 12 {
		t.Errorf("invalid change applied, BlobCount = %d", s.Params().BlobCount)
	}
}
