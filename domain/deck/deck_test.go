package deck

import (
	"testing"

	"github.com/luca-patrignani/bridge-trainer/domain/bridge"
)

func TestNewDeck(t *testing.T) {
	cards := New()
	if len(cards) != Size {
		t.Fatalf("expected %d cards, got %d", Size, len(cards))
	}
	seen := make(map[bridge.Card]bool)
	hcp := 0
	for _, c := range cards {
		if seen[c] {
			t.Fatalf("duplicate card %s", c)
		}
		seen[c] = true
		hcp += c.HCP()
	}
	if hcp != 40 {
		t.Fatalf("expected 40 HCP, got %d", hcp)
	}
}

func TestDeal(t *testing.T) {
	deal := NewSeededDealer([]byte("board one")).Deal()
	seen := make(map[bridge.Card]bool)
	hcp := 0
	for _, seat := range bridge.Seats {
		h := deal.Hand(seat)
		if h.Len() != bridge.HandSize {
			t.Fatalf("%s holds %d cards", seat, h.Len())
		}
		shape := h.Shape()
		if shape[0]+shape[1]+shape[2]+shape[3] != bridge.HandSize {
			t.Fatalf("%s: shape %v does not sum to 13", seat, shape)
		}
		for _, c := range h.Cards() {
			if seen[c] {
				t.Fatalf("card %s dealt twice", c)
			}
			seen[c] = true
		}
		hcp += h.HCP()
	}
	if len(seen) != Size {
		t.Fatalf("expected %d distinct cards, got %d", Size, len(seen))
	}
	if hcp != 40 {
		t.Fatalf("expected 40 HCP around the table, got %d", hcp)
	}
}

func TestSeededDealsAreReproducible(t *testing.T) {
	a := NewSeededDealer([]byte("same")).Deal()
	b := NewSeededDealer([]byte("same")).Deal()
	c := NewSeededDealer([]byte("other")).Deal()
	same, different := true, false
	for _, seat := range bridge.Seats {
		if a.Hand(seat).String() != b.Hand(seat).String() {
			same = false
		}
		if a.Hand(seat).String() != c.Hand(seat).String() {
			different = true
		}
	}
	if !same {
		t.Fatal("equal seeds must give equal deals")
	}
	if !different {
		t.Fatal("different seeds gave the same deal")
	}
}

func TestRandomDealer(t *testing.T) {
	deal := NewDealer(nil).Deal()
	for _, seat := range bridge.Seats {
		if deal.Hand(seat).Len() != bridge.HandSize {
			t.Fatalf("%s holds %d cards", seat, deal.Hand(seat).Len())
		}
	}
}

// TestShuffleIsUniform checks that every permutation of three cards shows up
// about equally often.
func TestShuffleIsUniform(t *testing.T) {
	d := NewSeededDealer([]byte("uniform"))
	base := New()[:3]
	counts := make(map[string]int)
	const trials = 6000
	for i := 0; i < trials; i++ {
		cards := append([]bridge.Card(nil), base...)
		d.Shuffle(cards)
		key := cards[0].Notation() + cards[1].Notation() + cards[2].Notation()
		counts[key]++
	}
	if len(counts) != 6 {
		t.Fatalf("expected 6 permutations, got %d", len(counts))
	}
	for perm, n := range counts {
		if n < trials/6*7/10 || n > trials/6*13/10 {
			t.Errorf("permutation %s seen %d times out of %d", perm, n, trials)
		}
	}
}
