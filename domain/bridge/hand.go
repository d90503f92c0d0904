package bridge

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// HandSize is the number of cards dealt to each seat.
const HandSize = 13

// ErrMalformedHand is returned when a hand cannot be built or parsed.
var ErrMalformedHand = errors.New("malformed hand")

// Shape is the number of cards held in each suit, indexed by Suit.
type Shape [4]int

// String renders the shape from spades down to clubs, e.g. "4=4=3=2".
func (s Shape) String() string {
	return fmt.Sprintf("%d=%d=%d=%d", s[Spades], s[Hearts], s[Diamonds], s[Clubs])
}

// SuitLength pairs a suit with the number of cards held in it.
type SuitLength struct {
	Suit   Suit
	Length int
}

var balancedPatterns = [][4]int{
	{5, 3, 3, 2},
	{4, 4, 3, 2},
	{4, 3, 3, 3},
}

// Hand is the set of cards held by one seat.
// It is filled once while dealing and read-only afterwards.
type Hand struct {
	cards []Card
}

// NewHand builds a full hand, rejecting duplicates and any count other than 13.
func NewHand(cards ...Card) (*Hand, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("%w: %d cards, want %d", ErrMalformedHand, len(cards), HandSize)
	}
	h := &Hand{cards: make([]Card, 0, HandSize)}
	for _, c := range cards {
		if h.Holds(c) {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrMalformedHand, c)
		}
		h.Add(c)
	}
	return h, nil
}

// Add puts one more card in the hand. Used while dealing.
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in the order they were added.
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// Holds reports whether the hand contains c.
func (h *Hand) Holds(c Card) bool {
	return slices.Contains(h.cards, c)
}

// HCP returns the high-card points of the hand.
func (h *Hand) HCP() int {
	total := 0
	for _, c := range h.cards {
		total += c.HCP()
	}
	return total
}

// Shape returns the suit lengths indexed by suit.
func (h *Hand) Shape() Shape {
	var s Shape
	for _, c := range h.cards {
		s[c.suit]++
	}
	return s
}

// Count returns the number of cards held in suit.
func (h *Hand) Count(suit Suit) int {
	return h.Shape()[suit]
}

// CountRank returns how many cards of the given rank are held, e.g. the number of aces.
func (h *Hand) CountRank(rank Rank) int {
	n := 0
	for _, c := range h.cards {
		if c.rank == rank {
			n++
		}
	}
	return n
}

// Honors returns how many cards of suit are ranked minRank or higher.
func (h *Hand) Honors(suit Suit, minRank Rank) int {
	n := 0
	for _, c := range h.cards {
		if c.suit == suit && c.rank >= minRank {
			n++
		}
	}
	return n
}

// SortedShape returns the suit lengths longest first, without suit identity.
func (h *Hand) SortedShape() [4]int {
	s := [4]int(h.Shape())
	slices.SortFunc(s[:], func(a, b int) int { return b - a })
	return s
}

// LabeledShape returns the suits ordered by length, longest first.
// Suits of equal length are ordered spades, hearts, diamonds, clubs.
func (h *Hand) LabeledShape() [4]SuitLength {
	shape := h.Shape()
	var out [4]SuitLength
	for i, s := range Suits {
		out[i] = SuitLength{Suit: s, Length: shape[s]}
	}
	slices.SortStableFunc(out[:], func(a, b SuitLength) int {
		if a.Length != b.Length {
			return b.Length - a.Length
		}
		return int(b.Suit) - int(a.Suit)
	})
	return out
}

// IsBalanced reports whether the hand is 4-3-3-3, 4-4-3-2 or 5-3-3-2.
func (h *Hand) IsBalanced() bool {
	sorted := h.SortedShape()
	for _, p := range balancedPatterns {
		if sorted == p {
			return true
		}
	}
	return false
}

// BySuit returns the ranks held in each suit, highest first, indexed by suit.
func (h *Hand) BySuit() [4][]Rank {
	var out [4][]Rank
	for _, c := range h.cards {
		out[c.suit] = append(out[c.suit], c.rank)
	}
	for i := range out {
		slices.SortFunc(out[i], func(a, b Rank) int { return int(b) - int(a) })
	}
	return out
}

// String renders the hand in notation, spades first: "AKQJ|T987|6543|2".
func (h *Hand) String() string {
	bySuit := h.BySuit()
	groups := make([]string, 0, 4)
	for s := Spades; ; s-- {
		groups = append(groups, group(bySuit[s]))
		if s == Clubs {
			break
		}
	}
	return strings.Join(groups, "|")
}

func group(ranks []Rank) string {
	if len(ranks) == 0 {
		return "-"
	}
	b := make([]byte, len(ranks))
	for i, r := range ranks {
		b[i] = r.Symbol()
	}
	return string(b)
}

// ParseHand reads a hand written as spades|hearts|diamonds|clubs.
// It fails if the notation does not have exactly four groups or contains a
// character that is not a rank. A group consisting of "-" is a void.
func ParseHand(notation string) (*Hand, error) {
	groups := strings.Split(notation, "|")
	if len(groups) != 4 {
		return nil, fmt.Errorf("%w: %d suit groups, want 4", ErrMalformedHand, len(groups))
	}
	h := &Hand{}
	for i, g := range groups {
		suit := Spades - Suit(i)
		if g == "-" {
			continue
		}
		for j := 0; j < len(g); j++ {
			rank, ok := ParseRank(g[j])
			if !ok {
				return nil, fmt.Errorf("%w: invalid rank %q in suit %c", ErrMalformedHand, g[j], suit.Letter())
			}
			h.Add(Card{suit: suit, rank: rank})
		}
	}
	return h, nil
}

// MustParseHand is like ParseHand but panics on malformed notation.
func MustParseHand(notation string) *Hand {
	h, err := ParseHand(notation)
	if err != nil {
		panic(err)
	}
	return h
}
