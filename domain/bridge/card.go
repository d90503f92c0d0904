package bridge

import (
	"fmt"
	"strings"
)

// Suit is one of the four card suits, ordered clubs < diamonds < hearts < spades.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit from lowest to highest.
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

const (
	suitLetters = "CDHS"
	rankSymbols = "23456789TJQKA"
)

var suitSymbols = [4]string{"♣", "♦", "♥", "♠"}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Spades
}

// Symbol returns the suit glyph (♣, ♦, ♥, ♠).
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// Letter returns the suit initial (C, D, H, S).
func (s Suit) Letter() byte {
	if !s.Valid() {
		return '?'
	}
	return suitLetters[s]
}

func (s Suit) String() string {
	return s.Symbol()
}

// Rank is a card rank, ordered two (lowest) to ace (highest).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Valid reports whether r is one of the 13 ranks.
func (r Rank) Valid() bool {
	return r <= Ace
}

// Symbol returns the rank character used in hand notation.
func (r Rank) Symbol() byte {
	if !r.Valid() {
		return '?'
	}
	return rankSymbols[r]
}

func (r Rank) String() string {
	return string(r.Symbol())
}

// ParseRank converts a rank character (case-insensitive) to a Rank.
func ParseRank(c byte) (Rank, bool) {
	i := strings.IndexByte(rankSymbols, upper(c))
	if i < 0 {
		return 0, false
	}
	return Rank(i), true
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// Card represents a playing card with suit and rank.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a Card, returning an error if suit or rank is out of range.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() || !rank.Valid() {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustCard is like NewCard but panics on invalid input. Meant for fixed tables and tests.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Rank() Rank {
	return c.rank
}

// HCP returns the high-card points of the card: ace 4, king 3, queen 2, jack 1.
func (c Card) HCP() int {
	return max(0, int(c.rank)-int(Ten))
}

// String renders the card as rank followed by the suit glyph, e.g. "A♠".
func (c Card) String() string {
	return c.rank.String() + c.suit.Symbol()
}

// Notation renders the card as suit letter followed by rank, e.g. "SA".
func (c Card) Notation() string {
	return string([]byte{c.suit.Letter(), c.rank.Symbol()})
}
