package bridge

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Strain is the denomination of a bid: a suit or no-trump.
type Strain uint8

const (
	StrainClubs Strain = iota
	StrainDiamonds
	StrainHearts
	StrainSpades
	NoTrump
)

// Strains lists every strain in bidding order.
var Strains = [5]Strain{StrainClubs, StrainDiamonds, StrainHearts, StrainSpades, NoTrump}

const strainLetters = "CDHSN"

// StrainOf returns the strain naming suit s.
func StrainOf(s Suit) Strain {
	return Strain(s)
}

// Suit returns the suit of a suit strain. ok is false for no-trump.
func (s Strain) Suit() (suit Suit, ok bool) {
	if s >= NoTrump {
		return 0, false
	}
	return Suit(s), true
}

func (s Strain) Valid() bool {
	return s <= NoTrump
}

// Letter returns the strain initial (C, D, H, S, N).
func (s Strain) Letter() byte {
	if !s.Valid() {
		return '?'
	}
	return strainLetters[s]
}

func (s Strain) String() string {
	if suit, ok := s.Suit(); ok {
		return suit.Symbol()
	}
	if s == NoTrump {
		return "NT"
	}
	return "?"
}

var (
	ErrInvalidBid = errors.New("invalid bid")
	ErrBadCall    = errors.New("cannot parse call")
)

// Bid is a contract offer: a level from 1 to 7 and a strain.
type Bid struct {
	Level  int
	Strain Strain
}

// NewBid validates level and strain.
func NewBid(level int, strain Strain) (Bid, error) {
	b := Bid{Level: level, Strain: strain}
	if !b.Valid() {
		return Bid{}, fmt.Errorf("%w: level %d, strain %d", ErrInvalidBid, level, strain)
	}
	return b, nil
}

func (b Bid) Valid() bool {
	return b.Level >= 1 && b.Level <= 7 && b.Strain.Valid()
}

// Rank orders bids: (level-1)*5 + strain. A new bid must have a higher rank
// than every bid made before it.
func (b Bid) Rank() int {
	return (b.Level-1)*5 + int(b.Strain)
}

// Call wraps the bid as a Call.
func (b Bid) Call() Call {
	return Call{bid: b}
}

func (b Bid) String() string {
	return strconv.Itoa(b.Level) + b.Strain.String()
}

// Call is a bid or a pass. The zero Call is a pass.
type Call struct {
	bid Bid
}

// Pass is the call that makes no bid.
var Pass = Call{}

// MakeCall returns the call bidding level in strain. It panics on an invalid bid;
// use NewBid for input that has not been checked.
func MakeCall(level int, strain Strain) Call {
	b, err := NewBid(level, strain)
	if err != nil {
		panic(err)
	}
	return b.Call()
}

func (c Call) IsPass() bool {
	return c.bid.Level == 0
}

// Bid returns the bid carried by the call; ok is false for a pass.
func (c Call) Bid() (b Bid, ok bool) {
	return c.bid, !c.IsPass()
}

// Is reports whether c bids level in strain.
func (c Call) Is(level int, strain Strain) bool {
	return !c.IsPass() && c.bid.Level == level && c.bid.Strain == strain
}

// String renders the call for people: "Pass", "1♣", "3NT".
func (c Call) String() string {
	if c.IsPass() {
		return "Pass"
	}
	return c.bid.String()
}

// Notation renders the call in plain ASCII: "P", "1C", "3N".
func (c Call) Notation() string {
	if c.IsPass() {
		return "P"
	}
	return strconv.Itoa(c.bid.Level) + string(c.bid.Strain.Letter())
}

// ParseCall reads "P", "Pass", or a level followed by a strain letter
// ("1C", "4h", "3N", "3NT").
func ParseCall(s string) (Call, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	if t == "P" || t == "PASS" {
		return Pass, nil
	}
	if strings.HasSuffix(t, "NT") {
		t = t[:len(t)-1]
	}
	if len(t) != 2 {
		return Call{}, fmt.Errorf("%w: %q", ErrBadCall, s)
	}
	level := int(t[0] - '0')
	strain := strings.IndexByte(strainLetters, t[1])
	if strain < 0 {
		return Call{}, fmt.Errorf("%w: %q", ErrBadCall, s)
	}
	b, err := NewBid(level, Strain(strain))
	if err != nil {
		return Call{}, fmt.Errorf("%w: %q", ErrBadCall, s)
	}
	return b.Call(), nil
}
