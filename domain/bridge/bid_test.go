package bridge

import (
	"errors"
	"testing"
)

func TestBidRankOrdersCalls(t *testing.T) {
	previous := -1
	for level := 1; level <= 7; level++ {
		for _, s := range Strains {
			b, err := NewBid(level, s)
			if err != nil {
				t.Fatal(err)
			}
			if b.Rank() != previous+1 {
				t.Fatalf("rank of %s = %d, want %d", b, b.Rank(), previous+1)
			}
			previous = b.Rank()
		}
	}
	if previous != 34 {
		t.Fatalf("expected 7NT to rank 34, got %d", previous)
	}
}

func TestNewBidInvalid(t *testing.T) {
	for _, tt := range []struct {
		level  int
		strain Strain
	}{{0, NoTrump}, {8, StrainClubs}, {1, Strain(5)}} {
		if _, err := NewBid(tt.level, tt.strain); !errors.Is(err, ErrInvalidBid) {
			t.Errorf("NewBid(%d, %d): expected ErrInvalidBid, got %v", tt.level, tt.strain, err)
		}
	}
}

func TestCallString(t *testing.T) {
	tests := []struct {
		call     Call
		human    string
		notation string
	}{
		{Pass, "Pass", "P"},
		{MakeCall(1, StrainClubs), "1♣", "1C"},
		{MakeCall(2, StrainHearts), "2♥", "2H"},
		{MakeCall(3, NoTrump), "3NT", "3N"},
		{MakeCall(7, StrainSpades), "7♠", "7S"},
	}
	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			if tt.call.String() != tt.human {
				t.Errorf("String() = %q, want %q", tt.call.String(), tt.human)
			}
			if tt.call.Notation() != tt.notation {
				t.Errorf("Notation() = %q, want %q", tt.call.Notation(), tt.notation)
			}
			parsed, err := ParseCall(tt.notation)
			if err != nil {
				t.Fatal(err)
			}
			if parsed != tt.call {
				t.Errorf("ParseCall(%q) = %v, want %v", tt.notation, parsed, tt.call)
			}
		})
	}
}

func TestParseCall(t *testing.T) {
	valid := map[string]Call{
		"pass": Pass,
		" p ":  Pass,
		"3nt":  MakeCall(3, NoTrump),
		"4h":   MakeCall(4, StrainHearts),
	}
	for in, expected := range valid {
		got, err := ParseCall(in)
		if err != nil {
			t.Fatalf("ParseCall(%q): %v", in, err)
		}
		if got != expected {
			t.Fatalf("ParseCall(%q) = %v, want %v", in, got, expected)
		}
	}
	for _, in := range []string{"", "8C", "0N", "1X", "X", "XX", "12C", "3HT"} {
		if _, err := ParseCall(in); !errors.Is(err, ErrBadCall) {
			t.Errorf("ParseCall(%q): expected ErrBadCall, got %v", in, err)
		}
	}
}

func TestCallAccessors(t *testing.T) {
	if !Pass.IsPass() {
		t.Fatal("zero call must be a pass")
	}
	if _, ok := Pass.Bid(); ok {
		t.Fatal("pass carries no bid")
	}
	c := MakeCall(2, StrainDiamonds)
	if !c.Is(2, StrainDiamonds) || c.Is(2, StrainHearts) {
		t.Fatal("Is does not match the bid")
	}
	if Pass.Is(0, StrainClubs) {
		t.Fatal("pass is never a bid")
	}
	if s, ok := StrainHearts.Suit(); !ok || s != Hearts {
		t.Fatalf("expected hearts, got %v %v", s, ok)
	}
	if _, ok := NoTrump.Suit(); ok {
		t.Fatal("no-trump has no suit")
	}
	if StrainOf(Spades) != StrainSpades {
		t.Fatal("StrainOf(Spades) must be spades")
	}
}
