package bridge

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrAuctionFinished = errors.New("auction is finished")
	ErrInsufficientBid = errors.New("insufficient bid")
)

// IsFinished reports whether a sequence of calls ends the auction: at least
// four calls have been made and the last three are passes.
func IsFinished(calls []Call) bool {
	if len(calls) < 4 {
		return false
	}
	for _, c := range calls[len(calls)-3:] {
		if !c.IsPass() {
			return false
		}
	}
	return true
}

// Auction is the ordered list of calls made on a board, starting with the dealer.
type Auction struct {
	dealer Seat
	calls  []Call
}

func NewAuction(dealer Seat) *Auction {
	return &Auction{dealer: dealer}
}

func (a *Auction) Dealer() Seat {
	return a.dealer
}

// Calls returns a copy of the calls made so far.
func (a *Auction) Calls() []Call {
	return slices.Clone(a.calls)
}

func (a *Auction) Len() int {
	return len(a.calls)
}

// Next returns the seat whose turn it is to call.
func (a *Auction) Next() Seat {
	return Seat((int(a.dealer) + len(a.calls)) % 4)
}

// SeatOf returns the seat that made the i-th call.
func (a *Auction) SeatOf(i int) Seat {
	return Seat((int(a.dealer) + i) % 4)
}

func (a *Auction) IsFinished() bool {
	return IsFinished(a.calls)
}

// Highest returns the highest bid made so far. Passes never change it.
func (a *Auction) Highest() (Bid, bool) {
	for i := len(a.calls) - 1; i >= 0; i-- {
		if b, ok := a.calls[i].Bid(); ok {
			return b, true
		}
	}
	return Bid{}, false
}

// Legal reports whether c may be added: the auction is still open and, for a
// bid, it ranks above the highest bid so far.
func (a *Auction) Legal(c Call) bool {
	return a.check(c) == nil
}

func (a *Auction) check(c Call) error {
	if a.IsFinished() {
		return ErrAuctionFinished
	}
	b, ok := c.Bid()
	if !ok {
		return nil
	}
	if !b.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidBid, b)
	}
	if high, ok := a.Highest(); ok && b.Rank() <= high.Rank() {
		return fmt.Errorf("%w: %s does not exceed %s", ErrInsufficientBid, b, high)
	}
	return nil
}

// Add records the next call.
func (a *Auction) Add(c Call) error {
	if err := a.check(c); err != nil {
		return err
	}
	a.calls = append(a.calls, c)
	return nil
}

// LastCall returns the most recent call made by seat.
func (a *Auction) LastCall(seat Seat) (Call, bool) {
	for i := len(a.calls) - 1; i >= 0; i-- {
		if a.SeatOf(i) == seat {
			return a.calls[i], true
		}
	}
	return Call{}, false
}

// Contract returns the final bid and its declarer: the first player of the
// winning partnership to name the final strain. ok is false while the auction
// is open or when all four players passed.
func (a *Auction) Contract() (contract Bid, declarer Seat, ok bool) {
	if !a.IsFinished() {
		return Bid{}, 0, false
	}
	last := -1
	for i := len(a.calls) - 1; i >= 0; i-- {
		if !a.calls[i].IsPass() {
			last = i
			break
		}
	}
	if last < 0 {
		return Bid{}, 0, false
	}
	contract, _ = a.calls[last].Bid()
	side := a.SeatOf(last)
	for i := 0; i <= last; i++ {
		seat := a.SeatOf(i)
		if seat != side && seat != side.Partner() {
			continue
		}
		if b, isBid := a.calls[i].Bid(); isBid && b.Strain == contract.Strain {
			return contract, seat, true
		}
	}
	return contract, side, true
}
