package application

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/luca-patrignani/bridge-trainer/domain/bridge"
	"github.com/luca-patrignani/bridge-trainer/domain/convention"
	"github.com/luca-patrignani/bridge-trainer/domain/deck"
)

const (
	// EngineSeat is played by the bidder.
	EngineSeat = bridge.North
	// HumanSeat is played by the trainee.
	HumanSeat = bridge.South
)

var (
	ErrNotYourTurn = errors.New("not south's turn")
	ErrBadDeal     = errors.New("deal is missing a hand")
)

// Trainer drives the auction of one board: North asks its bidder, East and
// West always pass, and South is the human. Calls of South go through
// Validate and Apply.
type Trainer struct {
	board   bridge.Board
	deal    deck.Deal
	auction *bridge.Auction

	newBidder BidderFactory
	bidder    Bidder
	ledger    Ledger
	log       *slog.Logger

	explanations []Explanation
	confused     bool
	recorded     bool
}

// NewTrainer sets up board with deal and makes the automatic calls up to
// South's first turn.
func NewTrainer(board bridge.Board, deal deck.Deal, opts ...trainerOption) (*Trainer, error) {
	for _, s := range bridge.Seats {
		if h := deal.Hand(s); h == nil || h.Len() != bridge.HandSize {
			return nil, fmt.Errorf("%w: %s", ErrBadDeal, s)
		}
	}
	t := Trainer{
		board:     board,
		deal:      deal,
		auction:   bridge.NewAuction(board.Dealer()),
		newBidder: ConventionBidder,
		log:       discardLogger(),
	}
	for _, opt := range opts {
		t = opt(t)
	}
	t.log = t.log.With("board", int(board))
	tr := &t
	if err := tr.Advance(); err != nil {
		return nil, err
	}
	return tr, nil
}

func (t *Trainer) Board() bridge.Board {
	return t.board
}

func (t *Trainer) Dealer() bridge.Seat {
	return t.board.Dealer()
}

func (t *Trainer) Vulnerability() bridge.Vulnerability {
	return t.board.Vulnerability()
}

func (t *Trainer) Hand(seat bridge.Seat) *bridge.Hand {
	return t.deal.Hand(seat)
}

// Calls returns the auction so far.
func (t *Trainer) Calls() []bridge.Call {
	return t.auction.Calls()
}

// Turn returns the seat to call next.
func (t *Trainer) Turn() bridge.Seat {
	return t.auction.Next()
}

func (t *Trainer) Finished() bool {
	return t.auction.IsFinished()
}

// Contract returns the final contract once the auction is over.
func (t *Trainer) Contract() (bridge.Bid, bridge.Seat, bool) {
	return t.auction.Contract()
}

// Confused reports whether North met an auction its system does not cover.
func (t *Trainer) Confused() bool {
	return t.confused
}

// Explanation returns the reason for North's latest call.
func (t *Trainer) Explanation() (Explanation, bool) {
	if len(t.explanations) == 0 {
		return Explanation{}, false
	}
	return t.explanations[len(t.explanations)-1], true
}

// Explanations returns the reasons for all of North's calls, oldest first.
func (t *Trainer) Explanations() []Explanation {
	return slices.Clone(t.explanations)
}

// Validate checks that South may make call now.
func (t *Trainer) Validate(call bridge.Call) error {
	if t.auction.IsFinished() {
		return bridge.ErrAuctionFinished
	}
	if t.auction.Next() != HumanSeat {
		return fmt.Errorf("%w: %s to call", ErrNotYourTurn, t.auction.Next())
	}
	if b, ok := call.Bid(); ok {
		if !b.Valid() {
			return fmt.Errorf("%w: %v", bridge.ErrInvalidBid, b)
		}
		if high, ok := t.auction.Highest(); ok && b.Rank() <= high.Rank() {
			return fmt.Errorf("%w: %s does not exceed %s", bridge.ErrInsufficientBid, b, high)
		}
	}
	return nil
}

// Apply makes South's call, then the automatic calls up to South's next turn.
func (t *Trainer) Apply(call bridge.Call) error {
	if err := t.Validate(call); err != nil {
		return err
	}
	if err := t.auction.Add(call); err != nil {
		return err
	}
	t.log.Debug("call", "seat", HumanSeat, "call", call.Notation())
	return t.Advance()
}

// LegalCalls lists the calls South may make: pass and every sufficient bid.
// It is empty when it is not South's turn.
func (t *Trainer) LegalCalls() []bridge.Call {
	if t.auction.IsFinished() || t.auction.Next() != HumanSeat {
		return nil
	}
	low := 0
	if high, ok := t.auction.Highest(); ok {
		low = high.Rank() + 1
	}
	calls := []bridge.Call{bridge.Pass}
	for level := 1; level <= 7; level++ {
		for _, strain := range bridge.Strains {
			b := bridge.Bid{Level: level, Strain: strain}
			if b.Rank() >= low {
				calls = append(calls, b.Call())
			}
		}
	}
	return calls
}

// Advance makes the automatic calls until South is to call or the auction
// is over. A finished auction is recorded in the ledger once.
func (t *Trainer) Advance() error {
	for !t.auction.IsFinished() && t.auction.Next() != HumanSeat {
		seat := t.auction.Next()
		call := bridge.Pass
		if seat == EngineSeat {
			call = t.engineCall()
		}
		if err := t.auction.Add(call); err != nil {
			return fmt.Errorf("%s: %w", seat, err)
		}
		t.log.Debug("call", "seat", seat, "call", call.Notation())
	}
	if t.auction.IsFinished() && !t.recorded {
		return t.finish()
	}
	return nil
}

// engineCall asks the bidder for North's next call. Whatever the bidder
// cannot answer is replaced by a pass.
func (t *Trainer) engineCall() bridge.Call {
	partner, _ := t.auction.LastCall(HumanSeat)
	var (
		p   convention.Proposal
		err error
	)
	if t.bidder == nil {
		pos := bridge.PositionOf(EngineSeat, t.board.Dealer())
		t.bidder = t.newBidder(t.deal.Hand(EngineSeat), t.board.Vulnerability(), pos, partner)
		p, err = t.bidder.Start()
	} else {
		p, err = t.bidder.Resume(partner)
	}

	ex := Explanation{Index: t.auction.Len(), Call: bridge.Pass}
	switch {
	case err == nil && !t.auction.Legal(p.Call):
		ex.Text = fmt.Sprintf("North's system suggests %s, which is not sufficient; passing instead", p.Call)
		ex.Rule = p.Rule
		ex.Unhandled = true
	case err == nil:
		ex.Call = p.Call
		ex.Text = p.Rationale
		ex.Rule = p.Rule
	case errors.Is(err, convention.ErrComplete):
		ex.Text = "nothing to add: the sequence is complete"
	default:
		ex.Text = describeUnhandled(err, partner)
		ex.Unhandled = true
	}
	ex.Notation = ex.Call.Notation()
	if ex.Unhandled {
		t.confused = true
		t.log.Warn("bidder has no answer", "partner", partner.Notation(), "reason", ex.Text)
	}
	t.explanations = append(t.explanations, ex)
	return ex.Call
}

func describeUnhandled(err error, partner bridge.Call) string {
	var unhandled *convention.UnhandledError
	if errors.As(err, &unhandled) {
		if unhandled.Opening {
			return fmt.Sprintf("North's system has no opening rule here (%s); passing", unhandled.State)
		}
		return fmt.Sprintf("North's system does not cover %s in this auction (%s); passing", unhandled.Partner, unhandled.State)
	}
	return fmt.Sprintf("North cannot answer %s (%v); passing", partner, err)
}

func (t *Trainer) finish() error {
	t.recorded = true
	contract, declarer, ok := t.auction.Contract()
	if ok {
		t.log.Info("auction finished", "contract", contract.String(), "declarer", declarer)
	} else {
		t.log.Info("auction finished", "contract", "passed out")
	}
	if t.ledger == nil {
		return nil
	}
	if _, err := t.ledger.Append(t.record(), map[string]string{"confused": fmt.Sprint(t.confused)}); err != nil {
		return fmt.Errorf("record board %d: %w", t.board, err)
	}
	return nil
}

// Record returns the ledger entry for the board so far.
func (t *Trainer) Record() Record {
	return t.record()
}
