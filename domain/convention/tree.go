package convention

import "github.com/luca-patrignani/bridge-trainer/domain/bridge"

// State names a suspension point of the decision tree.
type State string

const (
	StateOpening         State = "opening"
	StateResponding      State = "responding"
	StateResponded       State = "responded"
	StateSuitOpened      State = "suit-opened"
	StateStrongClub      State = "strong-club"
	StateStrongClubRebid State = "strong-club-rebid"
	StateOneNoTrump      State = "one-notrump"
	StateStayman         State = "stayman"
	StateStaymanHearts   State = "stayman-hearts"
	StateStaymanSpades   State = "stayman-spades"
	StateStaymanDenied   State = "stayman-denied"
	StateTransferHearts  State = "transfer-hearts"
	StateTransferSpades  State = "transfer-spades"
	StateMinorTransfer   State = "minor-transfer"
	StateGerber          State = "gerber"
	StateGerberKings     State = "gerber-kings"
	StateJosephine       State = "josephine"
	StateDone            State = "done"
)

// node is what a matching rule does.
type node interface {
	isNode()
}

// propose makes a call and suspends at next, awaiting the partner's reply.
type propose struct {
	call      bridge.Call
	rationale string
	next      State
}

// terminal makes a call that ends the sequence.
type terminal struct {
	call      bridge.Call
	rationale string
}

// delegate enters the sub-procedure rooted at to with the same partner call.
type delegate struct {
	to       State
	trump    bridge.Suit
	setTrump bool
}

// end completes the sequence without a call.
type end struct{}

func (propose) isNode()  {}
func (terminal) isNode() {}
func (delegate) isNode() {}
func (end) isNode()      {}

type condition func(e *Engine, partner bridge.Call) bool

// rule is one rung of a ladder.
type rule struct {
	name string
	when condition
	then node
}

type ladder []rule

var tree = map[State]ladder{
	StateOpening:         openingLadder(),
	StateResponding:      respondingLadder(),
	StateStrongClub:      strongClubLadder(),
	StateOneNoTrump:      oneNoTrumpLadder(),
	StateStayman:         staymanLadder(),
	StateStaymanHearts:   staymanHeartsLadder(),
	StateStaymanSpades:   staymanSpadesLadder(),
	StateStaymanDenied:   staymanDeniedLadder(),
	StateTransferHearts:  transferLadder(bridge.Hearts),
	StateTransferSpades:  transferLadder(bridge.Spades),
	StateMinorTransfer:   minorTransferLadder(),
	StateGerber:          gerberLadder(),
	StateGerberKings:     gerberKingsLadder(),
	StateJosephine:       josephineLadder(),
	StateResponded:       nil,
	StateSuitOpened:      nil,
	StateStrongClubRebid: nil,
}

func bid(level int, strain bridge.Strain) bridge.Call {
	return bridge.MakeCall(level, strain)
}

func always(*Engine, bridge.Call) bool { return true }

func all(conds ...condition) condition {
	return func(e *Engine, partner bridge.Call) bool {
		for _, c := range conds {
			if !c(e, partner) {
				return false
			}
		}
		return true
	}
}

func partnerBid(level int, strain bridge.Strain) condition {
	return func(_ *Engine, partner bridge.Call) bool {
		return partner.Is(level, strain)
	}
}

func partnerPasses(_ *Engine, partner bridge.Call) bool { return partner.IsPass() }

func hcpAtLeast(n int) condition {
	return func(e *Engine, _ bridge.Call) bool { return e.hcp >= n }
}

func hcpAtMost(n int) condition {
	return func(e *Engine, _ bridge.Call) bool { return e.hcp <= n }
}

func hcpBetween(lo, hi int) condition {
	return all(hcpAtLeast(lo), hcpAtMost(hi))
}

func balanced(e *Engine, _ bridge.Call) bool { return e.balanced }

func notPassed(e *Engine, _ bridge.Call) bool { return !e.passed }

func length(suit bridge.Suit, lo, hi int) condition {
	return func(e *Engine, _ bridge.Call) bool {
		n := e.shape[suit]
		return n >= lo && n <= hi
	}
}

func atLeast(suit bridge.Suit, n int) condition {
	return length(suit, n, bridge.HandSize)
}
