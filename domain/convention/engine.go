package convention

import (
	"errors"
	"slices"

	"github.com/luca-patrignani/bridge-trainer/domain/bridge"
)

// Proposal is the call the engine wants to make together with the reason for it.
type Proposal struct {
	Call      bridge.Call
	Rationale string
	// Rule names the rule of the ladder that produced the call.
	Rule string
}

// Outcome classifies one activation of the engine.
type Outcome uint8

const (
	OutcomeProposal Outcome = iota
	OutcomeComplete
	OutcomeUnhandled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeProposal:
		return "proposal"
	case OutcomeComplete:
		return "complete"
	case OutcomeUnhandled:
		return "unhandled"
	}
	return "?"
}

// Step is the trace of one activation.
type Step struct {
	// State is where the activation resumed; delegations are not listed separately.
	State State
	// Partner is the call the activation answered. It is meaningless when Opening is set.
	Partner  bridge.Call
	Opening  bool
	Outcome  Outcome
	Proposal Proposal
}

// Engine runs the decision tree for one hand through one auction.
// An Engine is not safe for concurrent use.
type Engine struct {
	hand     *bridge.Hand
	vul      bridge.Vulnerability
	position bridge.Position

	initial    bridge.Call
	hasInitial bool

	// facts about the hand, computed once
	hcp      int
	shape    bridge.Shape
	balanced bool
	labeled  [4]bridge.SuitLength
	aces     int
	kings    int

	state   State
	trump   bridge.Suit
	passed  bool
	started bool
	lost    bool
	history []Step
}

type engineOption func(Engine) Engine

// WithPartnerOpening makes partner's opening call the input of the first
// activation, placing the engine in the responder's seat. An opening pass is
// the same as no opening at all.
func WithPartnerOpening(call bridge.Call) engineOption {
	return func(e Engine) Engine {
		if call.IsPass() {
			e.hasInitial = false
			return e
		}
		e.initial = call
		e.hasInitial = true
		return e
	}
}

// New binds an engine to hand. vul and pos are the board conditions of the
// seat the engine plays.
func New(hand *bridge.Hand, vul bridge.Vulnerability, pos bridge.Position, opts ...engineOption) *Engine {
	e := Engine{
		hand:     hand,
		vul:      vul,
		position: pos,
		hcp:      hand.HCP(),
		shape:    hand.Shape(),
		balanced: hand.IsBalanced(),
		labeled:  hand.LabeledShape(),
		aces:     hand.CountRank(bridge.Ace),
		kings:    hand.CountRank(bridge.King),
		state:    StateOpening,
	}
	for _, opt := range opts {
		e = opt(e)
	}
	if e.hasInitial {
		e.state = StateResponding
	}
	return &e
}

func (e *Engine) Hand() *bridge.Hand {
	return e.hand
}

func (e *Engine) Vulnerability() bridge.Vulnerability {
	return e.vul
}

func (e *Engine) Position() bridge.Position {
	return e.position
}

// State returns the state the next activation resumes from.
func (e *Engine) State() State {
	return e.state
}

// Passed reports whether the engine has proposed a pass in this auction.
func (e *Engine) Passed() bool {
	return e.passed
}

// Done reports whether later activations can only return ErrComplete or an
// unhandled error.
func (e *Engine) Done() bool {
	return e.lost || e.state == StateDone
}

// History returns the activations so far, oldest first.
func (e *Engine) History() []Step {
	return slices.Clone(e.history)
}

// Start runs the first activation. As opener it answers the empty auction;
// with WithPartnerOpening it answers partner's opening call.
func (e *Engine) Start() (Proposal, error) {
	if e.started {
		return Proposal{}, ErrAlreadyStarted
	}
	e.started = true
	if e.hasInitial {
		return e.activate(e.initial, false)
	}
	return e.activate(bridge.Pass, true)
}

// Resume runs the next activation with partner's latest call.
// After an unhandled outcome every later activation is unhandled too.
func (e *Engine) Resume(partner bridge.Call) (Proposal, error) {
	if !e.started {
		return Proposal{}, ErrNotStarted
	}
	return e.activate(partner, false)
}

func (e *Engine) activate(partner bridge.Call, opening bool) (Proposal, error) {
	from := e.state
	st := Step{State: from, Partner: partner, Opening: opening}
	var (
		p   Proposal
		err error
	)
	switch {
	case e.lost:
		err = &UnhandledError{State: from, Partner: partner, Opening: opening}
	case e.state == StateDone:
		err = ErrComplete
	default:
		p, err = e.run(from, partner, opening)
	}
	switch {
	case err == nil:
		st.Outcome = OutcomeProposal
		st.Proposal = p
		if p.Call.IsPass() {
			e.passed = true
		}
	case errors.Is(err, ErrComplete):
		st.Outcome = OutcomeComplete
	default:
		st.Outcome = OutcomeUnhandled
		e.lost = true
	}
	e.history = append(e.history, st)
	return p, err
}

// run walks the ladder of state, following delegations, until a node
// produces a call or ends the sequence.
func (e *Engine) run(state State, partner bridge.Call, opening bool) (Proposal, error) {
	for {
		r, ok := e.match(state, partner)
		if !ok {
			return Proposal{}, &UnhandledError{State: state, Partner: partner, Opening: opening}
		}
		switch n := r.then.(type) {
		case propose:
			e.state = n.next
			return Proposal{Call: n.call, Rationale: n.rationale, Rule: r.name}, nil
		case terminal:
			e.state = StateDone
			return Proposal{Call: n.call, Rationale: n.rationale, Rule: r.name}, nil
		case delegate:
			if n.setTrump {
				e.trump = n.trump
			}
			state = n.to
		case end:
			e.state = StateDone
			return Proposal{}, ErrComplete
		default:
			return Proposal{}, &UnhandledError{State: state, Partner: partner, Opening: opening}
		}
	}
}

func (e *Engine) match(state State, partner bridge.Call) (rule, bool) {
	for _, r := range tree[state] {
		if r.when(e, partner) {
			return r, true
		}
	}
	return rule{}, false
}
