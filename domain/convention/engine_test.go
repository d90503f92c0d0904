package convention

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/bridge-trainer/domain/bridge"
)

func newEngine(t *testing.T, notation string, opts ...engineOption) *Engine {
	t.Helper()
	h, err := bridge.ParseHand(notation)
	require.NoError(t, err)
	require.Equal(t, bridge.HandSize, h.Len(), "fixture %s", notation)
	return New(h, bridge.VulnerableNone, 0, opts...)
}

func call(t *testing.T, notation string) bridge.Call {
	t.Helper()
	c, err := bridge.ParseCall(notation)
	require.NoError(t, err)
	return c
}

// run starts e and resumes it once per partner call, returning the last outcome.
func run(t *testing.T, e *Engine, partner ...string) (Proposal, error) {
	t.Helper()
	p, err := e.Start()
	for _, n := range partner {
		require.NoError(t, err, "before partner's %s", n)
		p, err = e.Resume(call(t, n))
	}
	return p, err
}

func TestResumeBeforeStart(t *testing.T) {
	e := newEngine(t, "K32|Q432|J32|Q32")
	_, err := e.Resume(bridge.Pass)
	assert.ErrorIs(t, err, ErrNotStarted)
	assert.Empty(t, e.History())
}

func TestStartTwice(t *testing.T) {
	e := newEngine(t, "K32|Q432|J32|Q32")
	_, err := e.Start()
	require.NoError(t, err)
	_, err = e.Start()
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestPassIsAProposal(t *testing.T) {
	e := newEngine(t, "K32|Q432|J32|Q32")
	p, err := e.Start()
	require.NoError(t, err)
	assert.True(t, p.Call.IsPass())
	assert.Equal(t, "0-10 HCP", p.Rationale)
	assert.True(t, e.Passed())
	assert.Equal(t, StateResponding, e.State())
}

func TestUnhandledIsSticky(t *testing.T) {
	e := newEngine(t, "AK432|Q432|K2|32")
	_, err := run(t, e, "2S")
	var unhandled *UnhandledError
	require.ErrorAs(t, err, &unhandled)
	assert.Equal(t, StateSuitOpened, unhandled.State)
	assert.True(t, unhandled.Partner.Is(2, bridge.StrainSpades))
	assert.True(t, e.Done())

	_, err = e.Resume(bridge.Pass)
	assert.ErrorIs(t, err, ErrUnhandled)
	assert.False(t, errors.Is(err, ErrComplete))
}

func TestCompleteAfterTerminal(t *testing.T) {
	e := newEngine(t, "AK32|AQ2|KQ2|K32")
	p, err := e.Start()
	require.NoError(t, err)
	assert.Equal(t, "2NT", p.Call.String())
	assert.Equal(t, StateDone, e.State())

	_, err = e.Resume(bridge.Pass)
	assert.ErrorIs(t, err, ErrComplete)
	_, err = e.Resume(bridge.MakeCall(3, bridge.NoTrump))
	assert.ErrorIs(t, err, ErrComplete)
}

func TestHistory(t *testing.T) {
	e := newEngine(t, "KQ2|AQ32|K32|J32")
	_, err := run(t, e, "2C", "3H")
	require.NoError(t, err)
	_, _ = e.Resume(bridge.Pass)

	h := e.History()
	require.Len(t, h, 4)
	assert.True(t, h[0].Opening)
	assert.Equal(t, StateOpening, h[0].State)
	assert.Equal(t, "1nt", h[0].Proposal.Rule)

	assert.Equal(t, StateOneNoTrump, h[1].State)
	assert.Equal(t, "stayman-hearts", h[1].Proposal.Rule)
	assert.Equal(t, "2♣", h[1].Partner.String())

	assert.Equal(t, StateStaymanHearts, h[2].State)
	assert.Equal(t, "4♥", h[2].Proposal.Call.String())

	assert.Equal(t, StateDone, h[3].State)
	assert.Equal(t, OutcomeComplete, h[3].Outcome)
}

func TestUnhandledErrorMessage(t *testing.T) {
	err := &UnhandledError{State: StateResponding, Partner: bridge.MakeCall(1, bridge.StrainHearts)}
	assert.Equal(t, "convention: no rule in state responding for partner's 1♥", err.Error())
	assert.ErrorIs(t, err, ErrUnhandled)

	opening := &UnhandledError{State: StateOpening, Opening: true}
	assert.Equal(t, "convention: no rule in state opening", opening.Error())
}

func TestEveryStateHasALadder(t *testing.T) {
	states := []State{
		StateOpening, StateResponding, StateResponded, StateSuitOpened,
		StateStrongClub, StateStrongClubRebid, StateOneNoTrump, StateStayman,
		StateStaymanHearts, StateStaymanSpades, StateStaymanDenied,
		StateTransferHearts, StateTransferSpades, StateMinorTransfer,
		StateGerber, StateGerberKings, StateJosephine,
	}
	for _, s := range states {
		_, ok := tree[s]
		assert.True(t, ok, "state %s", s)
	}
	for s, l := range tree {
		seen := map[string]bool{}
		for _, r := range l {
			assert.NotEmpty(t, r.name, "state %s", s)
			assert.False(t, seen[r.name], "duplicate rule %s in state %s", r.name, s)
			seen[r.name] = true
			if p, ok := r.then.(propose); ok {
				_, known := tree[p.next]
				assert.True(t, known, "rule %s suspends at unknown state %s", r.name, p.next)
			}
		}
	}
}
