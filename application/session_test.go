package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/bridge-trainer/domain/bridge"
	"github.com/luca-patrignani/bridge-trainer/domain/deck"
)

func passOut(t *testing.T, tr *Trainer) {
	t.Helper()
	for !tr.Finished() {
		require.Equal(t, HumanSeat, tr.Turn())
		require.NoError(t, tr.Apply(bridge.Pass))
	}
}

func TestSessionBoardCounter(t *testing.T) {
	s := NewSession(deck.NewSeededDealer([]byte("session")), 5, nil)

	tr, err := s.NextBoard()
	require.NoError(t, err)
	assert.Equal(t, bridge.Board(5), tr.Board())
	assert.Equal(t, bridge.North, tr.Dealer())
	assert.Equal(t, bridge.VulnerableNorthSouth, tr.Vulnerability())
	passOut(t, tr)

	tr, err = s.NextBoard()
	require.NoError(t, err)
	assert.Equal(t, bridge.Board(6), tr.Board())
	assert.Equal(t, bridge.East, tr.Dealer())
	passOut(t, tr)

	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, 5, history[0].Board)
	assert.Equal(t, 6, history[1].Board)
	assert.Equal(t, "N/S", history[0].Vulnerability)
	assert.NoError(t, s.Ledger().Verify())
}

func TestSessionDealsAreReproducible(t *testing.T) {
	a := NewSession(deck.NewSeededDealer([]byte("same")), 1, nil)
	b := NewSession(deck.NewSeededDealer([]byte("same")), 1, nil)
	for i := 0; i < 3; i++ {
		ta, err := a.NextBoard()
		require.NoError(t, err)
		tb, err := b.NextBoard()
		require.NoError(t, err)
		for _, seat := range bridge.Seats {
			assert.Equal(t, ta.Hand(seat).String(), tb.Hand(seat).String())
		}
		assert.Equal(t, notations(ta.Calls()), notations(tb.Calls()))
	}
}

func TestSessionUnfinishedBoardIsNotRecorded(t *testing.T) {
	s := NewSession(deck.NewSeededDealer([]byte("redeal")), 3, nil)
	_, err := s.NextBoard()
	require.NoError(t, err)
	assert.Empty(t, s.History())
	assert.Equal(t, 1, s.Ledger().Len())
}
