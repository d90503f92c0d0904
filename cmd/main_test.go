package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/bridge-trainer/application"
	"github.com/luca-patrignani/bridge-trainer/domain/bridge"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func calls(t *testing.T, notations ...string) []bridge.Call {
	t.Helper()
	out := make([]bridge.Call, len(notations))
	for i, n := range notations {
		c, err := bridge.ParseCall(n)
		require.NoError(t, err)
		out[i] = c
	}
	return out
}

func TestAuctionRows(t *testing.T) {
	tests := []struct {
		name     string
		dealer   bridge.Seat
		calls    []string
		finished bool
		want     [][]string
	}{
		{"empty west", bridge.West, nil, false, [][]string{{"?", "", "", ""}}},
		{"north deals", bridge.North, []string{"1N", "P"}, false, [][]string{{"", "1NT", "Pass", "?"}}},
		{"south deals", bridge.South, []string{"1C", "P", "1D"}, false,
			[][]string{{"", "", "", "1♣"}, {"Pass", "1♦", "?", ""}}},
		{"finished", bridge.West, []string{"P", "P", "P", "P"}, true, [][]string{{"Pass", "Pass", "Pass", "Pass"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := auctionRows(tt.dealer, calls(t, tt.calls...), tt.finished)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandLines(t *testing.T) {
	h := bridge.MustParseHand("AKQ2|-|JT98765|43")
	assert.Equal(t, []string{"♠ AKQ2", "♥ -", "♦ JT98765", "♣ 43"}, handLines(h))
	assert.Equal(t, "10 HCP, 4=0=7=2, unbalanced", handSummary(h))
}

func TestParseFullHand(t *testing.T) {
	h, err := parseFullHand("akq2|kq2|432|432")
	require.NoError(t, err)
	assert.Equal(t, 13, h.Len())

	_, err = parseFullHand("AKQ2|KQ2|432")
	assert.ErrorIs(t, err, bridge.ErrMalformedHand)
	_, err = parseFullHand("AKQ2|KQ2|432|43")
	assert.ErrorIs(t, err, bridge.ErrMalformedHand)
	_, err = parseFullHand("AKQ2|KQ2|432|442")
	assert.ErrorIs(t, err, bridge.ErrMalformedHand)
}

func TestOpeningReport(t *testing.T) {
	h, err := parseFullHand("AK32|KQ2|Q32|J32")
	require.NoError(t, err)
	report, err := openingReport(h)
	require.NoError(t, err)
	assert.Equal(t, "Opening: 1NT (14-16 HCP, balanced)", report)
}

func TestCallOptions(t *testing.T) {
	legal := calls(t, "P", "2C", "2N")
	options := callOptions(legal)
	assert.Equal(t, []string{"Pass", "2♣", "2NT"}, options)

	c, ok := optionCall(legal, "2NT")
	require.True(t, ok)
	assert.True(t, c.Is(2, bridge.NoTrump))
	_, ok = optionCall(legal, optionExplain)
	assert.False(t, ok)
}

func TestHistoryTable(t *testing.T) {
	data := historyTable([]application.Record{
		{Board: 1, Dealer: "North", Vulnerability: "None", Calls: []string{"1N", "P", "3N", "P", "P", "P"}, Contract: "3N", Declarer: "North"},
		{Board: 2, Dealer: "East", Vulnerability: "N/S", Calls: []string{"P", "P", "P", "P"}},
	})
	require.Len(t, data, 3)
	assert.Equal(t, []string{"1", "North", "None", "1N P 3N P P P", "3N by North"}, data[1])
	assert.Equal(t, "Passed out", data[2][4])
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, pterm.LogLevelDebug, logLevel(slog.LevelDebug))
	assert.Equal(t, pterm.LogLevelInfo, logLevel(slog.LevelInfo))
	assert.Equal(t, pterm.LogLevelWarn, logLevel(slog.LevelWarn))
	assert.Equal(t, pterm.LogLevelError, logLevel(slog.LevelError))
}
