package convention

import (
	"strconv"

	"github.com/luca-patrignani/bridge-trainer/domain/bridge"
)

// stepStrains maps a count of 0 or 4, 1, 2 and 3 onto the answering strain.
var stepStrains = [4]bridge.Strain{bridge.StrainDiamonds, bridge.StrainHearts, bridge.StrainSpades, bridge.NoTrump}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}

// gerberSteps answers an ask at level, counting with count. Four answers like
// zero. A next of StateDone makes the answers terminal.
func gerberSteps(level int, word string, count func(*Engine) int, next State) ladder {
	l := make(ladder, 0, len(stepStrains))
	for n, strain := range stepStrains {
		rationale := plural(n, word)
		if n == 0 {
			rationale = "0 or 4 " + word + "s"
		}
		var then node = propose{bid(level, strain), rationale, next}
		if next == StateDone {
			then = terminal{bid(level, strain), rationale}
		}
		l = append(l, rule{
			name: strconv.Itoa(level) + string(strain.Letter()) + "-" + strconv.Itoa(n) + "-" + word + "s",
			when: func(e *Engine, _ bridge.Call) bool { return count(e)%4 == n },
			then: then,
		})
	}
	return l
}

func gerberLadder() ladder {
	return gerberSteps(4, "ace", func(e *Engine) int { return e.aces }, StateGerberKings)
}

func gerberKingsLadder() ladder {
	kings := gerberSteps(5, "king", func(e *Engine) int { return e.kings }, StateDone)
	ask := partnerBid(5, bridge.StrainClubs)
	for i := range kings {
		kings[i].when = all(ask, kings[i].when)
	}
	return append(kings, rule{"gerber-signoff", always, end{}})
}

// josephineLadder answers the ask for the top three trump honors.
func josephineLadder() ladder {
	l := make(ladder, 0, 3*len(bridge.Suits))
	for _, s := range bridge.Suits {
		strain := bridge.StrainOf(s)
		sym := s.Symbol()
		l = append(l,
			rule{"josephine-0-1-" + string(s.Letter()), all(trump(s), topHonors(0, 1)),
				terminal{bridge.Pass, "0-1 of the top 3 " + sym + " honors"}},
			rule{"josephine-2-" + string(s.Letter()), all(trump(s), topHonors(2, 2)),
				terminal{bid(6, strain), "2 of the top 3 " + sym + " honors"}},
			rule{"josephine-3-" + string(s.Letter()), all(trump(s), topHonors(3, 3)),
				terminal{bid(7, strain), "all of the top 3 " + sym + " honors"}},
		)
	}
	return l
}

func trump(s bridge.Suit) condition {
	return func(e *Engine, _ bridge.Call) bool { return e.trump == s }
}

func topHonors(lo, hi int) condition {
	return func(e *Engine, _ bridge.Call) bool {
		n := e.hand.Honors(e.trump, bridge.Queen)
		return n >= lo && n <= hi
	}
}
