package convention

import "github.com/luca-patrignani/bridge-trainer/domain/bridge"

// longest reports whether suit is the first suit of the labeled shape with at least n cards.
func longest(suit bridge.Suit, n int) condition {
	return func(e *Engine, _ bridge.Call) bool {
		return e.labeled[0].Suit == suit && e.labeled[0].Length >= n
	}
}

// shortDiamonds matches 4=4=1=4, 4=4=0=5, 4=3=1=5 and 3=4=1=5: diamonds is
// the shortest suit with at most one card.
func shortDiamonds(e *Engine, _ bridge.Call) bool {
	return e.labeled[3].Suit == bridge.Diamonds && e.labeled[3].Length <= 1
}

func openingLadder() ladder {
	return ladder{
		{"pass-weak", hcpAtMost(10),
			propose{bridge.Pass, "0-10 HCP", StateResponding}},
		{"1nt", all(balanced, hcpBetween(14, 16)),
			propose{bid(1, bridge.NoTrump), "14-16 HCP, balanced", StateOneNoTrump}},
		{"2nt", all(balanced, hcpBetween(20, 21)),
			terminal{bid(2, bridge.NoTrump), "20-21 HCP, balanced"}},
		{"1c-strong", hcpAtLeast(16),
			propose{bid(1, bridge.StrainClubs), "16+ HCP (17+ if balanced)", StateStrongClub}},
		{"1s", longest(bridge.Spades, 5),
			propose{bid(1, bridge.StrainSpades), "5+♠, 10-15 HCP", StateSuitOpened}},
		{"1h", longest(bridge.Hearts, 5),
			propose{bid(1, bridge.StrainHearts), "5+♥, 10-15 HCP", StateSuitOpened}},
		{"2c", longest(bridge.Clubs, 6),
			propose{bid(2, bridge.StrainClubs), "6+♣, 10-15 HCP", StateSuitOpened}},
		{"2d", shortDiamonds,
			propose{bid(2, bridge.StrainDiamonds), "4=4=1=4 / 4=4=0=5 / 4=3=1=5 / 3=4=1=5, 10-15 HCP", StateSuitOpened}},
		{"1d", always,
			propose{bid(1, bridge.StrainDiamonds), "2+♦, 10-15 HCP", StateSuitOpened}},
	}
}

// respondingLadder answers partner's opening, either as responder or after
// this seat passed in first or second hand. Partner passing too leaves
// nothing to say.
func respondingLadder() ladder {
	return ladder{
		{"passed-out", partnerPasses, end{}},
		{"1d-negative", all(partnerBid(1, bridge.StrainClubs), hcpAtMost(7)),
			propose{bid(1, bridge.StrainDiamonds), "0-7 HCP", StateResponded}},
		{"1h-positive", all(partnerBid(1, bridge.StrainClubs), hcpAtMost(11), notPassed),
			propose{bid(1, bridge.StrainHearts), "8-11 HCP", StateResponded}},
	}
}

func strongClubLadder() ladder {
	relay := partnerBid(1, bridge.StrainDiamonds)
	rebid := func(level, hi int, rationale string) rule {
		return rule{
			name: bid(level, bridge.NoTrump).Notation() + "-rebid",
			when: all(relay, balanced, hcpAtMost(hi)),
			then: propose{bid(level, bridge.NoTrump), rationale, StateStrongClubRebid},
		}
	}
	return ladder{
		rebid(1, 19, "17-19 HCP, balanced"),
		rebid(2, 24, "22-24 HCP, balanced"),
		rebid(3, 27, "25-27 HCP, balanced"),
		rebid(4, 30, "28-30 HCP, balanced"),
		rebid(5, 33, "31-33 HCP, balanced"),
		rebid(6, 36, "34-36 HCP, balanced"),
		rebid(7, 37, "37 HCP, balanced"),
	}
}
