package convention

import "github.com/luca-patrignani/bridge-trainer/domain/bridge"

// A 1NT opener holds 14-16 HCP. Invitations are accepted with a maximum.
const acceptInvitation = 15

var maximum = hcpAtLeast(acceptInvitation)

func toPlay(name string, level int, strain bridge.Strain) rule {
	return rule{name, partnerBid(level, strain), terminal{bridge.Pass, "to play"}}
}

// quantitative answers partner's no-trump raises opposite a 14-16 opening.
func quantitative() ladder {
	nt := bridge.NoTrump
	return ladder{
		{"2nt-accept", all(partnerBid(2, nt), maximum),
			terminal{bid(3, nt), "15-16 HCP, accepting the invitation"}},
		{"2nt-decline", partnerBid(2, nt),
			terminal{bridge.Pass, "14 HCP, declining the invitation"}},
		toPlay("3nt-to-play", 3, nt),
		{"4nt-accept", all(partnerBid(4, nt), maximum),
			terminal{bid(6, nt), "15-16 HCP, accepting the slam invitation"}},
		{"4nt-decline", partnerBid(4, nt),
			terminal{bridge.Pass, "14 HCP, declining the slam invitation"}},
		{"5nt-accept", all(partnerBid(5, nt), maximum),
			terminal{bid(7, nt), "15-16 HCP, accepting the grand slam invitation"}},
		{"5nt-decline", partnerBid(5, nt),
			terminal{bid(6, nt), "14 HCP, settling for the small slam"}},
		toPlay("6nt-to-play", 6, nt),
		toPlay("7nt-to-play", 7, nt),
	}
}

func oneNoTrumpLadder() ladder {
	l := quantitative()
	return append(l,
		rule{"stayman", partnerBid(2, bridge.StrainClubs), delegate{to: StateStayman}},
		rule{"jacoby-hearts", partnerBid(2, bridge.StrainDiamonds),
			propose{bid(2, bridge.StrainHearts), "completing the transfer to ♥", StateTransferHearts}},
		rule{"jacoby-spades", partnerBid(2, bridge.StrainHearts),
			propose{bid(2, bridge.StrainSpades), "completing the transfer to ♠", StateTransferSpades}},
		rule{"minor-transfer", partnerBid(2, bridge.StrainSpades),
			propose{bid(3, bridge.StrainClubs), "completing the transfer to ♣", StateMinorTransfer}},
		rule{"gerber", partnerBid(4, bridge.StrainClubs), delegate{to: StateGerber}},
		rule{"texas-hearts", partnerBid(4, bridge.StrainDiamonds),
			terminal{bid(4, bridge.StrainHearts), "completing the Texas transfer to ♥"}},
		rule{"texas-spades", partnerBid(4, bridge.StrainHearts),
			terminal{bid(4, bridge.StrainSpades), "completing the Texas transfer to ♠"}},
		rule{"josephine-hearts", partnerBid(5, bridge.StrainHearts),
			delegate{to: StateJosephine, trump: bridge.Hearts, setTrump: true}},
		rule{"josephine-spades", partnerBid(5, bridge.StrainSpades),
			delegate{to: StateJosephine, trump: bridge.Spades, setTrump: true}},
		rule{"forced-pass", always, terminal{bridge.Pass, "to play (forced)"}},
	)
}

func staymanLadder() ladder {
	return ladder{
		{"stayman-hearts", atLeast(bridge.Hearts, 4),
			propose{bid(2, bridge.StrainHearts), "4-5 ♥", StateStaymanHearts}},
		{"stayman-spades", atLeast(bridge.Spades, 4),
			propose{bid(2, bridge.StrainSpades), "4-5 ♠, 2-3 ♥", StateStaymanSpades}},
		{"stayman-denial", always,
			propose{bid(2, bridge.StrainDiamonds), "no 4-card major", StateStaymanDenied}},
	}
}

// staymanHeartsLadder follows a 2♥ answer. Responder's no-trump continuation
// promises four spades, so a hand that also holds four spades corrects to them.
func staymanHeartsLadder() ladder {
	spades := atLeast(bridge.Spades, 4)
	l := ladder{
		{"2nt-spade-fit-accept", all(partnerBid(2, bridge.NoTrump), spades, maximum),
			terminal{bid(4, bridge.StrainSpades), "4 ♠ as well, 15-16 HCP"}},
		{"2nt-spade-fit-decline", all(partnerBid(2, bridge.NoTrump), spades),
			terminal{bid(3, bridge.StrainSpades), "4 ♠ as well, 14 HCP"}},
		{"3nt-spade-fit", all(partnerBid(3, bridge.NoTrump), spades),
			terminal{bid(4, bridge.StrainSpades), "4 ♠ as well"}},
	}
	l = append(l, majorRaise(bridge.Hearts)...)
	return append(l, quantitative()...)
}

func staymanSpadesLadder() ladder {
	return append(majorRaise(bridge.Spades), quantitative()...)
}

// majorRaise answers partner raising the major shown in reply to Stayman.
func majorRaise(major bridge.Suit) ladder {
	strain := bridge.StrainOf(major)
	return ladder{
		{"3" + string(major.Letter()) + "-accept", all(partnerBid(3, strain), maximum),
			terminal{bid(4, strain), "15-16 HCP, accepting the " + major.Symbol() + " invitation"}},
		{"3" + string(major.Letter()) + "-decline", partnerBid(3, strain),
			terminal{bridge.Pass, "14 HCP, declining the " + major.Symbol() + " invitation"}},
		toPlay("4"+string(major.Letter())+"-to-play", 4, strain),
	}
}

func staymanDeniedLadder() ladder {
	l := ladder{
		{"pass-or-correct-spades", all(partnerBid(2, bridge.StrainHearts), length(bridge.Hearts, 2, 2)),
			terminal{bid(2, bridge.StrainSpades), "pass or correct: 2 ♥, preferring ♠"}},
		{"pass-or-correct-hearts", partnerBid(2, bridge.StrainHearts),
			terminal{bridge.Pass, "pass or correct: 3 ♥"}},
		toPlay("2s-to-play", 2, bridge.StrainSpades),
	}
	return append(l, quantitative()...)
}

// transferLadder follows a completed Jacoby transfer. Responder holds five or
// more cards in the major, so three-card support makes a fit.
func transferLadder(major bridge.Suit) ladder {
	strain := bridge.StrainOf(major)
	sym := major.Symbol()
	l := string(major.Letter())
	fit := atLeast(major, 3)
	doubleton := length(major, 2, 2)
	nt := bridge.NoTrump
	return ladder{
		{"2nt-accept-fit-" + l, all(partnerBid(2, nt), maximum, fit),
			terminal{bid(4, strain), "15-16 HCP, 3+ " + sym}},
		{"2nt-accept-" + l, all(partnerBid(2, nt), maximum),
			terminal{bid(3, nt), "15-16 HCP, 2 " + sym}},
		{"2nt-decline-fit-" + l, all(partnerBid(2, nt), fit),
			terminal{bid(3, strain), "14 HCP, 3+ " + sym}},
		{"2nt-decline-" + l, all(partnerBid(2, nt), doubleton),
			terminal{bridge.Pass, "14 HCP, 2 " + sym}},
		{"3" + l + "-accept", all(partnerBid(3, strain), maximum),
			terminal{bid(4, strain), "15-16 HCP, accepting the " + sym + " invitation"}},
		{"3" + l + "-decline", partnerBid(3, strain),
			terminal{bridge.Pass, "14 HCP, declining the " + sym + " invitation"}},
		{"3nt-choose-major-" + l, all(partnerBid(3, nt), fit),
			terminal{bid(4, strain), "3+ " + sym + ", choosing the major game"}},
		{"3nt-choose-nt-" + l, partnerBid(3, nt),
			terminal{bridge.Pass, "2 " + sym + ", choosing no-trump"}},
		toPlay("4"+l+"-to-play", 4, strain),
		{"4nt-accept-fit-" + l, all(partnerBid(4, nt), maximum, fit),
			terminal{bid(6, strain), "15-16 HCP, 3+ " + sym + ", accepting the slam invitation"}},
		{"4nt-accept-" + l, all(partnerBid(4, nt), maximum),
			terminal{bid(6, nt), "15-16 HCP, 2 " + sym + ", accepting the slam invitation"}},
		{"4nt-decline-" + l, partnerBid(4, nt),
			terminal{bridge.Pass, "14 HCP, declining the slam invitation"}},
	}
}

func minorTransferLadder() ladder {
	return ladder{
		{"3d-to-play", partnerBid(3, bridge.StrainDiamonds),
			terminal{bridge.Pass, "to play, forced"}},
	}
}
