package application

import (
	"github.com/luca-patrignani/bridge-trainer/domain/bridge"
	"github.com/luca-patrignani/bridge-trainer/domain/convention"
	"github.com/luca-patrignani/bridge-trainer/ledger"
)

// Bidder is the automatic partner. *convention.Engine implements it.
type Bidder interface {
	// Start is the first activation.
	Start() (convention.Proposal, error)
	// Resume answers partner's latest call.
	Resume(partner bridge.Call) (convention.Proposal, error)
}

// BidderFactory creates the bidder for a board. partnerOpening is a pass when
// the bidder is first to speak for its side.
type BidderFactory func(hand *bridge.Hand, vul bridge.Vulnerability, pos bridge.Position, partnerOpening bridge.Call) Bidder

// Ledger records completed boards.
type Ledger interface {
	// Append adds a new block with the board record
	Append(record any, extra ...map[string]string) (ledger.Block, error)

	// Verify checks the integrity of the chain
	Verify() error
}

// ConventionBidder builds the convention engine for the hand.
func ConventionBidder(hand *bridge.Hand, vul bridge.Vulnerability, pos bridge.Position, partnerOpening bridge.Call) Bidder {
	return convention.New(hand, vul, pos, convention.WithPartnerOpening(partnerOpening))
}
