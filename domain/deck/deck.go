package deck

import (
	"crypto/cipher"
	"math/big"

	"github.com/luca-patrignani/bridge-trainer/domain/bridge"
	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

// Size is the number of cards in a bridge deck.
const Size = 52

var suite suites.Suite = suites.MustFind("Ed25519")

// New returns the 52 cards ordered by suit, then rank.
func New() []bridge.Card {
	cards := make([]bridge.Card, 0, Size)
	for _, s := range bridge.Suits {
		for r := bridge.Two; r <= bridge.Ace; r++ {
			cards = append(cards, bridge.MustCard(s, r))
		}
	}
	return cards
}

// Deal holds the four hands of a board, indexed by seat.
type Deal [4]*bridge.Hand

// Hand returns the hand dealt to seat.
func (d Deal) Hand(seat bridge.Seat) *bridge.Hand {
	return d[seat]
}

// Dealer shuffles and deals boards from a random stream.
type Dealer struct {
	stream cipher.Stream
}

// NewDealer returns a Dealer reading from stream. A nil stream selects the
// suite's cryptographic random stream.
func NewDealer(stream cipher.Stream) *Dealer {
	if stream == nil {
		stream = suite.RandomStream()
	}
	return &Dealer{stream: stream}
}

// NewSeededDealer returns a Dealer whose deals are fully determined by seed.
func NewSeededDealer(seed []byte) *Dealer {
	return NewDealer(suite.XOF(seed))
}

// Shuffle permutes cards in place with Fisher-Yates. Every index is drawn
// uniformly, so each permutation is equally likely.
func (d *Dealer) Shuffle(cards []bridge.Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), d.stream).Int64())
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Deal shuffles a fresh deck and gives 13 consecutive cards to each seat,
// North first.
func (d *Dealer) Deal() Deal {
	cards := New()
	d.Shuffle(cards)
	var deal Deal
	for i, seat := range bridge.Seats {
		h := &bridge.Hand{}
		for _, c := range cards[i*bridge.HandSize : (i+1)*bridge.HandSize] {
			h.Add(c)
		}
		deal[seat] = h
	}
	return deal
}
