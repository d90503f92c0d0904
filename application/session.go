package application

import (
	"log/slog"

	"github.com/luca-patrignani/bridge-trainer/domain/bridge"
	"github.com/luca-patrignani/bridge-trainer/domain/deck"
	"github.com/luca-patrignani/bridge-trainer/ledger"
)

// Session deals consecutive boards. The board counter fixes the dealer and
// vulnerability of each board.
type Session struct {
	dealer *deck.Dealer
	next   bridge.Board
	chain  *ledger.Blockchain
	log    *slog.Logger
	opts   []trainerOption
}

// NewSession starts counting at first. Every trainer it creates records into
// the session's ledger; opts are passed on to each trainer.
func NewSession(dealer *deck.Dealer, first bridge.Board, log *slog.Logger, opts ...trainerOption) *Session {
	if first < 1 {
		first = 1
	}
	if log == nil {
		log = discardLogger()
	}
	return &Session{
		dealer: dealer,
		next:   first,
		chain:  ledger.NewBlockchain(),
		log:    log,
		opts:   opts,
	}
}

// NextBoard deals the next board and returns its trainer.
func (s *Session) NextBoard() (*Trainer, error) {
	board := s.next
	s.next++
	s.log.Info("dealing", "board", int(board), "dealer", board.Dealer(), "vulnerability", board.Vulnerability())
	opts := append([]trainerOption{WithLogger(s.log), WithLedger(s.chain)}, s.opts...)
	return NewTrainer(board, s.dealer.Deal(), opts...)
}

// Ledger returns the chain of finished boards.
func (s *Session) Ledger() *ledger.Blockchain {
	return s.chain
}

// History returns the records of the finished boards, oldest first.
// Blocks that do not hold a Record are skipped.
func (s *Session) History() []Record {
	blocks := s.chain.Blocks()
	out := make([]Record, 0, len(blocks))
	for _, b := range blocks {
		if r, ok := b.Record.(Record); ok {
			out = append(out, r)
		}
	}
	return out
}
