package application

import (
	"io"
	"log/slog"
)

type trainerOption func(Trainer) Trainer

func WithLogger(log *slog.Logger) trainerOption {
	return func(t Trainer) Trainer {
		if log != nil {
			t.log = log
		}
		return t
	}
}

// WithLedger records every finished board in l.
func WithLedger(l Ledger) trainerOption {
	return func(t Trainer) Trainer {
		t.ledger = l
		return t
	}
}

func WithBidderFactory(f BidderFactory) trainerOption {
	return func(t Trainer) Trainer {
		if f != nil {
			t.newBidder = f
		}
		return t
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
