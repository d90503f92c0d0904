package application

import "github.com/luca-patrignani/bridge-trainer/domain/bridge"

// Record is the ledger entry of a finished board.
type Record struct {
	Board         int               `json:"board"`
	Dealer        string            `json:"dealer"`
	Vulnerability string            `json:"vulnerability"`
	Hands         map[string]string `json:"hands"`
	Calls         []string          `json:"calls"`
	// Contract is empty when the board was passed out.
	Contract     string        `json:"contract,omitempty"`
	Declarer     string        `json:"declarer,omitempty"`
	Explanations []Explanation `json:"explanations"`
}

// Explanation is the reason North gave for one of its calls.
type Explanation struct {
	// Index of the call in the auction
	Index     int         `json:"index"`
	Call      bridge.Call `json:"-"`
	Notation  string      `json:"call"`
	Text      string      `json:"text"`
	Rule      string      `json:"rule,omitempty"`
	Unhandled bool        `json:"unhandled,omitempty"`
}

func (t *Trainer) record() Record {
	r := Record{
		Board:         int(t.board),
		Dealer:        t.board.Dealer().String(),
		Vulnerability: t.board.Vulnerability().String(),
		Hands:         make(map[string]string, len(bridge.Seats)),
		Explanations:  t.Explanations(),
	}
	for _, s := range bridge.Seats {
		r.Hands[s.String()] = t.deal.Hand(s).String()
	}
	for _, c := range t.auction.Calls() {
		r.Calls = append(r.Calls, c.Notation())
	}
	if contract, declarer, ok := t.auction.Contract(); ok {
		r.Contract = contract.Call().Notation()
		r.Declarer = declarer.String()
	}
	return r
}
