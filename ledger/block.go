package ledger

// Block is one entry of the chain.
type Block struct {
	Index     int      `json:"index"`
	Timestamp int64    `json:"timestamp"`
	PrevHash  string   `json:"prev_hash"`
	Hash      string   `json:"hash"`
	Record    any      `json:"record"` // JSON-encodable board data
	Metadata  Metadata `json:"metadata"`
}

type Metadata struct {
	Kind  string            `json:"kind"`
	Extra map[string]string `json:"extra,omitempty"`
}

const (
	KindGenesis = "genesis"
	KindBoard   = "board"
)
