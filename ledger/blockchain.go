package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"
)

var (
	ErrEmpty        = errors.New("blockchain is empty")
	ErrOutOfRange   = errors.New("index out of range")
	ErrInvalidBlock = errors.New("invalid block")
)

// Blockchain is safe for concurrent use.
type Blockchain struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// NewBlockchain creates a new blockchain with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and no record.
func NewBlockchain() *Blockchain {
	bc := &Blockchain{
		blocks: make([]Block, 0),
		now:    time.Now,
	}

	genesis := Block{
		Index:     0,
		Timestamp: bc.now().Unix(),
		PrevHash:  "0",
		Metadata:  Metadata{Kind: KindGenesis},
	}
	// a nil record always encodes
	genesis.Hash, _ = calculateHash(genesis)
	bc.blocks = append(bc.blocks, genesis)

	return bc
}

// Append hashes record into a new block, validates it against the latest
// block and adds it. The extra parameter can optionally carry metadata
// covered by the hash.
func (bc *Blockchain) Append(record any, extra ...map[string]string) (Block, error) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = maps.Clone(extra[0])
	}
	latest := bc.blocks[len(bc.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: bc.now().Unix(),
		PrevHash:  latest.Hash,
		Record:    record,
		Metadata: Metadata{
			Kind:  KindBoard,
			Extra: extraMsg,
		},
	}

	hash, err := calculateHash(newBlock)
	if err != nil {
		return Block{}, fmt.Errorf("%w: %w", ErrInvalidBlock, err)
	}
	newBlock.Hash = hash

	if err := validateBlock(newBlock, latest); err != nil {
		return Block{}, fmt.Errorf("%w: %w", ErrInvalidBlock, err)
	}

	bc.blocks = append(bc.blocks, newBlock)

	return newBlock, nil
}

// GetLatest returns the most recently added block in the blockchain.
func (bc *Blockchain) GetLatest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, ErrEmpty
	}

	return bc.blocks[len(bc.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}

	return bc.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.blocks)
}

// Blocks returns a copy of the chain without the genesis block.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	if len(bc.blocks) < 2 {
		return nil
	}
	return slices.Clone(bc.blocks[1:])
}

// Verify validates the integrity of the entire blockchain by checking the
// genesis block and each subsequent block's hash, index continuity and
// previous hash linkage.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return ErrEmpty
	}

	genesis := bc.blocks[0]
	if genesis.PrevHash != "0" || genesis.Index != 0 {
		return fmt.Errorf("%w: genesis", ErrInvalidBlock)
	}
	if hash, err := calculateHash(genesis); err != nil || hash != genesis.Hash {
		return fmt.Errorf("%w: genesis hash", ErrInvalidBlock)
	}

	for i := 1; i < len(bc.blocks); i++ {
		if err := validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d: %w: %w", i, ErrInvalidBlock, err)
		}
	}

	return nil
}

// validateBlock verifies that a block is valid relative to the previous block.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash, err := calculateHash(current)
	if err != nil {
		return err
	}
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	return nil
}

// calculateHash computes the SHA256 hash of a block from its index,
// timestamp, previous hash, record and metadata. The record and metadata
// are JSON marshaled before hashing.
func calculateHash(block Block) (string, error) {
	recordBytes, err := json.Marshal(block.Record)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}

	metadataBytes, err := json.Marshal(block.Metadata)
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}

	data := fmt.Sprintf("%d%d%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(recordBytes),
		string(metadataBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:]), nil
}
