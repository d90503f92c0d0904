// Package ledger implements an append-only, hash-chained record of the
// boards completed during a training session.
//
// # Core Components
//
// Blockchain: An in-memory log of completed boards with SHA-256 hash
// chaining for tamper detection.
//
// Block: A single completed board record with its metadata and the hash of
// the block before it.
//
// # Properties
//
// The chain provides:
//   - Append-only history: blocks are never modified or removed
//   - Verifiability: the whole chain can be re-hashed and checked at any time
//   - Tamper detection: any modification breaks the hash chain
//
// # Usage
//
// Create a chain with NewBlockchain, which installs the genesis block, then
// Append one record per completed board. Nothing is persisted: the chain
// lives as long as the session.
package ledger
