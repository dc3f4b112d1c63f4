// Package database handles the lower level support for maintaining the
// blockchain in memory. Nothing is persisted, the chain lives as long as
// the process does.
package database

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
)

// ErrChainForked is returned from Write when the block doesn't link to the
// latest block in the chain.
var ErrChainForked = errors.New("block doesn't extend the latest block")

// =============================================================================

// Database manages the chain of blocks. Reads are snapshot consistent, a
// caller never observes a chain in the middle of a write.
type Database struct {
	mu     sync.RWMutex
	blocks []Block
}

// New constructs a database holding only the genesis block.
func New(gen genesis.Genesis) *Database {
	return &Database{
		blocks: []Block{NewGenesisBlock(gen)},
	}
}

// LatestBlock returns the last block in the chain.
func (db *Database) LatestBlock() Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.blocks[len(db.blocks)-1].Clone()
}

// Length returns the number of blocks in the chain.
func (db *Database) Length() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.blocks)
}

// Write appends the block to the chain. The block must be linked to the
// latest block.
func (db *Database) Write(block Block) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	latest := db.blocks[len(db.blocks)-1]
	if block.PrevHash != latest.Hash() {
		return fmt.Errorf("%w: blk[%d]: parent %s", ErrChainForked, block.Index, block.PrevHash)
	}

	db.blocks = append(db.blocks, block.Clone())

	return nil
}

// Replace swaps the entire chain for the specified blocks. No validation
// is performed, that is the caller's job.
func (db *Database) Replace(blocks []Block) error {
	if len(blocks) == 0 {
		return errors.New("can't replace the chain with an empty chain")
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	db.blocks = cloneBlocks(blocks)

	return nil
}

// Copy returns a copy of the chain.
func (db *Database) Copy() []Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return cloneBlocks(db.blocks)
}

// =============================================================================

func cloneBlocks(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i, block := range blocks {
		out[i] = block.Clone()
	}

	return out
}
