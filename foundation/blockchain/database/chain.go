package database

import (
	"errors"
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// ErrChainInvalid is returned when a chain fails validation.
var ErrChainInvalid = errors.New("chain is invalid")

// ValidateChain walks the chain from the genesis block forward checking each
// block is linked to its parent by hash and carries a proof that solves the
// puzzle against its parent. The genesis block is never checked against
// anything. The chain is not modified.
func ValidateChain(blocks []Block, evHandler func(v string, args ...any)) error {
	for i := 1; i < len(blocks); i++ {
		prevBlock := blocks[i-1]
		block := blocks[i]
		prevHash := prevBlock.Hash()

		evHandler("database: ValidateChain: validate: blk[%d]: check: parent hash does match parent block", block.Index)

		if block.PrevHash != prevHash {
			return fmt.Errorf("%w: blk[%d]: parent block hash doesn't match, got %s, exp %s", ErrChainInvalid, block.Index, block.PrevHash, prevHash)
		}

		evHandler("database: ValidateChain: validate: blk[%d]: check: proof solves the puzzle", block.Index)

		if !pow.IsValid(prevBlock.Proof, block.Proof, prevHash) {
			return fmt.Errorf("%w: blk[%d]: proof %d doesn't solve the puzzle", ErrChainInvalid, block.Index, block.Proof)
		}
	}

	return nil
}

// IsValidChain is the boolean form of ValidateChain.
func IsValidChain(blocks []Block) bool {
	return ValidateChain(blocks, func(string, ...any) {}) == nil
}

// =============================================================================

// ChainData represents a full chain as it is exchanged between nodes.
type ChainData struct {
	Chain  []Block `json:"chain"`
	Length int     `json:"length"`
}

// NewChainData constructs the value to send to another node.
func NewChainData(blocks []Block) ChainData {
	return ChainData{
		Chain:  blocks,
		Length: len(blocks),
	}
}
