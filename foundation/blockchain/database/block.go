package database

import (
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
)

// Block represents a group of transactions batched together.
type Block struct {
	Index        uint64 `json:"index"`         // Position in the chain, the genesis block is 1.
	TimeStamp    uint64 `json:"timestamp"`     // Time the block was forged, unix seconds.
	Transactions []Tx   `json:"transactions"`  // Transactions in inclusion order.
	Proof        uint64 `json:"proof"`         // Solution to the puzzle relative to the previous block.
	PrevHash     string `json:"previous_hash"` // Hash of the previous block.
}

// NewGenesisBlock constructs the first block of the chain. It is the only
// block that doesn't require a proof of work.
func NewGenesisBlock(gen genesis.Genesis) Block {
	return Block{
		Index:        1,
		TimeStamp:    uint64(gen.Date.UTC().Unix()),
		Transactions: []Tx{},
		Proof:        gen.Proof,
		PrevHash:     gen.PrevHash,
	}
}

// NewBlock constructs the block that follows the previous block using a
// proof that has already been found for it.
func NewBlock(prevBlock Block, proof uint64, trans []Tx) Block {
	if trans == nil {
		trans = []Tx{}
	}

	return Block{
		Index:        prevBlock.Index + 1,
		TimeStamp:    uint64(time.Now().UTC().Unix()),
		Transactions: trans,
		Proof:        proof,
		PrevHash:     prevBlock.Hash(),
	}
}

// Hash returns the unique hash for the Block.
func (b Block) Hash() string {
	return digest.Sum(newCanonicalBlock(b))
}

// Clone returns a copy of the block that shares no memory with the original.
func (b Block) Clone() Block {
	trans := make([]Tx, len(b.Transactions))
	copy(trans, b.Transactions)
	b.Transactions = trans

	return b
}

// =============================================================================

// canonicalBlock is the form of a block that is hashed. The fields MUST stay
// declared in lexicographic order of their keys, so two blocks with the same
// values always produce the same bytes.
type canonicalBlock struct {
	Index        uint64        `json:"index"`
	PrevHash     string        `json:"previous_hash"`
	Proof        uint64        `json:"proof"`
	TimeStamp    uint64        `json:"timestamp"`
	Transactions []canonicalTx `json:"transactions"`
}

// canonicalTx is the form of a transaction that is hashed. Same ordering
// rule as canonicalBlock.
type canonicalTx struct {
	Amount    uint64 `json:"amount"`
	Recipient string `json:"recipient"`
	Sender    string `json:"sender"`
}

func newCanonicalBlock(b Block) canonicalBlock {
	trans := make([]canonicalTx, len(b.Transactions))
	for i, tx := range b.Transactions {
		trans[i] = canonicalTx{
			Amount:    tx.Amount,
			Recipient: tx.Recipient,
			Sender:    tx.Sender,
		}
	}

	return canonicalBlock{
		Index:        b.Index,
		PrevHash:     b.PrevHash,
		Proof:        b.Proof,
		TimeStamp:    b.TimeStamp,
		Transactions: trans,
	}
}
