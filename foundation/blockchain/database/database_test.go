package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func noop(v string, args ...any) {}

// mine finds the proof for the block that follows prevBlock.
func mine(t *testing.T, prevBlock database.Block, trans []database.Tx) database.Block {
	proof, err := pow.Solve(context.Background(), prevBlock.Proof, prevBlock.Hash(), noop)
	if err != nil {
		t.Fatalf("Should be able to solve the puzzle: %s", err)
	}

	return database.NewBlock(prevBlock, proof, trans)
}

// buildChain mines a chain of the specified length.
func buildChain(t *testing.T, length int) []database.Block {
	blocks := []database.Block{database.NewGenesisBlock(genesis.Default())}
	for len(blocks) < length {
		tx := database.NewRewardTx("miner", 1)
		blocks = append(blocks, mine(t, blocks[len(blocks)-1], []database.Tx{tx}))
	}

	return blocks
}

// invalidProof returns a proof that doesn't solve the puzzle.
func invalidProof(lastProof uint64, proof uint64, lastHash string) uint64 {
	for {
		proof++
		if !pow.IsValid(lastProof, proof, lastHash) {
			return proof
		}
	}
}

// =============================================================================

func Test_Genesis(t *testing.T) {
	gen := genesis.Default()
	block := database.NewGenesisBlock(gen)

	if block.Index != 1 {
		t.Fatalf("Should get back index 1 for the genesis block: %d", block.Index)
	}

	if block.PrevHash != "1" || block.Proof != 100 {
		t.Logf("got: %s %d", block.PrevHash, block.Proof)
		t.Logf("exp: %s %d", "1", 100)
		t.Fatalf("Should get back the sentinel previous hash and fixed proof.")
	}

	if len(block.Transactions) != 0 {
		t.Fatalf("Should get back a genesis block with no transactions: %d", len(block.Transactions))
	}
}

func Test_Hash(t *testing.T) {
	tx1 := database.Tx{Sender: "a", Recipient: "b", Amount: 10}
	tx2 := database.Tx{Sender: "0", Recipient: "miner", Amount: 1}

	b1 := database.Block{
		Index:        2,
		TimeStamp:    9,
		Transactions: []database.Tx{tx1, tx2},
		Proof:        7,
		PrevHash:     "abc",
	}

	var b2 database.Block
	b2.PrevHash = "abc"
	b2.Proof = 7
	b2.Transactions = append(b2.Transactions, database.Tx{Amount: 10, Recipient: "b", Sender: "a"}, tx2)
	b2.TimeStamp = 9
	b2.Index = 2

	t.Log("Given the need to hash blocks.")
	{
		t.Logf("\tTest 0:\tWhen handling the same block twice.")
		{
			if b1.Hash() != b1.Hash() {
				t.Fatalf("\t%s\tTest 0:\tShould get back the same hash twice.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould get back the same hash twice.", success)
		}

		t.Logf("\tTest 1:\tWhen handling two blocks constructed differently.")
		{
			if b1.Hash() != b2.Hash() {
				t.Logf("\t\tTest 1:\tgot: %s", b2.Hash())
				t.Logf("\t\tTest 1:\texp: %s", b1.Hash())
				t.Fatalf("\t%s\tTest 1:\tShould get back the same hash.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould get back the same hash.", success)
		}

		t.Logf("\tTest 2:\tWhen handling the canonical form.")
		{
			const canonical = `{"index":2,"previous_hash":"abc","proof":7,"timestamp":9,"transactions":[{"amount":10,"recipient":"b","sender":"a"},{"amount":1,"recipient":"miner","sender":"0"}]}`

			exp := digest.SumBytes([]byte(canonical))
			if h := b1.Hash(); h != exp {
				t.Logf("\t\tTest 2:\tgot: %s", h)
				t.Logf("\t\tTest 2:\texp: %s", exp)
				t.Fatalf("\t%s\tTest 2:\tShould hash keys in lexicographic order.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould hash keys in lexicographic order.", success)
		}

		t.Logf("\tTest 3:\tWhen handling reordered transactions.")
		{
			b3 := b1.Clone()
			b3.Transactions[0], b3.Transactions[1] = b3.Transactions[1], b3.Transactions[0]

			if b1.Hash() == b3.Hash() {
				t.Fatalf("\t%s\tTest 3:\tShould get back a different hash.", failed)
			}
			t.Logf("\t%s\tTest 3:\tShould get back a different hash.", success)
		}

		t.Logf("\tTest 4:\tWhen handling nil and empty transactions.")
		{
			b4 := database.Block{Index: 1, Proof: 100, PrevHash: "1"}
			b5 := database.Block{Index: 1, Proof: 100, PrevHash: "1", Transactions: []database.Tx{}}

			if b4.Hash() != b5.Hash() {
				t.Fatalf("\t%s\tTest 4:\tShould get back the same hash.", failed)
			}
			t.Logf("\t%s\tTest 4:\tShould get back the same hash.", success)
		}
	}
}

func Test_ValidateChain(t *testing.T) {
	blocks := buildChain(t, 3)

	type table struct {
		name   string
		blocks func() []database.Block
		valid  bool
	}

	tt := []table{
		{
			name:   "empty",
			blocks: func() []database.Block { return nil },
			valid:  true,
		},
		{
			name:   "genesis",
			blocks: func() []database.Block { return blocks[:1] },
			valid:  true,
		},
		{
			name:   "mined",
			blocks: func() []database.Block { return blocks },
			valid:  true,
		},
		{
			name: "forged-prevhash",
			blocks: func() []database.Block {
				cp := cloneChain(blocks)
				cp[2].PrevHash = digest.ZeroHash
				return cp
			},
		},
		{
			name: "forged-proof",
			blocks: func() []database.Block {
				cp := cloneChain(blocks)
				cp[2].Proof = invalidProof(cp[1].Proof, cp[2].Proof, cp[1].Hash())
				return cp
			},
		},
		{
			name: "forged-middle-proof",
			blocks: func() []database.Block {
				cp := cloneChain(blocks)
				cp[1].Proof = invalidProof(cp[0].Proof, cp[1].Proof, cp[0].Hash())
				return cp
			},
		},
		{
			name: "forged-transaction",
			blocks: func() []database.Block {
				cp := cloneChain(blocks)
				cp[1].Transactions[0].Amount = 1_000_000
				return cp
			},
		},
	}

	t.Log("Given the need to validate chains.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				t.Logf("\tTest %d:\tWhen handling a %s chain.", testID, tst.name)
				{
					chain := tst.blocks()
					before := cloneChain(chain)

					err := database.ValidateChain(chain, noop)
					if tst.valid {
						if err != nil {
							t.Fatalf("\t%s\tTest %d:\tShould validate the chain: %s", failed, testID, err)
						}
						t.Logf("\t%s\tTest %d:\tShould validate the chain.", success, testID)
					} else {
						if !errors.Is(err, database.ErrChainInvalid) {
							t.Fatalf("\t%s\tTest %d:\tShould reject the chain: %v", failed, testID, err)
						}
						t.Logf("\t%s\tTest %d:\tShould reject the chain.", success, testID)
					}

					if database.IsValidChain(chain) != tst.valid {
						t.Fatalf("\t%s\tTest %d:\tShould agree with ValidateChain.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould agree with ValidateChain.", success, testID)

					for i := range chain {
						if chain[i].Hash() != before[i].Hash() {
							t.Fatalf("\t%s\tTest %d:\tShould not modify the chain.", failed, testID)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould not modify the chain.", success, testID)
				}
			}

			t.Run(tst.name, f)
		}
	}
}

func Test_Database(t *testing.T) {
	db := database.New(genesis.Default())

	if db.Length() != 1 {
		t.Fatalf("Should start with only the genesis block: %d", db.Length())
	}

	block := mine(t, db.LatestBlock(), []database.Tx{database.NewRewardTx("miner", 1)})
	if err := db.Write(block); err != nil {
		t.Fatalf("Should be able to write the next block: %s", err)
	}

	if db.LatestBlock().Hash() != block.Hash() {
		t.Fatalf("Should get back the written block as the latest block.")
	}

	stale := block
	stale.PrevHash = digest.ZeroHash
	if err := db.Write(stale); !errors.Is(err, database.ErrChainForked) {
		t.Fatalf("Should not be able to write a block that doesn't link: %v", err)
	}

	blocks := db.Copy()
	blocks[1].Transactions[0].Amount = 99
	if db.LatestBlock().Transactions[0].Amount != 1 {
		t.Fatalf("Should not be able to modify the chain through a copy.")
	}

	if err := db.Replace(nil); err == nil {
		t.Fatalf("Should not be able to replace the chain with nothing.")
	}

	other := buildChain(t, 3)
	if err := db.Replace(other); err != nil {
		t.Fatalf("Should be able to replace the chain: %s", err)
	}

	if db.Length() != 3 || db.LatestBlock().Hash() != other[2].Hash() {
		t.Fatalf("Should get back the replaced chain.")
	}
}

func Test_Transactions(t *testing.T) {
	type table struct {
		name      string
		sender    string
		recipient string
		valid     bool
	}

	tt := []table{
		{name: "valid", sender: "a", recipient: "b", valid: true},
		{name: "no-sender", recipient: "b"},
		{name: "no-recipient", sender: "a"},
	}

	for _, tst := range tt {
		f := func(t *testing.T) {
			tx, err := database.NewTx(tst.sender, tst.recipient, 10)
			switch tst.valid {
			case true:
				if err != nil {
					t.Fatalf("Should be able to construct the transaction: %s", err)
				}
				if tx.IsReward() {
					t.Fatalf("Should not be a reward transaction.")
				}
			default:
				if !errors.Is(err, database.ErrInvalidTransaction) {
					t.Fatalf("Should get back an invalid transaction error: %v", err)
				}
			}
		}

		t.Run(tst.name, f)
	}

	reward := database.NewRewardTx("miner", 1)
	if !reward.IsReward() || reward.Sender != "0" {
		t.Fatalf("Should construct a reward transaction: %s", reward)
	}
}

func cloneChain(blocks []database.Block) []database.Block {
	out := make([]database.Block, len(blocks))
	for i, b := range blocks {
		out[i] = b.Clone()
	}
	return out
}
