package state

import (
	"context"
	"errors"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/pow"
)

// errChainMoved is returned by forgeBlock when the latest block changed
// while the puzzle was being solved.
var errChainMoved = errors.New("latest block changed during mining")

// MineNewBlock solves the puzzle against the latest block and forges the next
// block with the mempool transactions plus the mining reward. The puzzle is
// solved without holding the state lock. If the chain moves in the meantime,
// because of another mining operation or a chain replacement, the work is
// thrown away and the puzzle is solved again against the new latest block.
// The only error is the context being cancelled.
func (s *State) MineNewBlock(ctx context.Context) (database.Block, error) {
	s.evHandler("state: MineNewBlock: MINING: started")
	defer s.evHandler("state: MineNewBlock: MINING: completed")

	for {
		prevBlock := s.db.LatestBlock()

		s.evHandler("state: MineNewBlock: MINING: perform POW: prevBlk[%d]", prevBlock.Index)

		proof, err := pow.Solve(ctx, prevBlock.Proof, prevBlock.Hash(), s.evHandler)
		if err != nil {
			return database.Block{}, err
		}

		block, err := s.forgeBlock(prevBlock, proof)
		if err != nil {
			if errors.Is(err, errChainMoved) {
				s.evHandler("state: MineNewBlock: MINING: chain moved: solving again")
				continue
			}
			return database.Block{}, err
		}

		return block, nil
	}
}

// forgeBlock adds the reward transaction, moves the mempool into a new block
// and writes that block to the chain as one operation.
func (s *State) forgeBlock(prevBlock database.Block, proof uint64) (database.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db.LatestBlock().Hash() != prevBlock.Hash() {
		return database.Block{}, errChainMoved
	}

	s.evHandler("state: MineNewBlock: MINING: add reward: node[%s]", s.nodeID)

	reward := database.NewRewardTx(s.nodeID, s.genesis.MiningReward)
	trans := append(s.mempool.Copy(), reward)

	block := database.NewBlock(prevBlock, proof, trans)
	if err := s.db.Write(block); err != nil {
		return database.Block{}, err
	}

	s.mempool.Truncate()

	s.evHandler("state: MineNewBlock: MINING: SOLVED: blk[%d]: hash[%s]: txs[%d]", block.Index, block.Hash(), len(block.Transactions))

	return block, nil
}
