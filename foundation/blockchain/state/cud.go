package state

import (
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
)

// SubmitTransaction accepts a transaction for inclusion in a future block.
// It returns the index of the block the transaction is expected to land in,
// which is only a hint since the chain can change before the next mine.
func (s *State) SubmitTransaction(tx database.Tx) (uint64, error) {
	if err := tx.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.mempool.Add(tx)
	next := s.db.LatestBlock().Index + 1

	s.evHandler("state: SubmitTransaction: tx[%s]: mempool[%d]: next-blk[%d]", tx, n, next)

	return next, nil
}

// ReplaceChain swaps the entire chain for the specified blocks. It performs
// no validation, callers are expected to have validated the chain.
func (s *State) ReplaceChain(blocks []database.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replaceChain(blocks)
}

// replaceChain performs the replacement. The caller must hold the lock.
func (s *State) replaceChain(blocks []database.Block) error {
	if err := s.db.Replace(blocks); err != nil {
		return err
	}

	s.evHandler("state: ReplaceChain: chain replaced: length[%d]: latest-blk[%s]", len(blocks), blocks[len(blocks)-1].Hash())

	return nil
}

// RegisterPeers adds the specified addresses to the set of known peers and
// returns the full list of known hosts. Every address is validated before
// any is added, so an invalid address leaves the set unchanged.
func (s *State) RegisterPeers(addresses []string) ([]string, error) {
	peers := make([]peer.Peer, len(addresses))
	for i, address := range addresses {
		pr, err := peer.Parse(address)
		if err != nil {
			return nil, fmt.Errorf("register peer: %w", err)
		}
		peers[i] = pr
	}

	for _, pr := range peers {
		if s.knownPeers.Add(pr) {
			s.evHandler("state: RegisterPeers: adding peer-node %s", pr)
		}
	}

	return s.knownPeers.Hosts(), nil
}

// AddKnownPeer provides the ability to add a new peer.
func (s *State) AddKnownPeer(peer peer.Peer) bool {
	return s.knownPeers.Add(peer)
}

// RemoveKnownPeer provides the ability to remove a peer.
func (s *State) RemoveKnownPeer(peer peer.Peer) {
	s.knownPeers.Remove(peer)
}
