package state

import (
	"context"
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches limits the number of peers queried at the same time
// during a resolve.
const maxConcurrentFetches = 8

// ChainFetcher represents the behavior required to retrieve the chain
// of a peer.
type ChainFetcher interface {
	FetchChain(ctx context.Context, pr peer.Peer) (database.ChainData, error)
}

// fetchResult holds what a single peer returned.
type fetchResult struct {
	chainData database.ChainData
	err       error
}

// =============================================================================

// Resolve implements consensus: the longest valid chain known to this node
// wins. Every known peer is asked for its chain. A chain replaces ours only
// when it is strictly longer than ours and every other chain seen so far
// and it validates. Peers that can't be reached or return invalid chains
// are skipped and not retried. On a tie our chain is kept. It reports
// whether our chain was replaced. The only error is the context being
// cancelled.
func (s *State) Resolve(ctx context.Context) (bool, error) {
	s.evHandler("state: Resolve: started")
	defer s.evHandler("state: Resolve: completed")

	peers := s.RetrieveKnownPeers()
	maxLength := s.db.Length()

	// No lock is held while talking to the network.
	results := make([]fetchResult, len(peers))

	var g errgroup.Group
	g.SetLimit(maxConcurrentFetches)

	for i, pr := range peers {
		i, pr := i, pr
		g.Go(func() error {
			chainData, err := s.fetcher.FetchChain(ctx, pr)
			results[i] = fetchResult{chainData: chainData, err: err}
			return nil
		})
	}
	g.Wait()

	if err := ctx.Err(); err != nil {
		return false, err
	}

	// Evaluate the chains in peer order so the first longest chain wins.
	var best []database.Block
	for i, pr := range peers {
		res := results[i]

		if res.err != nil {
			s.evHandler("state: Resolve: peer[%s]: WARNING: skipped: %s", pr, res.err)
			continue
		}

		length := res.chainData.Length
		if length <= maxLength {
			s.evHandler("state: Resolve: peer[%s]: length[%d]: not longer than %d", pr, length, maxLength)
			continue
		}

		if err := s.validatePeerChain(res.chainData); err != nil {
			s.evHandler("state: Resolve: peer[%s]: WARNING: rejected: %s", pr, err)
			continue
		}

		s.evHandler("state: Resolve: peer[%s]: length[%d]: new candidate", pr, length)

		maxLength = length
		best = res.chainData.Chain
	}

	if best == nil {
		s.evHandler("state: Resolve: our chain is authoritative")
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The chain could have grown while the peers were being queried.
	if s.db.Length() >= len(best) {
		s.evHandler("state: Resolve: our chain grew to %d: keeping it", s.db.Length())
		return false, nil
	}

	if err := s.replaceChain(best); err != nil {
		return false, err
	}

	return true, nil
}

// validatePeerChain checks the chain a peer returned is consistent with the
// length it reported and passes chain validation.
func (s *State) validatePeerChain(chainData database.ChainData) error {
	if chainData.Length != len(chainData.Chain) {
		return fmt.Errorf("%w: reported length %d, got %d blocks", database.ErrChainInvalid, chainData.Length, len(chainData.Chain))
	}

	return database.ValidateChain(chainData.Chain, s.evHandler)
}
