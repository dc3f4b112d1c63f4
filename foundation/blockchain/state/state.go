// Package state is the core API for the blockchain and implements all the
// business rules and processing.
package state

import (
	"sync"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
	"github.com/ardanlabs/ledger/foundation/blockchain/mempool"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
)

// EventHandler defines a function that is called when events
// occur in the processing of blocks.
type EventHandler func(v string, args ...any)

// Worker interface represents the behavior required to be implemented by any
// package providing support for background mining and chain resolution.
type Worker interface {
	Shutdown()
	SignalStartMining()
	SignalResolve()
}

// =============================================================================

// Config represents the configuration required to start
// the blockchain node.
type Config struct {
	NodeID     string
	Host       string
	Genesis    genesis.Genesis
	KnownPeers *peer.PeerSet
	Fetcher    ChainFetcher
	EvHandler  EventHandler
}

// State manages the blockchain database.
type State struct {
	mu sync.Mutex

	nodeID    string
	host      string
	evHandler EventHandler

	genesis    genesis.Genesis
	knownPeers *peer.PeerSet
	fetcher    ChainFetcher
	mempool    *mempool.Mempool
	db         *database.Database

	Worker Worker
}

// New constructs a new blockchain for data management. The chain starts with
// only the genesis block.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	// A zero genesis means the caller didn't load one.
	gen := cfg.Genesis
	if gen.Date.IsZero() {
		gen = genesis.Default()
	}

	knownPeers := cfg.KnownPeers
	if knownPeers == nil {
		knownPeers = peer.NewPeerSet()
	}

	fetcher := cfg.Fetcher
	if fetcher == nil {
		fetcher = NewHTTPFetcher(10 * time.Second)
	}

	// Create the State to provide support for managing the blockchain.
	state := State{
		nodeID:    cfg.NodeID,
		host:      cfg.Host,
		evHandler: ev,

		genesis:    gen,
		knownPeers: knownPeers,
		fetcher:    fetcher,
		mempool:    mempool.New(),
		db:         database.New(gen),

		Worker: nopWorker{},
	}

	ev("state: New: genesis: blk[%d]: hash[%s]", 1, state.db.LatestBlock().Hash())

	// The Worker is set to a no-op here. The call to worker.Run will assign
	// itself and start everything up and running for the node.

	return &state, nil
}

// Shutdown cleanly brings the node down.
func (s *State) Shutdown() error {
	s.evHandler("state: shutdown: started")
	defer s.evHandler("state: shutdown: completed")

	// Stop all blockchain writing activity.
	s.Worker.Shutdown()

	return nil
}

// =============================================================================

// nopWorker is used until a real worker registers itself.
type nopWorker struct{}

func (nopWorker) Shutdown()          {}
func (nopWorker) SignalStartMining() {}
func (nopWorker) SignalResolve()     {}
