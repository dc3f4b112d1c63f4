// Package peer maintains the peer related information such as the set
// of known peers and their status.
package peer

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// ErrInvalidAddress is returned when an address doesn't identify a host
// and port.
var ErrInvalidAddress = errors.New("invalid address")

// defaultPorts are used when an address is a URL without an explicit port.
var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// =============================================================================

// Peer represents information about a Node in the network.
type Peer struct {
	Host string
}

// New constructs a new info value.
func New(host string) Peer {
	return Peer{
		Host: host,
	}
}

// Parse normalizes an address into a peer. The address can be a URL like
// "http://192.168.0.5:5000/" or a plain "192.168.0.5:5000". The peer's host
// is always in host:port form.
func Parse(address string) (Peer, error) {
	address = strings.TrimSpace(address)

	hostPort := address
	if strings.Contains(address, "://") {
		u, err := url.Parse(address)
		if err != nil {
			return Peer{}, fmt.Errorf("%w: %q: %s", ErrInvalidAddress, address, err)
		}

		hostPort = u.Host
		if u.Port() == "" && u.Hostname() != "" {
			port, exists := defaultPorts[strings.ToLower(u.Scheme)]
			if !exists {
				return Peer{}, fmt.Errorf("%w: %q: no port", ErrInvalidAddress, address)
			}
			hostPort = net.JoinHostPort(u.Hostname(), port)
		}
	}

	// Drop anything after the host:port, such as a trailing slash or path.
	if i := strings.IndexByte(hostPort, '/'); i >= 0 {
		hostPort = hostPort[:i]
	}

	host, port, err := net.SplitHostPort(hostPort)
	if err != nil {
		return Peer{}, fmt.Errorf("%w: %q: %s", ErrInvalidAddress, address, err)
	}

	if host == "" {
		return Peer{}, fmt.Errorf("%w: %q: no host", ErrInvalidAddress, address)
	}

	if n, err := strconv.ParseUint(port, 10, 16); err != nil || n == 0 {
		return Peer{}, fmt.Errorf("%w: %q: bad port %q", ErrInvalidAddress, address, port)
	}

	return New(net.JoinHostPort(strings.ToLower(host), port)), nil
}

// Match validates if the specified host matches this node.
func (p Peer) Match(host string) bool {
	return p.Host == host
}

// String implements the Stringer interface for logging.
func (p Peer) String() string {
	return p.Host
}

// =============================================================================

// PeerStatus represents information about the status
// of any given peer.
type PeerStatus struct {
	NodeID            string   `json:"node_id"`
	LatestBlockHash   string   `json:"latest_block_hash"`
	LatestBlockNumber uint64   `json:"latest_block_number"`
	ChainLength       int      `json:"chain_length"`
	KnownPeers        []string `json:"known_peers"`
}

// =============================================================================

// PeerSet represents the data representation to maintain a set of known peers.
type PeerSet struct {
	mu  sync.RWMutex
	set map[Peer]struct{}
}

// NewPeerSet constructs a new info set to manage node peer information.
func NewPeerSet() *PeerSet {
	return &PeerSet{
		set: make(map[Peer]struct{}),
	}
}

// Add adds a new node to the set. It reports false when the peer is
// already known, which is not an error.
func (ps *PeerSet) Add(peer Peer) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	_, exists := ps.set[peer]
	if !exists {
		ps.set[peer] = struct{}{}
		return true
	}

	return false
}

// Remove removes a node from the set.
func (ps *PeerSet) Remove(peer Peer) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	delete(ps.set, peer)
}

// Len returns the number of known peers.
func (ps *PeerSet) Len() int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	return len(ps.set)
}

// Copy returns a list of the known peers, leaving out the specified host.
// The list is sorted by host so callers iterate in a stable order.
func (ps *PeerSet) Copy(host string) []Peer {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	var peers []Peer
	for peer := range ps.set {
		if !peer.Match(host) {
			peers = append(peers, peer)
		}
	}

	sort.Slice(peers, func(i, j int) bool {
		return peers[i].Host < peers[j].Host
	})

	return peers
}

// Hosts returns the sorted list of known hosts.
func (ps *PeerSet) Hosts() []string {
	peers := ps.Copy("")

	hosts := make([]string, len(peers))
	for i, peer := range peers {
		hosts[i] = peer.Host
	}

	return hosts
}
