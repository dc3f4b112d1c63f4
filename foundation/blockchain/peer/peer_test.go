package peer_test

import (
	"errors"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
)

func Test_CRUD(t *testing.T) {
	type table struct {
		name  string
		peers []peer.Peer
	}

	tt := []table{
		{
			name:  "basic",
			peers: []peer.Peer{{Host: "host1:80"}, {Host: "host2:80"}, {Host: "host3:80"}},
		},
	}

	for _, tst := range tt {
		f := func(t *testing.T) {
			ps := peer.NewPeerSet()

			for _, peer := range tst.peers {
				if !ps.Add(peer) {
					t.Fatalf("Test %s:\tShould be able to add a new peer.", tst.name)
				}
			}

			peers := ps.Copy("")
			if len(peers) != len(tst.peers) {
				t.Logf("Test %s:\tgot: %d", tst.name, len(peers))
				t.Logf("Test %s:\texp: %d", tst.name, len(tst.peers))
				t.Fatalf("Test %s:\tShould get back the right peers.", tst.name)
			}

			peers = ps.Copy("host2:80")
			if len(peers) != len(tst.peers)-1 {
				t.Logf("Test %s:\tgot: %d", tst.name, len(peers))
				t.Logf("Test %s:\texp: %d", tst.name, len(tst.peers)-1)
				t.Fatalf("Test %s:\tShould get back the right peers.", tst.name)
			}

			ps.Remove(tst.peers[0])
			if ps.Len() != len(tst.peers)-1 {
				t.Fatalf("Test %s:\tShould be able to remove a peer.", tst.name)
			}

			hosts := ps.Hosts()
			for i := 1; i < len(hosts); i++ {
				if hosts[i-1] > hosts[i] {
					t.Fatalf("Test %s:\tShould get back sorted hosts: %v", tst.name, hosts)
				}
			}
		}

		t.Run(tst.name, f)
	}
}

func Test_Idempotent(t *testing.T) {
	ps := peer.NewPeerSet()

	for _, address := range []string{"192.168.0.5:5000", "192.168.0.5:5000", "http://192.168.0.5:5000/"} {
		p, err := peer.Parse(address)
		if err != nil {
			t.Fatalf("Should be able to parse %q: %s", address, err)
		}
		ps.Add(p)
	}

	if ps.Len() != 1 {
		t.Logf("got: %v", ps.Hosts())
		t.Fatalf("Should get back exactly one peer.")
	}
}

func Test_Parse(t *testing.T) {
	type table struct {
		name    string
		address string
		host    string
		err     bool
	}

	tt := []table{
		{name: "plain", address: "192.168.0.5:5000", host: "192.168.0.5:5000"},
		{name: "url", address: "http://192.168.0.5:5000", host: "192.168.0.5:5000"},
		{name: "url-path", address: "http://192.168.0.5:5000/chain", host: "192.168.0.5:5000"},
		{name: "url-no-port", address: "https://Node.Example.com", host: "node.example.com:443"},
		{name: "plain-slash", address: "localhost:9080/", host: "localhost:9080"},
		{name: "ipv6", address: "http://[::1]:9080", host: "[::1]:9080"},
		{name: "spaces", address: "  localhost:9080 ", host: "localhost:9080"},
		{name: "empty", address: "", err: true},
		{name: "no-port", address: "localhost", err: true},
		{name: "no-host", address: ":5000", err: true},
		{name: "bad-port", address: "localhost:http", err: true},
		{name: "zero-port", address: "localhost:0", err: true},
		{name: "unknown-scheme", address: "ftp://example.com", err: true},
		{name: "scheme-only", address: "http://", err: true},
	}

	for _, tst := range tt {
		f := func(t *testing.T) {
			p, err := peer.Parse(tst.address)
			if tst.err {
				if !errors.Is(err, peer.ErrInvalidAddress) {
					t.Fatalf("Should get back an invalid address error: %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Should be able to parse the address: %s", err)
			}

			if p.Host != tst.host {
				t.Logf("got: %s", p.Host)
				t.Logf("exp: %s", tst.host)
				t.Fatalf("Should get back the normalized host.")
			}
		}

		t.Run(tst.name, f)
	}
}
