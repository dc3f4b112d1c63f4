package state

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
)

// ErrFetch is returned when a peer can't be reached or doesn't answer
// with success.
var ErrFetch = errors.New("peer fetch failed")

const baseURL = "http://%s/v1/node"

// =============================================================================

// HTTPFetcher retrieves peer chains over the node to node HTTP api.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher constructs a fetcher whose requests give up after the
// specified timeout. A timeout of 0 means no timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// FetchChain asks the peer for its full chain.
func (f *HTTPFetcher) FetchChain(ctx context.Context, pr peer.Peer) (database.ChainData, error) {
	url := fmt.Sprintf("%s/chain", fmt.Sprintf(baseURL, pr.Host))

	var chainData database.ChainData
	if err := send(ctx, f.client, http.MethodGet, url, nil, &chainData); err != nil {
		return database.ChainData{}, fmt.Errorf("%w: %s: %s", ErrFetch, pr.Host, err)
	}

	return chainData, nil
}

// =============================================================================

// send is a helper function to send an HTTP request to a node.
func send(ctx context.Context, client *http.Client, method string, url string, dataSend any, dataRecv any) error {
	var body io.Reader
	if dataSend != nil {
		data, err := json.Marshal(dataSend)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	if dataRecv != nil {
		if err := json.NewDecoder(resp.Body).Decode(dataRecv); err != nil {
			return err
		}
	}

	return nil
}
