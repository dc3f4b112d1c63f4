package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ardanlabs/ledger/business/web/errs"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
)

func TestTrusted(t *testing.T) {
	err := fmt.Errorf("handler: %w", errs.NewTrusted(peer.ErrInvalidAddress, http.StatusBadRequest))

	if !errs.IsTrusted(err) {
		t.Fatalf("Should find the trusted error in the chain.")
	}

	te := errs.GetTrusted(err)
	if te.Status != http.StatusBadRequest {
		t.Fatalf("Should get back the status: got %d", te.Status)
	}

	if !errors.Is(err, peer.ErrInvalidAddress) {
		t.Fatalf("Should be able to match the wrapped error.")
	}

	if errs.GetTrusted(errors.New("boom")) != nil {
		t.Fatalf("Should not find a trusted error in a plain error.")
	}
}
