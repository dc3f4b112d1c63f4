package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ardanlabs/ledger/app/services/viewer/handlers"
	"go.uber.org/zap"
)

func TestIndex(t *testing.T) {
	app, err := handlers.UIMux("test", "https://node1.example.com:8080", make(chan os.Signal, 1), zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Should be able to construct the mux: %s", err)
	}

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Should get back the index page: %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "wss://node1.example.com:8080/v1/events") {
		t.Fatalf("Should point the page at the node's events: %s", body)
	}
}

func TestInvalidNodeURL(t *testing.T) {
	if _, err := handlers.UIMux("test", "node1", make(chan os.Signal, 1), zap.NewNop().Sugar()); err == nil {
		t.Fatalf("Should reject a node url without a host.")
	}
}
