package handlers

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/ardanlabs/ledger/foundation/web"
)

//go:embed assets/index.html
var indexHTML string

type index struct {
	page []byte
}

// newIndex renders the page once, the node it talks to never changes.
func newIndex(build string, nodeURL string) (index, error) {
	u, err := url.Parse(nodeURL)
	if err != nil || u.Host == "" {
		return index{}, fmt.Errorf("node url %q: invalid", nodeURL)
	}

	wsScheme := "ws"
	if u.Scheme == "https" {
		wsScheme = "wss"
	}

	tmpl, err := template.New("index").Parse(indexHTML)
	if err != nil {
		return index{}, err
	}

	data := struct {
		Build     string
		NodeURL   string
		EventsURL string
	}{
		Build:     build,
		NodeURL:   fmt.Sprintf("%s://%s", u.Scheme, u.Host),
		EventsURL: fmt.Sprintf("%s://%s/v1/events", wsScheme, u.Host),
	}

	var b bytes.Buffer
	if err := tmpl.Execute(&b, data); err != nil {
		return index{}, err
	}

	return index{page: b.Bytes()}, nil
}

func (ig index) handler(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	web.SetStatusCode(ctx, http.StatusOK)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(ig.page); err != nil {
		return err
	}

	return nil
}
