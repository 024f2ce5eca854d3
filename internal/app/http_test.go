package app

import (
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/hyperifyio/goextract/internal/fetch"
)

func TestNewFetchHTTPClient_Config(t *testing.T) {
	c := newFetchHTTPClient(10 * time.Second)
	if c.Timeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %v", c.Timeout)
	}
	tr, ok := c.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("expected http.Transport")
	}
	if tr.TLSHandshakeTimeout == 0 {
		t.Fatalf("expected TLS handshake timeout")
	}
	// Ensure we didn't return the default client's transport
	if reflect.ValueOf(http.DefaultTransport).Pointer() == reflect.ValueOf(tr).Pointer() {
		t.Fatalf("transport should not be default")
	}
}

func TestNew_WiresFetchClient(t *testing.T) {
	a, err := New(Config{URL: "https://example.com", UserAgent: "ua", Timeout: 3 * time.Second}, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	c, ok := a.fetcher.(*fetch.Client)
	if !ok {
		t.Fatalf("expected fetch client, got %T", a.fetcher)
	}
	if c.UserAgent != "ua" || c.Timeout != 3*time.Second || c.HTTPClient.Timeout != 3*time.Second {
		t.Fatalf("unexpected fetch client %+v", c)
	}
}

func TestNew_FetchClientDefaults(t *testing.T) {
	a, err := New(Config{URL: "https://example.com"}, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	c := a.fetcher.(*fetch.Client)
	if c.UserAgent != fetch.DefaultUserAgent || c.Timeout != fetch.DefaultTimeout || c.HTTPClient.Timeout != fetch.DefaultTimeout {
		t.Fatalf("expected default user agent and timeout, got %+v", c)
	}
}
