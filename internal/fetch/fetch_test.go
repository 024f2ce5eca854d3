package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGet_Success(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(200)
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	c := NewClient()
	page, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(page.Body) != "<html><body>ok</body></html>" {
		t.Fatalf("unexpected body: %q", string(page.Body))
	}
	if page.ContentType != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type: %q", page.ContentType)
	}
	if gotUA != DefaultUserAgent {
		t.Fatalf("expected browser user agent, got %q", gotUA)
	}
}

func TestGet_CustomUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	c := &Client{UserAgent: "goextract-test"}
	if _, err := c.Get(context.Background(), srv.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUA != "goextract-test" {
		t.Fatalf("expected custom user agent, got %q", gotUA)
	}
}

func TestGet_NonSuccessStatus(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient()
	page, err := c.Get(context.Background(), srv.URL)
	if err == nil || page != nil {
		t.Fatalf("expected error and nil page, got %v / %v", page, err)
	}
	var fe *Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if fe.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", fe.StatusCode)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one attempt, got %d", calls)
	}
}

func TestGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewClient().Get(context.Background(), srv.URL)
	var fe *Error
	if !errors.As(err, &fe) || fe.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 fetch error, got %v", err)
	}
}

func TestGet_RejectsNonHTTP(t *testing.T) {
	_, err := NewClient().Get(context.Background(), "file:///etc/hosts")
	var fe *Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *Error for non-http scheme, got %v", err)
	}
}

func TestGet_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := NewClient().Get(context.Background(), addr)
	var fe *Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *Error for closed server, got %v", err)
	}
	if fe.Unwrap() == nil {
		t.Fatalf("expected underlying cause")
	}
}

func TestGet_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := &Client{Timeout: 50 * time.Millisecond}
	_, err := c.Get(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded in chain, got %v", err)
	}
}

func TestClient_DefaultTimeout(t *testing.T) {
	c := &Client{}
	if got := c.timeout(); got != 10*time.Second {
		t.Fatalf("expected 10s default timeout, got %v", got)
	}
}
