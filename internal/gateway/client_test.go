package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeTokens struct {
	token   string
	cleared bool
}

func (f *fakeTokens) Token() string { return f.token }
func (f *fakeTokens) Clear()        { f.token = ""; f.cleared = true }

func TestBearerHeaderSentWhenTokenHeld(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, &fakeTokens{token: "tok-1"}, nil)
	if err := c.Get(context.Background(), "/api/thing", nil); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestNoBearerHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, &fakeTokens{}, nil)
	if err := c.Get(context.Background(), "/api/thing", nil); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "" {
		t.Fatalf("unexpected Authorization header %q", gotAuth)
	}
}

func TestUnauthorizedClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	tokens := &fakeTokens{token: "stale"}
	c := NewClient(srv.URL, time.Second, tokens, nil)

	err := c.Get(context.Background(), "/api/thing", nil)
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401 RequestError, got %v", err)
	}
	if !tokens.cleared {
		t.Fatal("401 did not clear the token source")
	}
}

func TestNonOKStatusBecomesRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream sad"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, &fakeTokens{}, nil)
	err := c.Get(context.Background(), "/api/thing", nil)
	if !IsStatus(err, http.StatusBadGateway) {
		t.Fatalf("expected 502 RequestError, got %v", err)
	}
	if IsStatus(err, http.StatusNotFound) {
		t.Fatal("IsStatus matched the wrong status")
	}
}

func TestGetRawPreservesContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("a,b\n1,2\n"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, &fakeTokens{}, nil)
	body, contentType, err := c.GetRaw(context.Background(), "/api/report")
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "text/csv" {
		t.Fatalf("content type %q", contentType)
	}
	if string(body) != "a,b\n1,2\n" {
		t.Fatalf("body %q", body)
	}
}

func TestWithTokensSharesTransport(t *testing.T) {
	base := NewClient("http://example.invalid", time.Second, nil, nil)
	bound := base.WithTokens(&fakeTokens{token: "t"})
	if bound.httpClient != base.httpClient {
		t.Fatal("WithTokens should share the underlying http.Client")
	}
	if bound == base {
		t.Fatal("WithTokens must return a copy")
	}
}
