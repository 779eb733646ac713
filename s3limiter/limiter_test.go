package s3limiter

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewReturnsTransportUnwrappedWhenNoLimitsSet(t *testing.T) {
	base := http.DefaultTransport
	got := New(0, 0, base)
	if got != base {
		t.Fatalf("expected unwrapped transport, got %T", got)
	}
}

func TestNewWrapsTransportWhenLimitSet(t *testing.T) {
	got := New(1024, 0, http.DefaultTransport)
	if _, ok := got.(*limiter); !ok {
		t.Fatalf("expected *limiter, got %T", got)
	}
}

func TestRoundTripPassesThroughBodyUnmodified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello world"))
	}))
	defer srv.Close()

	rt := New(0, 1<<20, http.DefaultTransport)
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatal(err)
	}

	res, err := rt.RoundTrip(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "hello world" {
		t.Fatalf("got %q", body)
	}
}

// TestRoundTripWaitsForUploadBytes sets an upload cap small enough that a
// single request's worth of tokens isn't available up front, then checks
// RoundTrip actually blocked rather than returning immediately.
func TestRoundTripWaitsForUploadBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer srv.Close()

	const bodyLen = 1000
	rt := New(100, 0, http.DefaultTransport) // 100 B/s, bucket capacity 100 B

	req, err := http.NewRequest(http.MethodPost, srv.URL, io.NopCloser(io.LimitReader(neverEOF{}, bodyLen)))
	if err != nil {
		t.Fatal(err)
	}
	req.ContentLength = bodyLen

	start := time.Now()
	if _, err := rt.RoundTrip(req); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Fatalf("expected RoundTrip to wait for upload tokens, took %v", elapsed)
	}
}

func TestRoundTripSkipsWaitForUnknownLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer srv.Close()

	rt := New(1, 0, http.DefaultTransport)
	req, err := http.NewRequest(http.MethodPost, srv.URL, io.NopCloser(io.LimitReader(neverEOF{}, 10)))
	if err != nil {
		t.Fatal(err)
	}
	req.ContentLength = -1

	start := time.Now()
	if _, err := rt.RoundTrip(req); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Fatalf("expected unknown-length request to skip waiting, took %v", elapsed)
	}
}

func TestRoundTripRejectsNilTransport(t *testing.T) {
	l := &limiter{transport: nil}
	req, _ := http.NewRequest(http.MethodGet, "http://example.invalid", nil)
	if _, err := l.RoundTrip(req); err == nil {
		t.Fatal("expected error for nil transport")
	}
}

type neverEOF struct{}

func (neverEOF) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'x'
	}
	return len(p), nil
}
