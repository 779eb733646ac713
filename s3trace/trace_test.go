package s3trace

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type recordingHook struct {
	requests  int
	responses int
	lastErr   error
}

func (h *recordingHook) Request(req *http.Request) { h.requests++ }

func (h *recordingHook) Response(req *http.Request, res *http.Response, dur time.Duration, err error) {
	h.responses++
	h.lastErr = err
}

func TestRoundTripTraceCallsHookAroundSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer srv.Close()

	hook := &recordingHook{}
	rt := RoundTripTrace{Hook: hook, Transport: http.DefaultTransport}

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatal(err)
	}

	res, err := rt.RoundTrip(req)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()

	if hook.requests != 1 || hook.responses != 1 {
		t.Fatalf("got requests=%d responses=%d, want 1/1", hook.requests, hook.responses)
	}
	if hook.lastErr != nil {
		t.Fatalf("unexpected error recorded: %v", hook.lastErr)
	}
}

func TestRoundTripTraceCallsHookOnTransportFailure(t *testing.T) {
	hook := &recordingHook{}
	rt := RoundTripTrace{Hook: hook, Transport: http.DefaultTransport}

	req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:0", nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = rt.RoundTrip(req)
	if err == nil {
		t.Fatal("expected transport error")
	}
	if hook.requests != 1 || hook.responses != 1 {
		t.Fatalf("got requests=%d responses=%d, want 1/1", hook.requests, hook.responses)
	}
	if hook.lastErr == nil {
		t.Fatal("expected hook to observe the transport error")
	}
}

func TestTagRequestIDSetsHeaderAndReturnsValue(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://example.invalid", nil)
	if err != nil {
		t.Fatal(err)
	}

	id := TagRequestID(req)
	if id == "" {
		t.Fatal("expected non-empty request id")
	}
	if req.Header.Get(requestIDHeader) != id {
		t.Fatalf("header %q not set to returned id %q", req.Header.Get(requestIDHeader), id)
	}
}
