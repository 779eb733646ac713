// Package s3trace adapts the teacher's pkg/s3/httptrace.go HTTPTracer/
// RoundTripTrace pair into an opt-in Hook interface for s3go, plus two
// ready-made implementations: a zerolog-backed logger and a Prometheus
// metrics collector (SPEC_FULL.md §9).
package s3trace

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Hook observes every request/response pair a Client makes. A Client with
// no hook attached (the default) calls into nothing.
type Hook interface {
	// Request is called immediately before a request is sent.
	Request(req *http.Request)
	// Response is called after a response is received, or with a nil res
	// and a non-nil err if the round trip failed outright.
	Response(req *http.Request, res *http.Response, dur time.Duration, err error)
}

// RoundTripTrace interposes a Hook's callbacks around a RoundTripper, the
// same shape as the teacher's RoundTripTrace.
type RoundTripTrace struct {
	Hook      Hook
	Transport http.RoundTripper
}

// RoundTrip calls Hook.Request before delegating, and Hook.Response after,
// regardless of whether the round trip itself errored.
func (t RoundTripTrace) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Hook != nil {
		t.Hook.Request(req)
	}

	start := time.Now()
	res, err := t.Transport.RoundTrip(req)
	dur := time.Since(start)

	if t.Hook != nil {
		t.Hook.Response(req, res, dur, err)
	}
	return res, err
}

// requestIDHeader is the header s3go sets on every outgoing request of a
// client with a trace hook attached, so a trace/log line can be correlated
// with its eventual response.
const requestIDHeader = "X-S3go-Request-Id"

// TagRequestID stamps req with a fresh UUID under requestIDHeader, the
// default request-id generator s3go uses ahead of tracing (the same
// library the teacher already depends on for session/share IDs).
func TagRequestID(req *http.Request) string {
	id := uuid.NewString()
	req.Header.Set(requestIDHeader, id)
	return id
}
