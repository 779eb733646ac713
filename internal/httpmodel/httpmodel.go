// Package httpmodel is the HTTP request/response model every s3go
// operation is built on. It mirrors the CRTP-flavored split the teacher's
// original C++ client used: GET/HEAD requests never carry a body, so they
// get a leaner builder (Request) than POST/PUT/DELETE requests (BodyRequest),
// while both share the same fluent Header/Timeout surface.
package httpmodel

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-ieproxy"
)

// Header is an ordered, case-insensitive container. It stores header names
// as supplied, and canonicalizes only at lookup/iteration time; SigV4
// signing needs the lowercase, sorted view (SortedLowerNames/CanonicalLine),
// while the wire request just wants whatever case the caller set.
type Header map[string][]string

// Set replaces any existing values for name.
func (h Header) Set(name, value string) {
	for k := range h {
		if strings.EqualFold(k, name) {
			delete(h, k)
		}
	}
	h[name] = []string{value}
}

// Add appends value to any existing values for name.
func (h Header) Add(name, value string) {
	for k := range h {
		if strings.EqualFold(k, name) {
			h[k] = append(h[k], value)
			return
		}
	}
	h[name] = []string{value}
}

// Get returns the first value for name, case-insensitively, or "".
func (h Header) Get(name string) string {
	lname := strings.ToLower(name)
	for k, vv := range h {
		if strings.ToLower(k) == lname && len(vv) > 0 {
			return vv[0]
		}
	}
	return ""
}

// SortedLowerNames returns every distinct header name, lowercased and
// sorted — the order SigV4's canonical request requires.
func (h Header) SortedLowerNames() []string {
	names := make([]string, 0, len(h))
	for k := range h {
		names = append(names, strings.ToLower(k))
	}
	sort.Strings(names)
	return names
}

// Values returns every value set under name, case-insensitively.
func (h Header) Values(name string) []string {
	lname := strings.ToLower(name)
	for k, vv := range h {
		if strings.ToLower(k) == lname {
			return vv
		}
	}
	return nil
}

func (h Header) applyTo(req *http.Request) {
	for k, vv := range h {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
}

// Method is the HTTP verb of a request.
type Method string

const (
	MethodGet    Method = "GET"
	MethodHead   Method = "HEAD"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// Request builds a body-less GET/HEAD request.
type Request struct {
	Method  Method
	URL     string
	Headers Header
	timeout time.Duration
}

// NewRequest starts a GET/HEAD request builder for url.
func NewRequest(method Method, url string) *Request {
	return &Request{Method: method, URL: url, Headers: Header{}}
}

// Header sets a header and returns the receiver for chaining.
func (r *Request) Header(name, value string) *Request {
	r.Headers.Set(name, value)
	return r
}

// Timeout sets a per-request timeout and returns the receiver for chaining.
func (r *Request) Timeout(d time.Duration) *Request {
	r.timeout = d
	return r
}

// Build constructs the underlying *http.Request.
func (r *Request) Build(ctx context.Context) (*http.Request, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		_ = cancel // the transport call owns ctx's lifetime via req.Context()
	}
	req, err := http.NewRequestWithContext(ctx, string(r.Method), r.URL, nil)
	if err != nil {
		return nil, err
	}
	r.Headers.applyTo(req)
	return req, nil
}

// BodyRequest builds a POST/PUT/DELETE request that may carry a body.
type BodyRequest struct {
	Method  Method
	URL     string
	Headers Header
	body    []byte
	timeout time.Duration
}

// NewBodyRequest starts a POST/PUT/DELETE request builder for url.
func NewBodyRequest(method Method, url string) *BodyRequest {
	return &BodyRequest{Method: method, URL: url, Headers: Header{}}
}

// Header sets a header and returns the receiver for chaining.
func (r *BodyRequest) Header(name, value string) *BodyRequest {
	r.Headers.Set(name, value)
	return r
}

// Timeout sets a per-request timeout and returns the receiver for chaining.
func (r *BodyRequest) Timeout(d time.Duration) *BodyRequest {
	r.timeout = d
	return r
}

// Body sets the request payload and returns the receiver for chaining.
func (r *BodyRequest) Body(data []byte) *BodyRequest {
	r.body = data
	return r
}

// GetBody returns the payload set via Body, for signing.
func (r *BodyRequest) GetBody() []byte {
	return r.body
}

// Build constructs the underlying *http.Request.
func (r *BodyRequest) Build(ctx context.Context) (*http.Request, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		_ = cancel
	}
	req, err := http.NewRequestWithContext(ctx, string(r.Method), r.URL, bytes.NewReader(r.body))
	if err != nil {
		return nil, err
	}
	req.ContentLength = int64(len(r.body))
	r.Headers.applyTo(req)
	return req, nil
}

// Response is the materialized result of executing a Request/BodyRequest:
// the body is read and buffered eagerly so decoders can make multiple
// passes over it without worrying about stream exhaustion.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// IsOK reports a 2xx status.
func (r *Response) IsOK() bool { return r.StatusCode >= 200 && r.StatusCode < 300 }

// IsRedirect reports a 3xx status.
func (r *Response) IsRedirect() bool { return r.StatusCode >= 300 && r.StatusCode < 400 }

// IsClientError reports a 4xx status.
func (r *Response) IsClientError() bool { return r.StatusCode >= 400 && r.StatusCode < 500 }

// IsServerError reports a 5xx status.
func (r *Response) IsServerError() bool { return r.StatusCode >= 500 && r.StatusCode < 600 }

// Do executes req against transport and buffers the response.
func Do(transport http.RoundTripper, req *http.Request) (*Response, error) {
	res, err := transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	return &Response{StatusCode: res.StatusCode, Body: body, Header: res.Header}, nil
}

// NewTransport builds the default proxy-aware transport, the same
// ieproxy-backed construction the teacher uses for its admin API client.
func NewTransport() *http.Transport {
	return &http.Transport{
		Proxy: ieproxy.GetProxyFunc(),
	}
}
