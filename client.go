// Package s3go is a minimal Amazon S3-compatible object storage client. It
// signs every request with AWS SigV4 (internal/sigv4), builds requests with
// internal/httpmodel, and decodes XML/header responses with internal/decode
// into the typed records in s3go/types. The package mirrors the structure
// of the original s3cpp S3Client: one client owns one signer, one endpoint
// configuration, and one HTTP transport for its entire lifetime.
package s3go

import (
	"context"
	"errors"
	"net/http"

	"github.com/ggcr/s3go/internal/httpmodel"
	"github.com/ggcr/s3go/internal/sigv4"
	"github.com/ggcr/s3go/s3limiter"
	"github.com/ggcr/s3go/s3trace"
	"github.com/ggcr/s3go/types"
)

// Credentials is the (access_key, secret_key, region) tuple SigV4 signing
// requires. Region defaults to "us-east-1" when empty.
type Credentials struct {
	AccessKey string
	SecretKey string
	Region    string
}

// ErrClientClosed is returned by every operation on a Client after Close
// (the Go analogue of the spec's "moved-from client" requirement: the
// transport is exclusively owned, and once it's released, the client must
// reject further use).
var ErrClientClosed = errors.New("s3go: client closed")

// Client is an S3-compatible object storage client. The zero value is not
// usable; construct one with New. A Client is not safe for concurrent use by
// multiple goroutines unless the transport passed via WithTransport is
// itself safe for concurrent RoundTrip calls, which is the default
// *http.Transport's normal contract -- see SPEC_FULL.md §5.
type Client struct {
	signer    *sigv4.Signer
	endpoint  string
	style     types.AddressingStyle
	transport http.RoundTripper
	hook      s3trace.Hook
	userAgent string
	closed    bool
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithEndpoint overrides the default AWS endpoint (e.g. "s3.us-east-1.amazonaws.com")
// with a custom host, for MinIO or other S3-compatible servers.
func WithEndpoint(host string) Option {
	return func(c *Client) { c.endpoint = host }
}

// WithAddressingStyle selects virtual-hosted (the default) or path-style
// URL construction.
func WithAddressingStyle(style types.AddressingStyle) Option {
	return func(c *Client) { c.style = style }
}

// WithTransport overrides the default proxy-aware transport.
func WithTransport(t http.RoundTripper) Option {
	return func(c *Client) { c.transport = t }
}

// WithRateLimit wraps the transport in a throughput limiter, adapted from
// the teacher's pkg/limiter (SPEC_FULL.md §10). A limit of 0 disables
// limiting in that direction.
func WithRateLimit(uploadBytesPerSec, downloadBytesPerSec int64) Option {
	return func(c *Client) {
		c.transport = s3limiter.New(uploadBytesPerSec, downloadBytesPerSec, c.transport)
	}
}

// WithTraceHook attaches a request/response observer (logging, metrics) to
// every call the client makes. See s3go/s3trace.
func WithTraceHook(hook s3trace.Hook) Option {
	return func(c *Client) { c.hook = hook }
}

// WithUserAgent overrides the default User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

const defaultUserAgent = "s3go"

// New builds a Client for the given credentials. With no options, it
// targets AWS over virtual-hosted addressing in the credentials' region
// (or us-east-1 if unset), exactly as the teacher's zero-endpoint
// constructor does.
func New(creds Credentials, opts ...Option) *Client {
	region := creds.Region
	if region == "" {
		region = "us-east-1"
	}

	c := &Client{
		signer:    sigv4.New(creds.AccessKey, creds.SecretKey, region),
		endpoint:  "s3." + region + ".amazonaws.com",
		style:     types.VirtualHosted,
		transport: httpmodel.NewTransport(),
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Close marks the client closed. Any subsequent operation returns
// ErrClientClosed. Close does not shut down the transport or close its idle
// connections. Close is idempotent.
func (c *Client) Close() error {
	c.closed = true
	return nil
}

func (c *Client) checkOpen() error {
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

func (c *Client) roundTripper() http.RoundTripper {
	rt := c.transport
	if c.hook != nil {
		rt = s3trace.RoundTripTrace{Hook: c.hook, Transport: rt}
	}
	return rt
}

func (c *Client) doRequest(ctx context.Context, req *httpmodel.Request) (*httpmodel.Response, error) {
	req.Header("User-Agent", c.userAgent)
	c.signer.SignRequest(req)
	httpReq, err := req.Build(ctx)
	if err != nil {
		return nil, err
	}
	if c.hook != nil {
		s3trace.TagRequestID(httpReq)
	}
	return httpmodel.Do(c.roundTripper(), httpReq)
}

func (c *Client) doBodyRequest(ctx context.Context, req *httpmodel.BodyRequest) (*httpmodel.Response, error) {
	req.Header("User-Agent", c.userAgent)
	c.signer.SignBodyRequest(req)
	httpReq, err := req.Build(ctx)
	if err != nil {
		return nil, err
	}
	if c.hook != nil {
		s3trace.TagRequestID(httpReq)
	}
	return httpmodel.Do(c.roundTripper(), httpReq)
}
