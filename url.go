package s3go

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ggcr/s3go/types"
)

// bucketURL returns the scheme+host+path prefix for bucket, with no
// trailing slash. Virtual-hosted addressing prepends the bucket to the
// endpoint over HTTPS; path-style addressing puts the bucket as the first
// path segment over plain HTTP, matching spec.md §3 and §4.5.
func (c *Client) bucketURL(bucket string) string {
	if c.style == types.VirtualHosted {
		return "https://" + bucket + "." + c.endpoint
	}
	return "http://" + c.endpoint + "/" + bucket
}

// objectURL appends key, percent-encoded segment-by-segment so characters
// like '?', '#', and spaces survive on the wire -- the url_encode stub the
// original left dangling (SPEC_FULL.md §8.1 point 4).
func (c *Client) objectURL(bucket, key string) string {
	return c.bucketURL(bucket) + "/" + encodeKeyPath(key)
}

func encodeKeyPath(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

// hostHeader returns the Host header value implied by the addressing style.
func (c *Client) hostHeader(bucket string) string {
	if c.style == types.VirtualHosted {
		return bucket + "." + c.endpoint
	}
	return c.endpoint
}

// queryBuilder accumulates "&"-joined query parameters in call order,
// matching the original's firstParam-flag string concatenation.
type queryBuilder struct {
	b     strings.Builder
	empty bool
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{empty: true}
}

func (q *queryBuilder) add(key, value string) {
	if q.empty {
		q.b.WriteByte('?')
		q.empty = false
	} else {
		q.b.WriteByte('&')
	}
	q.b.WriteString(key)
	q.b.WriteByte('=')
	q.b.WriteString(url.QueryEscape(value))
}

func (q *queryBuilder) addBool(key string, value bool) {
	q.add(key, strconv.FormatBool(value))
}

func (q *queryBuilder) addInt(key string, value int) {
	q.add(key, strconv.Itoa(value))
}

func (q *queryBuilder) String() string {
	return q.b.String()
}
