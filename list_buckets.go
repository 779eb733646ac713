package s3go

import (
	"context"

	"github.com/ggcr/s3go/internal/decode"
	"github.com/ggcr/s3go/internal/httpmodel"
	"github.com/ggcr/s3go/internal/xmlnode"
	"github.com/ggcr/s3go/s3errors"
	"github.com/ggcr/s3go/types"
)

// ListBuckets lists every bucket owned by the caller. Supplemented from
// original_source/'s XML fixtures (SPEC_FULL.md §11): spec.md §4.5 names
// the operation but never details it.
func (c *Client) ListBuckets(ctx context.Context) (types.ListBucketsOutput, error) {
	const op = "ListBuckets"
	if err := c.checkOpen(); err != nil {
		return types.ListBucketsOutput{}, err
	}

	url := "https://" + c.endpoint
	if c.style != types.VirtualHosted {
		url = "http://" + c.endpoint
	}

	req := httpmodel.NewRequest(httpmodel.MethodGet, url).
		Header("Host", c.endpoint)

	res, err := c.doRequest(ctx, req)
	if err != nil {
		return types.ListBucketsOutput{}, s3errors.NewTransportError(op, err)
	}

	nodes, err := xmlnode.Parse(string(res.Body))
	if err != nil {
		return types.ListBucketsOutput{}, s3errors.NewDecodeError(op, "malformed XML body", err)
	}

	if !res.IsOK() {
		return types.ListBucketsOutput{}, decode.ServerError(op, res.StatusCode, nodes)
	}

	return decode.ListBuckets(op, res.StatusCode, nodes)
}
