package s3go

import (
	"context"

	"github.com/ggcr/s3go/internal/decode"
	"github.com/ggcr/s3go/internal/httpmodel"
	"github.com/ggcr/s3go/internal/xmlnode"
	"github.com/ggcr/s3go/s3errors"
	"github.com/ggcr/s3go/types"
)

// ListObjects issues a ListObjectsV2 (list-type=2) call. MaxKeys defaults to
// 1000 and is silently accepted above 1000 -- the server caps the response,
// per spec.md §4.5 point 2.
func (c *Client) ListObjects(ctx context.Context, bucket string, in types.ListObjectsInput) (types.ListObjectsOutput, error) {
	const op = "ListObjects"
	if err := c.checkOpen(); err != nil {
		return types.ListObjectsOutput{}, err
	}

	maxKeys := 1000
	if in.MaxKeys != nil {
		maxKeys = *in.MaxKeys
	}

	q := newQueryBuilder()
	q.add("list-type", "2")
	if in.Prefix != nil {
		q.add("prefix", *in.Prefix)
	}
	q.addInt("max-keys", maxKeys)
	if in.ContinuationToken != nil {
		q.add("continuation-token", *in.ContinuationToken)
	}
	if in.Delimiter != nil {
		q.add("delimiter", *in.Delimiter)
	}
	if in.EncodingType != nil {
		q.add("encoding-type", *in.EncodingType)
	}
	if in.StartAfter != nil {
		q.add("start-after", *in.StartAfter)
	}
	if in.FetchOwner != nil && *in.FetchOwner {
		q.add("fetch-owner", "true")
	}

	req := httpmodel.NewRequest(httpmodel.MethodGet, c.bucketURL(bucket)+q.String()).
		Header("Host", c.hostHeader(bucket))
	if in.ExpectedBucketOwner != nil {
		req.Header("x-amz-expected-bucket-owner", *in.ExpectedBucketOwner)
	}
	if in.RequestPayer != nil {
		req.Header("x-amz-request-payer", *in.RequestPayer)
	}

	res, err := c.doRequest(ctx, req)
	if err != nil {
		return types.ListObjectsOutput{}, s3errors.NewTransportError(op, err)
	}

	nodes, err := xmlnode.Parse(string(res.Body))
	if err != nil {
		return types.ListObjectsOutput{}, s3errors.NewDecodeError(op, "malformed XML body", err)
	}

	if !res.IsOK() {
		return types.ListObjectsOutput{}, decode.ServerError(op, res.StatusCode, nodes)
	}

	return decode.ListObjects(op, res.StatusCode, nodes)
}
