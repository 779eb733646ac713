package s3go

import (
	"context"

	"github.com/ggcr/s3go/internal/decode"
	"github.com/ggcr/s3go/internal/httpmodel"
	"github.com/ggcr/s3go/internal/xmlnode"
	"github.com/ggcr/s3go/s3errors"
	"github.com/ggcr/s3go/types"
)

// DeleteBucket deletes an empty bucket. Success is exactly HTTP 204 with no
// body; any other status decodes an XML error (spec.md §4.5 point 6).
func (c *Client) DeleteBucket(ctx context.Context, bucket string, in types.DeleteBucketInput) error {
	const op = "DeleteBucket"
	if err := c.checkOpen(); err != nil {
		return err
	}

	req := httpmodel.NewBodyRequest(httpmodel.MethodDelete, c.bucketURL(bucket)).
		Header("Host", c.hostHeader(bucket))
	if in.ExpectedBucketOwner != nil {
		req.Header("x-amz-expected-bucket-owner", *in.ExpectedBucketOwner)
	}

	res, err := c.doBodyRequest(ctx, req)
	if err != nil {
		return s3errors.NewTransportError(op, err)
	}

	if res.StatusCode == 204 {
		return nil
	}

	nodes, perr := xmlnode.Parse(string(res.Body))
	if perr != nil {
		return s3errors.NewDecodeError(op, "malformed XML error body", perr)
	}
	return decode.ServerError(op, res.StatusCode, nodes)
}
