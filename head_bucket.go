package s3go

import (
	"context"

	"github.com/ggcr/s3go/internal/decode"
	"github.com/ggcr/s3go/internal/httpmodel"
	"github.com/ggcr/s3go/s3errors"
	"github.com/ggcr/s3go/types"
)

// HeadBucket checks bucket existence/access. HEAD responses never carry a
// body, so failure is fabricated from response headers (spec.md §4.5).
func (c *Client) HeadBucket(ctx context.Context, bucket string, in types.HeadBucketInput) (types.HeadBucketOutput, error) {
	const op = "HeadBucket"
	if err := c.checkOpen(); err != nil {
		return types.HeadBucketOutput{}, err
	}

	req := httpmodel.NewRequest(httpmodel.MethodHead, c.bucketURL(bucket)).
		Header("Host", c.hostHeader(bucket))
	if in.ExpectedBucketOwner != nil {
		req.Header("x-amz-expected-bucket-owner", *in.ExpectedBucketOwner)
	}

	res, err := c.doRequest(ctx, req)
	if err != nil {
		return types.HeadBucketOutput{}, s3errors.NewTransportError(op, err)
	}

	if res.StatusCode == 200 {
		return decode.HeadBucketHeaders(res.Header), nil
	}
	return types.HeadBucketOutput{}, decode.HeadFallbackError(op, res.StatusCode, res.Header)
}
