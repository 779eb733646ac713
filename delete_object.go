package s3go

import (
	"context"

	"github.com/ggcr/s3go/internal/decode"
	"github.com/ggcr/s3go/internal/httpmodel"
	"github.com/ggcr/s3go/internal/xmlnode"
	"github.com/ggcr/s3go/s3errors"
	"github.com/ggcr/s3go/types"
)

// DeleteObject deletes bucket/key. On success the result is decoded
// entirely from response headers (spec.md §4.4.1).
func (c *Client) DeleteObject(ctx context.Context, bucket, key string, in types.DeleteObjectInput) (types.DeleteObjectOutput, error) {
	const op = "DeleteObject"
	if err := c.checkOpen(); err != nil {
		return types.DeleteObjectOutput{}, err
	}

	url := c.objectURL(bucket, key)
	if in.VersionID != nil {
		q := newQueryBuilder()
		q.add("versionId", *in.VersionID)
		url += q.String()
	}

	req := httpmodel.NewBodyRequest(httpmodel.MethodDelete, url).
		Header("Host", c.hostHeader(bucket))

	setOpt := func(name string, v *string) {
		if v != nil {
			req.Header(name, *v)
		}
	}
	setOpt("x-amz-mfa", in.MFA)
	setOpt("x-amz-request-payer", in.RequestPayer)
	setOpt("x-amz-bypass-governance-retention", in.ByPassGovernanceRetention)
	setOpt("x-amz-expected-bucket-owner", in.ExpectedBucketOwner)
	setOpt("If-Match", in.IfMatch)
	setOpt("x-amz-if-match-last-modified-time", in.IfMatchLastModifiedTime)
	setOpt("x-amz-if-match-size", in.IfMatchSize)

	res, err := c.doBodyRequest(ctx, req)
	if err != nil {
		return types.DeleteObjectOutput{}, s3errors.NewTransportError(op, err)
	}

	if !res.IsOK() {
		nodes, perr := xmlnode.Parse(string(res.Body))
		if perr != nil {
			return types.DeleteObjectOutput{}, s3errors.NewDecodeError(op, "malformed XML error body", perr)
		}
		return types.DeleteObjectOutput{}, decode.ServerError(op, res.StatusCode, nodes)
	}

	return decode.DeleteObjectHeaders(res.Header), nil
}
