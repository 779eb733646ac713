package s3go

import (
	"context"

	"github.com/ggcr/s3go/internal/decode"
	"github.com/ggcr/s3go/internal/httpmodel"
	"github.com/ggcr/s3go/s3errors"
	"github.com/ggcr/s3go/types"
)

// HeadObject fetches object metadata without a body. HEAD responses never
// carry a body, so failure is fabricated from response headers (spec.md
// §4.5). Query parameters (partNumber, versionId, response-*) are carried
// from original_source/src/s3cpp/s3.cpp's HeadObject (SPEC_FULL.md §11).
func (c *Client) HeadObject(ctx context.Context, bucket, key string, in types.HeadObjectInput) (types.HeadObjectOutput, error) {
	const op = "HeadObject"
	if err := c.checkOpen(); err != nil {
		return types.HeadObjectOutput{}, err
	}

	q := newQueryBuilder()
	if in.PartNumber != nil {
		q.addInt("partNumber", *in.PartNumber)
	}
	if in.VersionID != nil {
		q.add("versionId", *in.VersionID)
	}
	if in.ResponseCacheControl != nil {
		q.add("response-cache-control", *in.ResponseCacheControl)
	}
	if in.ResponseContentDisposition != nil {
		q.add("response-content-disposition", *in.ResponseContentDisposition)
	}
	if in.ResponseContentEncoding != nil {
		q.add("response-content-encoding", *in.ResponseContentEncoding)
	}
	if in.ResponseContentLanguage != nil {
		q.add("response-content-language", *in.ResponseContentLanguage)
	}
	if in.ResponseContentType != nil {
		q.add("response-content-type", *in.ResponseContentType)
	}
	if in.ResponseExpires != nil {
		q.add("response-expires", *in.ResponseExpires)
	}

	req := httpmodel.NewRequest(httpmodel.MethodHead, c.objectURL(bucket, key)+q.String()).
		Header("Host", c.hostHeader(bucket))

	setOpt := func(name string, v *string) {
		if v != nil {
			req.Header(name, *v)
		}
	}
	setOpt("If-Match", in.IfMatch)
	setOpt("If-Modified-Since", in.IfModifiedSince)
	setOpt("If-None-Match", in.IfNoneMatch)
	setOpt("If-Unmodified-Since", in.IfUnmodifiedSince)
	setOpt("Range", in.Range)
	setOpt("x-amz-checksum-mode", in.CheckSumMode)
	setOpt("x-amz-expected-bucket-owner", in.ExpectedBucketOwner)
	setOpt("x-amz-request-payer", in.RequestPayer)
	setOpt("x-amz-server-side-encryption-customer-algorithm", in.SSECustomerAlgorithm)
	setOpt("x-amz-server-side-encryption-customer-key", in.SSECustomerKey)
	setOpt("x-amz-server-side-encryption-customer-key-MD5", in.SSECustomerKeyMD5)

	res, err := c.doRequest(ctx, req)
	if err != nil {
		return types.HeadObjectOutput{}, s3errors.NewTransportError(op, err)
	}

	if res.StatusCode == 200 {
		return decode.HeadObjectHeaders(res.Header), nil
	}
	return types.HeadObjectOutput{}, decode.HeadFallbackError(op, res.StatusCode, res.Header)
}
