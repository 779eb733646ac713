package s3go

import (
	"context"

	"github.com/ggcr/s3go/internal/decode"
	"github.com/ggcr/s3go/internal/httpmodel"
	"github.com/ggcr/s3go/internal/xmlnode"
	"github.com/ggcr/s3go/s3errors"
	"github.com/ggcr/s3go/types"
)

// GetObject fetches an object's body. On success the raw bytes are returned
// unparsed -- GetObject is the one operation in spec.md §4.5 that never
// touches the XML decoder. PartNumber/VersionID/response-* query
// parameters are supplemented from original_source/'s GetObjectInput,
// which declares them even though the original's GetObject body never
// wired them (SPEC_FULL.md §11).
func (c *Client) GetObject(ctx context.Context, bucket, key string, in types.GetObjectInput) (types.GetObjectOutput, error) {
	const op = "GetObject"
	if err := c.checkOpen(); err != nil {
		return types.GetObjectOutput{}, err
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

	req := httpmodel.NewRequest(httpmodel.MethodGet, c.objectURL(bucket, key)+q.String()).
		Header("Host", c.hostHeader(bucket))
	if in.Range != nil {
		req.Header("Range", *in.Range)
	}
	if in.IfMatch != nil {
		req.Header("If-Match", *in.IfMatch)
	}
	if in.IfNoneMatch != nil {
		req.Header("If-None-Match", *in.IfNoneMatch)
	}
	if in.IfModifiedSince != nil {
		req.Header("If-Modified-Since", *in.IfModifiedSince)
	}
	if in.IfUnmodifiedSince != nil {
		req.Header("If-Unmodified-Since", *in.IfUnmodifiedSince)
	}

	res, err := c.doRequest(ctx, req)
	if err != nil {
		return types.GetObjectOutput{}, s3errors.NewTransportError(op, err)
	}

	if !res.IsOK() {
		nodes, perr := xmlnode.Parse(string(res.Body))
		if perr != nil {
			return types.GetObjectOutput{}, s3errors.NewDecodeError(op, "malformed XML error body", perr)
		}
		return types.GetObjectOutput{}, decode.ServerError(op, res.StatusCode, nodes)
	}

	return types.GetObjectOutput{
		Body:          res.Body,
		ContentLength: int64(len(res.Body)),
		ContentType:   res.Header.Get("Content-Type"),
		ETag:          res.Header.Get("ETag"),
		LastModified:  res.Header.Get("Last-Modified"),
	}, nil
}
