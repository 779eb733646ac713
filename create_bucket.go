package s3go

import (
	"context"
	"strconv"

	"github.com/ggcr/s3go/internal/decode"
	"github.com/ggcr/s3go/internal/httpmodel"
	"github.com/ggcr/s3go/internal/xmlnode"
	"github.com/ggcr/s3go/s3errors"
	"github.com/ggcr/s3go/types"
)

// CreateBucket issues a PUT to the bucket root with a CreateBucketConfiguration
// XML body built from in.Configuration (spec.md §4.5 point 6).
func (c *Client) CreateBucket(ctx context.Context, bucket string, in types.CreateBucketInput) (types.CreateBucketOutput, error) {
	const op = "CreateBucket"
	if err := c.checkOpen(); err != nil {
		return types.CreateBucketOutput{}, err
	}

	body := decode.CreateBucketConfigurationXML(in.Configuration)

	req := httpmodel.NewBodyRequest(httpmodel.MethodPut, c.bucketURL(bucket)).
		Header("Host", c.hostHeader(bucket)).
		Body(body)

	setOpt := func(name string, v *string) {
		if v != nil {
			req.Header(name, *v)
		}
	}
	setOpt("x-amz-acl", in.ACL)
	setOpt("x-amz-grant-full-control", in.GrantFullControl)
	setOpt("x-amz-grant-read", in.GrantRead)
	setOpt("x-amz-grant-read-acp", in.GrantReadACP)
	setOpt("x-amz-grant-write", in.GrantWrite)
	setOpt("x-amz-grant-write-acp", in.GrantWriteACP)
	setOpt("x-amz-object-ownership", in.ObjectOwnership)
	if in.ObjectLockEnabledForBucket != nil {
		req.Header("x-amz-bucket-object-lock-enabled", strconv.FormatBool(*in.ObjectLockEnabledForBucket))
	}

	res, err := c.doBodyRequest(ctx, req)
	if err != nil {
		return types.CreateBucketOutput{}, s3errors.NewTransportError(op, err)
	}

	if !res.IsOK() {
		nodes, perr := xmlnode.Parse(string(res.Body))
		if perr != nil {
			return types.CreateBucketOutput{}, s3errors.NewDecodeError(op, "malformed XML error body", perr)
		}
		return types.CreateBucketOutput{}, decode.ServerError(op, res.StatusCode, nodes)
	}

	return decode.CreateBucketHeaders(res.Header), nil
}
