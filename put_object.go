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

// PutObject uploads in.Body as the object bucket/key. On success the result
// is decoded entirely from response headers (spec.md §4.4.1).
func (c *Client) PutObject(ctx context.Context, bucket, key string, in types.PutObjectInput) (types.PutObjectOutput, error) {
	const op = "PutObject"
	if err := c.checkOpen(); err != nil {
		return types.PutObjectOutput{}, err
	}

	req := httpmodel.NewBodyRequest(httpmodel.MethodPut, c.objectURL(bucket, key)).
		Header("Host", c.hostHeader(bucket)).
		Body(in.Body)

	setOpt := func(name string, v *string) {
		if v != nil {
			req.Header(name, *v)
		}
	}
	setOpt("Cache-Control", in.CacheControl)
	setOpt("Content-Disposition", in.ContentDisposition)
	setOpt("Content-Encoding", in.ContentEncoding)
	setOpt("Content-Language", in.ContentLanguage)
	setOpt("Content-MD5", in.ContentMD5)
	setOpt("Content-Type", in.ContentType)
	setOpt("Expires", in.Expires)
	setOpt("If-Match", in.IfMatch)
	setOpt("If-None-Match", in.IfNoneMatch)
	setOpt("x-amz-acl", in.ACL)
	setOpt("x-amz-grant-full-control", in.GrantFullControl)
	setOpt("x-amz-grant-read", in.GrantRead)
	setOpt("x-amz-grant-read-acp", in.GrantReadACP)
	setOpt("x-amz-grant-write-acp", in.GrantWriteACP)
	setOpt("x-amz-checksum-crc32", in.ChecksumCRC32)
	setOpt("x-amz-checksum-crc32c", in.ChecksumCRC32C)
	setOpt("x-amz-checksum-crc64nvme", in.ChecksumCRC64NVME)
	setOpt("x-amz-checksum-sha1", in.ChecksumSHA1)
	setOpt("x-amz-checksum-sha256", in.ChecksumSHA256)
	setOpt("x-amz-sdk-checksum-algorithm", in.SDKChecksumAlgorithm)
	setOpt("x-amz-server-side-encryption", in.ServerSideEncryption)
	setOpt("x-amz-server-side-encryption-aws-kms-key-id", in.SSEKMSKeyID)
	setOpt("x-amz-server-side-encryption-context", in.SSEKMSEncryptionContext)
	setOpt("x-amz-server-side-encryption-customer-algorithm", in.SSECustomerAlgorithm)
	setOpt("x-amz-server-side-encryption-customer-key", in.SSECustomerKey)
	setOpt("x-amz-server-side-encryption-customer-key-MD5", in.SSECustomerKeyMD5)
	setOpt("x-amz-object-lock-legal-hold", in.ObjectLockLegalHold)
	setOpt("x-amz-object-lock-mode", in.ObjectLockMode)
	setOpt("x-amz-object-lock-retain-until-date", in.ObjectLockRetainUntilDate)
	setOpt("x-amz-expected-bucket-owner", in.ExpectedBucketOwner)
	setOpt("x-amz-request-payer", in.RequestPayer)
	setOpt("x-amz-storage-class", in.StorageClass)
	setOpt("x-amz-tagging", in.Tagging)
	setOpt("x-amz-website-redirect-location", in.WebsiteRedirectLocation)
	if in.SSEBucketKeyEnabled != nil {
		req.Header("x-amz-server-side-encryption-bucket-key-enabled", strconv.FormatBool(*in.SSEBucketKeyEnabled))
	}

	res, err := c.doBodyRequest(ctx, req)
	if err != nil {
		return types.PutObjectOutput{}, s3errors.NewTransportError(op, err)
	}

	if !res.IsOK() {
		nodes, perr := xmlnode.Parse(string(res.Body))
		if perr != nil {
			return types.PutObjectOutput{}, s3errors.NewDecodeError(op, "malformed XML error body", perr)
		}
		return types.PutObjectOutput{}, decode.ServerError(op, res.StatusCode, nodes)
	}

	return decode.PutObjectHeaders(res.Header), nil
}
