// Package types holds the request and response shapes for every s3go
// operation. Inputs mirror the AWS-SDK-go-v2 convention of pointer-optional
// fields so a caller can distinguish "not set" from "set to the zero value";
// outputs are plain structs since the server always sends every field it
// means to send.
package types

import "time"

// AddressingStyle selects how a bucket is mapped onto a request URL.
type AddressingStyle int

const (
	// VirtualHosted builds https://{bucket}.{endpoint}/{key}.
	VirtualHosted AddressingStyle = iota
	// PathStyle builds http://{endpoint}/{bucket}/{key}.
	PathStyle
)

// Owner identifies the bucket or object owner reported by S3.
type Owner struct {
	DisplayName string
	ID          string
}

// RestoreStatus reports the Glacier restoration state of an object.
type RestoreStatus struct {
	IsRestoreInProgress bool
	RestoreExpiryDate   string
}

// Object is one entry under ListObjectsOutput.Contents.
type Object struct {
	ChecksumAlgorithm string
	ChecksumType      string
	ETag              string
	Key               string
	LastModified      string
	Owner             Owner
	RestoreStatus     RestoreStatus
	Size              int64
	StorageClass      string
}

// CommonPrefix is one entry under ListObjectsOutput.CommonPrefixes, produced
// when a Delimiter groups keys that share a prefix.
type CommonPrefix struct {
	Prefix string
}

// ListObjectsInput configures a ListObjects (list-type=2) call.
type ListObjectsInput struct {
	Bucket               string
	ContinuationToken    *string
	Delimiter            *string
	EncodingType         *string
	ExpectedBucketOwner  *string
	FetchOwner           *bool
	MaxKeys              *int
	Prefix               *string
	RequestPayer         *string
	StartAfter           *string
}

// ListObjectsOutput is the decoded ListBucketResult document.
type ListObjectsOutput struct {
	IsTruncated           bool
	Marker                string
	NextMarker            string
	Contents              []Object
	Name                  string
	Prefix                string
	Delimiter             string
	MaxKeys               int
	CommonPrefixes        []CommonPrefix
	EncodingType          string
	KeyCount              int
	ContinuationToken     string
	NextContinuationToken string
	StartAfter            string
}

// GetObjectInput configures a GetObject call.
type GetObjectInput struct {
	Bucket                     string
	Key                        string
	IfMatch                    *string
	IfModifiedSince            *string
	IfNoneMatch                *string
	IfUnmodifiedSince          *string
	PartNumber                 *int
	Range                      *string
	ResponseCacheControl       *string
	ResponseContentDisposition *string
	ResponseContentEncoding    *string
	ResponseContentLanguage    *string
	ResponseContentType        *string
	ResponseExpires            *string
	VersionID                  *string
}

// GetObjectOutput carries the object body plus the subset of response
// headers s3go surfaces to the caller.
type GetObjectOutput struct {
	Body          []byte
	ContentLength int64
	ContentType   string
	ETag          string
	LastModified  string
}

// PutObjectInput configures a PutObject call. Body is required; everything
// else maps 1:1 onto an optional request header.
type PutObjectInput struct {
	Bucket                    string
	Key                       string
	Body                      []byte
	CacheControl              *string
	ContentDisposition        *string
	ContentEncoding           *string
	ContentLanguage           *string
	ContentMD5                *string
	ContentType               *string
	Expires                   *string
	IfMatch                   *string
	IfNoneMatch               *string
	ACL                       *string
	GrantFullControl          *string
	GrantRead                 *string
	GrantReadACP              *string
	GrantWriteACP             *string
	ChecksumCRC32             *string
	ChecksumCRC32C            *string
	ChecksumCRC64NVME         *string
	ChecksumSHA1              *string
	ChecksumSHA256            *string
	SDKChecksumAlgorithm      *string
	ServerSideEncryption      *string
	SSEKMSKeyID               *string
	SSEBucketKeyEnabled       *bool
	SSEKMSEncryptionContext   *string
	SSECustomerAlgorithm      *string
	SSECustomerKey            *string
	SSECustomerKeyMD5         *string
	ObjectLockLegalHold       *string
	ObjectLockMode            *string
	ObjectLockRetainUntilDate *string
	ExpectedBucketOwner       *string
	RequestPayer              *string
	StorageClass              *string
	Tagging                   *string
	WebsiteRedirectLocation   *string
}

// PutObjectOutput is decoded entirely from response headers.
type PutObjectOutput struct {
	ETag                    string
	Expiration              string
	ChecksumCRC32           string
	ChecksumCRC32C          string
	ChecksumCRC64NVME       string
	ChecksumSHA1            string
	ChecksumSHA256          string
	ChecksumType            string
	ServerSideEncryption    string
	VersionID               string
	SSECustomerAlgorithm    string
	SSECustomerKeyMD5       string
	SSEKMSKeyID             string
	SSEKMSEncryptionContext string
	BucketKeyEnabled        bool
	Size                    int64
	RequestCharged          string
}

// DeleteObjectInput configures a DeleteObject call.
type DeleteObjectInput struct {
	Bucket                    string
	Key                       string
	VersionID                 *string
	MFA                       *string
	RequestPayer              *string
	ByPassGovernanceRetention *string
	ExpectedBucketOwner       *string
	IfMatch                   *string
	IfMatchLastModifiedTime   *string
	IfMatchSize               *string
}

// DeleteObjectOutput is decoded entirely from response headers.
type DeleteObjectOutput struct {
	VersionID      string
	DeleteMarker   string
	RequestCharged string
}

// Tag is a key/value pair attached to a bucket via CreateBucketConfiguration.
type Tag struct {
	Key   string
	Value string
}

// BucketInfo is the nested <Bucket> element of CreateBucketConfiguration.
type BucketInfo struct {
	DataRedundancy string
	Type           string
}

// LocationInfo is the nested <Location> element of CreateBucketConfiguration.
type LocationInfo struct {
	Name string
	Type string
}

// CreateBucketConfiguration is the XML request body of CreateBucket.
type CreateBucketConfiguration struct {
	Bucket              BucketInfo
	Location            LocationInfo
	LocationConstraint  string
	Tags                []Tag
}

// CreateBucketInput configures a CreateBucket call.
type CreateBucketInput struct {
	Bucket                      string
	Configuration               CreateBucketConfiguration
	ACL                         *string
	ObjectLockEnabledForBucket  *bool
	GrantFullControl            *string
	GrantRead                   *string
	GrantReadACP                *string
	GrantWrite                  *string
	GrantWriteACP               *string
	ObjectOwnership             *string
}

// CreateBucketOutput is decoded entirely from response headers.
type CreateBucketOutput struct {
	Location  string
	BucketARN string
}

// DeleteBucketInput configures a DeleteBucket call.
type DeleteBucketInput struct {
	Bucket              string
	ExpectedBucketOwner *string
}

// HeadBucketInput configures a HeadBucket call.
type HeadBucketInput struct {
	Bucket              string
	ExpectedBucketOwner *string
}

// HeadBucketOutput is decoded entirely from response headers.
type HeadBucketOutput struct {
	BucketARN          string
	BucketLocationType string
	BucketLocationName string
	BucketRegion       string
	AccessPointAlias   string
}

// HeadObjectInput configures a HeadObject call.
type HeadObjectInput struct {
	Bucket                       string
	Key                          string
	IfMatch                      *string
	IfModifiedSince              *string
	IfNoneMatch                  *string
	IfUnmodifiedSince            *string
	Range                        *string
	CheckSumMode                 *string
	ExpectedBucketOwner          *string
	RequestPayer                 *string
	SSECustomerAlgorithm         *string
	SSECustomerKey               *string
	SSECustomerKeyMD5            *string
	PartNumber                   *int
	VersionID                    *string
	ResponseCacheControl         *string
	ResponseContentDisposition   *string
	ResponseContentEncoding      *string
	ResponseContentLanguage      *string
	ResponseContentType          *string
	ResponseExpires              *string
}

// HeadObjectOutput is decoded entirely from response headers.
type HeadObjectOutput struct {
	DeleteMarker              bool
	AcceptRanges              string
	Expiration                string
	Restore                   string
	ArchiveStatus             string
	LastModified              string
	ContentLength             int64
	ChecksumCRC32             string
	ChecksumCRC32C            string
	ChecksumCRC64NVME         string
	ChecksumSHA1              string
	ChecksumSHA256            string
	ChecksumType              string
	ETag                      string
	MissingMeta               int
	VersionID                 string
	CacheControl              string
	ContentDisposition        string
	ContentEncoding           string
	ContentLanguage           string
	ContentType               string
	ContentRange              string
	Expires                   string
	WebsiteRedirectLocation   string
	ServerSideEncryption      string
	SSECustomerAlgorithm      string
	SSECustomerKeyMD5         string
	SSEKMSKeyID               string
	BucketKeyEnabled          bool
	StorageClass              string
	RequestCharged            string
	ReplicationStatus         string
	PartsCount                int
	TagCount                  int
	ObjectLockMode            string
	ObjectLockRetainUntilDate string
	ObjectLockLegalHoldStatus string
}

// Bucket is one entry under ListBucketsOutput.Buckets.
type Bucket struct {
	Name         string
	CreationDate time.Time
}

// ListBucketsOutput is the decoded ListAllMyBucketsResult document.
type ListBucketsOutput struct {
	Owner   Owner
	Buckets []Bucket
}
