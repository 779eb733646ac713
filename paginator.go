package s3go

import (
	"context"

	"github.com/ggcr/s3go/types"
)

// ListObjectsPaginator iterates the pages of a ListObjects call, echoing
// NextContinuationToken back as ContinuationToken until IsTruncated is
// false, exactly like the original ListObjectsPaginator in s3.h.
type ListObjectsPaginator struct {
	client  *Client
	bucket  string
	input   types.ListObjectsInput
	hasMore bool
	token   string
}

// NewListObjectsPaginator builds a paginator for bucket, starting from
// in.ContinuationToken (usually unset, to start from the first page).
func NewListObjectsPaginator(client *Client, bucket string, in types.ListObjectsInput) *ListObjectsPaginator {
	p := &ListObjectsPaginator{
		client:  client,
		bucket:  bucket,
		input:   in,
		hasMore: true,
	}
	if in.ContinuationToken != nil {
		p.token = *in.ContinuationToken
	}
	return p
}

// HasMorePages reports whether NextPage has another page to fetch. It's
// true before the first call and after any page with IsTruncated=true.
func (p *ListObjectsPaginator) HasMorePages() bool {
	return p.hasMore
}

// NextPage issues one ListObjects call with the accumulated continuation
// token. On success it advances hasMore/token from the response; on error
// it returns the error unchanged and leaves state untouched, so the caller
// may retry the same page (spec.md §4.6).
func (p *ListObjectsPaginator) NextPage(ctx context.Context) (types.ListObjectsOutput, error) {
	in := p.input
	in.ContinuationToken = nil
	if p.token != "" {
		token := p.token
		in.ContinuationToken = &token
	}

	out, err := p.client.ListObjects(ctx, p.bucket, in)
	if err != nil {
		return types.ListObjectsOutput{}, err
	}

	p.hasMore = out.IsTruncated
	p.token = out.NextContinuationToken
	return out, nil
}
