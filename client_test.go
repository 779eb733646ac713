package s3go

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	. "gopkg.in/check.v1"

	"github.com/ggcr/s3go/types"
)

// newTestClient mirrors the teacher's TestBucketOperations/TestObjectOperations
// setup (httptest.NewServer(handler) + a freshly built client), grounded on
// cmd/client-s3_test.go's S3New(conf) pattern.
func newTestClient(c *C, handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)

	cl := New(Credentials{AccessKey: "test-access", SecretKey: "test-secret", Region: "us-east-1"},
		WithEndpoint(srv.Listener.Addr().String()),
		WithAddressingStyle(types.PathStyle),
		WithTransport(http.DefaultTransport),
	)
	return cl, srv
}

func (s *TestSuite) TestListObjectsAgainstStubServer(c *C) {
	body := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<ListBucketResult>` +
		`<IsTruncated>false</IsTruncated>` +
		`<KeyCount>2</KeyCount>` +
		`<Contents><Key>a.txt</Key><Size>1</Size></Contents>` +
		`<Contents><Key>b.txt</Key><Size>2</Size></Contents>` +
		`</ListBucketResult>`

	cl, srv := newTestClient(c, func(w http.ResponseWriter, r *http.Request) {
		c.Assert(r.URL.Path, Equals, "/my-bucket")
		c.Assert(r.URL.Query().Get("list-type"), Equals, "2")
		c.Assert(r.Header.Get("Authorization"), Not(Equals), "")
		w.WriteHeader(200)
		w.Write([]byte(body))
	})
	defer srv.Close()
	defer cl.Close()

	out, err := cl.ListObjects(context.Background(), "my-bucket", types.ListObjectsInput{})
	c.Assert(err, IsNil)
	c.Assert(out.KeyCount, Equals, 2)
	c.Assert(len(out.Contents), Equals, 2)
	c.Assert(out.Contents[0].Key, Equals, "a.txt")
}

func (s *TestSuite) TestGetObjectAgainstStubServer(c *C) {
	want := []byte("hello world")

	cl, srv := newTestClient(c, func(w http.ResponseWriter, r *http.Request) {
		c.Assert(r.URL.Path, Equals, "/my-bucket/my-key.txt")
		w.Header().Set("ETag", `"etagvalue"`)
		w.WriteHeader(200)
		w.Write(want)
	})
	defer srv.Close()
	defer cl.Close()

	out, err := cl.GetObject(context.Background(), "my-bucket", "my-key.txt", types.GetObjectInput{})
	c.Assert(err, IsNil)
	c.Assert(out.Body, DeepEquals, want)
	c.Assert(out.ETag, Equals, `"etagvalue"`)
}

func (s *TestSuite) TestHeadBucketFallbackErrorOnNotFound(c *C) {
	cl, srv := newTestClient(c, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Minio-Error-Code", "NoSuchBucket")
		w.Header().Set("X-Minio-Error-Desc", "bucket does not exist")
		w.WriteHeader(404)
	})
	defer srv.Close()
	defer cl.Close()

	_, err := cl.HeadBucket(context.Background(), "missing-bucket", types.HeadBucketInput{})
	c.Assert(err, NotNil)
	c.Assert(err.Error(), Matches, ".*NoSuchBucket.*")
}

func (s *TestSuite) TestHeadObjectFallbackErrorUsesAmazonHeaders(c *C) {
	cl, srv := newTestClient(c, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-amz-error-code", "AccessDenied")
		w.Header().Set("x-amz-error-message", "denied")
		w.WriteHeader(403)
	})
	defer srv.Close()
	defer cl.Close()

	_, err := cl.HeadObject(context.Background(), "bucket", "key", types.HeadObjectInput{})
	c.Assert(err, NotNil)
	c.Assert(err.Error(), Matches, ".*AccessDenied.*")
}

func (s *TestSuite) TestDeleteBucketSucceedsOnlyOn204(c *C) {
	cl, srv := newTestClient(c, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(204)
	})
	defer srv.Close()
	defer cl.Close()

	err := cl.DeleteBucket(context.Background(), "my-bucket", types.DeleteBucketInput{})
	c.Assert(err, IsNil)
}

func (s *TestSuite) TestDeleteBucketFailsOnNon204WithBody(c *C) {
	cl, srv := newTestClient(c, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(409)
		w.Write([]byte(`<Error><Code>BucketNotEmpty</Code><Message>not empty</Message></Error>`))
	})
	defer srv.Close()
	defer cl.Close()

	err := cl.DeleteBucket(context.Background(), "my-bucket", types.DeleteBucketInput{})
	c.Assert(err, NotNil)
	c.Assert(err.Error(), Matches, ".*BucketNotEmpty.*")
}

func (s *TestSuite) TestOperationsRejectClosedClient(c *C) {
	cl, srv := newTestClient(c, func(w http.ResponseWriter, r *http.Request) {
		c.Fatal("handler should not be reached after Close")
	})
	defer srv.Close()
	c.Assert(cl.Close(), IsNil)

	_, err := cl.ListObjects(context.Background(), "bucket", types.ListObjectsInput{})
	c.Assert(err, Equals, ErrClientClosed)
}

func (s *TestSuite) TestPutObjectWiresHeadersAndReturnsETag(c *C) {
	cl, srv := newTestClient(c, func(w http.ResponseWriter, r *http.Request) {
		c.Assert(r.Header.Get("Content-Type"), Equals, "text/plain")
		c.Assert(r.Header.Get("x-amz-acl"), Equals, "bucket-owner-full-control")
		w.Header().Set("ETag", `"deadbeef"`)
		w.Header().Set("x-amz-version-id", "v42")
		w.WriteHeader(200)
	})
	defer srv.Close()
	defer cl.Close()

	contentType := "text/plain"
	acl := "bucket-owner-full-control"
	out, err := cl.PutObject(context.Background(), "bucket", "key.txt", types.PutObjectInput{
		Body:        []byte("payload"),
		ContentType: &contentType,
		ACL:         &acl,
	})
	c.Assert(err, IsNil)
	c.Assert(out.ETag, Equals, `"deadbeef"`)
	c.Assert(out.VersionID, Equals, "v42")
}

func (s *TestSuite) TestDeleteObjectReturnsDeleteMarkerHeader(c *C) {
	cl, srv := newTestClient(c, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-amz-delete-marker", "true")
		w.Header().Set("x-amz-version-id", "v1")
		w.WriteHeader(204)
	})
	defer srv.Close()
	defer cl.Close()

	out, err := cl.DeleteObject(context.Background(), "bucket", "key.txt", types.DeleteObjectInput{})
	c.Assert(err, IsNil)
	c.Assert(out.DeleteMarker, Equals, "true")
	c.Assert(out.VersionID, Equals, "v1")
}

func (s *TestSuite) TestListBucketsAgainstStubServer(c *C) {
	body := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<ListAllMyBucketsResult>` +
		`<Owner><ID>owner-1</ID><DisplayName>tester</DisplayName></Owner>` +
		`<Buckets><Bucket><Name>bucket-a</Name><CreationDate>2026-01-01T00:00:00.000Z</CreationDate></Bucket></Buckets>` +
		`</ListAllMyBucketsResult>`

	cl, srv := newTestClient(c, func(w http.ResponseWriter, r *http.Request) {
		c.Assert(r.URL.Path, Equals, "/")
		w.WriteHeader(200)
		w.Write([]byte(body))
	})
	defer srv.Close()
	defer cl.Close()

	out, err := cl.ListBuckets(context.Background())
	c.Assert(err, IsNil)
	c.Assert(out.Owner.ID, Equals, "owner-1")
	c.Assert(len(out.Buckets), Equals, 1)
	c.Assert(out.Buckets[0].Name, Equals, "bucket-a")
}

func (s *TestSuite) TestListObjectsPaginatorTerminatesAndCoversAllObjects(c *C) {
	const total = 1001
	const pageSize = 100

	cl, srv := newTestClient(c, func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("continuation-token")
		start := 0
		if token != "" {
			fmt.Sscanf(token, "%d", &start)
		}

		end := start + pageSize
		truncated := true
		if end >= total {
			end = total
			truncated = false
		}

		var sb []byte
		sb = append(sb, []byte(`<?xml version="1.0" encoding="UTF-8"?><ListBucketResult><IsTruncated>`)...)
		if truncated {
			sb = append(sb, []byte("true")...)
		} else {
			sb = append(sb, []byte("false")...)
		}
		sb = append(sb, []byte(`</IsTruncated>`)...)
		for i := start; i < end; i++ {
			sb = append(sb, []byte(fmt.Sprintf("<Contents><Key>obj-%d</Key><Size>1</Size></Contents>", i))...)
		}
		if truncated {
			sb = append(sb, []byte(fmt.Sprintf("<NextContinuationToken>%d</NextContinuationToken>", end))...)
		}
		sb = append(sb, []byte(`</ListBucketResult>`)...)

		w.WriteHeader(200)
		w.Write(sb)
	})
	defer srv.Close()
	defer cl.Close()

	maxKeys := pageSize
	p := NewListObjectsPaginator(cl, "big-bucket", types.ListObjectsInput{MaxKeys: &maxKeys})

	pages := 0
	objects := 0
	for p.HasMorePages() {
		out, err := p.NextPage(context.Background())
		c.Assert(err, IsNil)
		pages++
		objects += len(out.Contents)
	}

	c.Assert(pages, Equals, 11)
	c.Assert(objects, Equals, total)
}
