package s3go

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	. "gopkg.in/check.v1"

	"github.com/ggcr/s3go/types"
)

// generateRandomBucketName mirrors the teacher's s3_test.cpp helper of the
// same name, swapping the C++ mt19937-driven suffix for uuid.NewString().
func generateRandomBucketName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

func (s *TestSuite) TestCreateBucketSendsConfigurationBody(c *C) {
	bucket := generateRandomBucketName("s3go-test")

	var gotBody []byte
	cl, srv := newTestClient(c, func(w http.ResponseWriter, r *http.Request) {
		c.Assert(r.URL.Path, Equals, "/"+bucket)
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Location", "/"+bucket)
		w.WriteHeader(200)
	})
	defer srv.Close()
	defer cl.Close()

	out, err := cl.CreateBucket(context.Background(), bucket, types.CreateBucketInput{
		Configuration: types.CreateBucketConfiguration{
			LocationConstraint: "us-west-2",
		},
	})
	c.Assert(err, IsNil)
	c.Assert(out.Location, Equals, "/"+bucket)
	c.Assert(string(gotBody), Matches, ".*<LocationConstraint>us-west-2</LocationConstraint>.*")
}

func (s *TestSuite) TestGenerateRandomBucketNameIsUnique(c *C) {
	a := generateRandomBucketName("bucket")
	b := generateRandomBucketName("bucket")
	c.Assert(a, Not(Equals), b)
}
