package decode

import (
	"strconv"
	"strings"

	"github.com/ggcr/s3go/types"
)

// CreateBucketConfigurationXML builds the CreateBucket request body. The
// element nesting and omit-if-empty rule are carried from
// original_source/src/s3cpp/s3.cpp's CreateBucket body-building code
// (SPEC_FULL.md §11).
func CreateBucketConfigurationXML(cfg types.CreateBucketConfiguration) []byte {
	var b strings.Builder
	b.WriteString(`<CreateBucketConfiguration xmlns="http://s3.amazonaws.com/doc/2006-03-01/">`)

	if cfg.LocationConstraint != "" {
		b.WriteString("<LocationConstraint>")
		b.WriteString(cfg.LocationConstraint)
		b.WriteString("</LocationConstraint>")
	}

	if cfg.Location.Name != "" || cfg.Location.Type != "" {
		b.WriteString("<Location>")
		if cfg.Location.Name != "" {
			b.WriteString("<Name>")
			b.WriteString(cfg.Location.Name)
			b.WriteString("</Name>")
		}
		if cfg.Location.Type != "" {
			b.WriteString("<Type>")
			b.WriteString(cfg.Location.Type)
			b.WriteString("</Type>")
		}
		b.WriteString("</Location>")
	}

	if cfg.Bucket.DataRedundancy != "" || cfg.Bucket.Type != "" {
		b.WriteString("<Bucket>")
		if cfg.Bucket.DataRedundancy != "" {
			b.WriteString("<DataRedundancy>")
			b.WriteString(cfg.Bucket.DataRedundancy)
			b.WriteString("</DataRedundancy>")
		}
		if cfg.Bucket.Type != "" {
			b.WriteString("<Type>")
			b.WriteString(cfg.Bucket.Type)
			b.WriteString("</Type>")
		}
		b.WriteString("</Bucket>")
	}

	if len(cfg.Tags) > 0 {
		b.WriteString("<Tags>")
		for _, tag := range cfg.Tags {
			b.WriteString("<Tag><Key>")
			b.WriteString(tag.Key)
			b.WriteString("</Key><Value>")
			b.WriteString(tag.Value)
			b.WriteString("</Value></Tag>")
		}
		b.WriteString("</Tags>")
	}

	b.WriteString("</CreateBucketConfiguration>")
	return []byte(b.String())
}

// BoolHeaderValue renders b the way S3 expects boolean-valued headers
// ("true"/"false"), matching the original's ObjectLockEnabledForBucket
// rendering.
func BoolHeaderValue(b bool) string {
	return strconv.FormatBool(b)
}
