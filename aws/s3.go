package aws

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Objects above this size go through the multipart uploader
const multipartLimit = 100 << 20

// Upload stores an object under the given key and returns a durable
// public URL for it. The key is used exactly as provided, so two
// uploads to the same key overwrite each other
func (c *S3Client) Upload(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error) {
	if size > multipartLimit {
		u := manager.NewUploader(c.C, func(u *manager.Uploader) {
			u.Concurrency = 5
			u.PartSize = 5 << 20
		})

		_, err := u.Upload(ctx, &s3.PutObjectInput{
			Bucket:      c.Bucket,
			Key:         aws.String(key),
			Body:        body,
			ContentType: aws.String(contentType),
		})
		if err != nil {
			return "", fmt.Errorf("failed to upload object to S3, %w", err)
		}
	} else {
		_, err := c.C.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        c.Bucket,
			Key:           aws.String(key),
			Body:          body,
			ContentLength: aws.Int64(size),
			ContentType:   aws.String(contentType),
		})
		if err != nil {
			return "", fmt.Errorf("failed to upload object to S3, %w", err)
		}
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", *c.Bucket, c.Region, url.PathEscape(key)), nil
}
