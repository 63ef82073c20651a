package cloudwriter

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader pushes generated artifacts (the menu PDF, export files) to
// remote storage.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte) error
}

type S3Uploader struct {
	client *s3.Client
	bucket string
}

func NewS3Uploader(ctx context.Context, region, bucket string) (*S3Uploader, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &S3Uploader{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, key string, data []byte) error {
	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("unable to upload %s to S3: %w", key, err)
	}
	return nil
}

// NewUploader builds the uploader for the configured provider. Only
// S3 is supported today; the provider switch mirrors the config shape
// so adding GCS or Azure later does not touch callers.
func NewUploader(ctx context.Context, provider, region, bucket string) (Uploader, error) {
	switch provider {
	case "s3":
		return NewS3Uploader(ctx, region, bucket)
	default:
		return nil, fmt.Errorf("unsupported cloud storage provider: %s", provider)
	}
}
