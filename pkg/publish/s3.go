package publish

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 10 * time.Second

// S3Config describes the destination bucket. Credentials are taken from
// the S3_ACCESS_KEY and S3_SECRET_KEY environment variables.
type S3Config struct {
	Bucket    string
	Endpoint  string
	Region    string
	KeyPrefix string
}

// S3Publisher uploads rendered images to an S3-compatible bucket
type S3Publisher struct {
	config   S3Config
	uploader *s3.S3
}

// NewS3Publisher creates a publisher for the configured bucket
func NewS3Publisher(cfg S3Config) (*S3Publisher, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("upload bucket is not configured")
	}

	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), ""),
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return &S3Publisher{
		config:   cfg,
		uploader: s3.New(sess),
	}, nil
}

// PublishPNG uploads PNG bytes under <key_prefix>/<name>.png and returns
// the object key
func (p *S3Publisher) PublishPNG(ctx context.Context, name string, data []byte) (string, error) {
	key := path.Join(p.config.KeyPrefix, name+".png")
	if err := p.upload(ctx, key, data); err != nil {
		return "", err
	}
	return key, nil
}

func (p *S3Publisher) upload(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	_, err := p.uploader.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
