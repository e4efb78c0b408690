package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/astraclean/offerte_backend/config"
)

// Client wraps the AWS S3 client for any S3-compatible storage.
type Client struct {
	s3     *s3.Client
	bucket string
}

// New creates a new S3 client. An empty endpoint uses AWS itself.
func New(ctx context.Context, cfg config.S3Config) (*Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3: bucket name is required")
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load config: %w", err)
	}

	cli := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // most S3-compatible stores require path-style
		}
	})

	return &Client{s3: cli, bucket: cfg.Bucket}, nil
}

// Upload puts an object into S3.
func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("s3 upload %q: %w", key, err)
	}
	return nil
}

// PutText stores a UTF-8 text object under key.
func (c *Client) PutText(ctx context.Context, key, text string) error {
	return c.Upload(ctx, key, "text/plain; charset=utf-8", bytes.NewReader([]byte(text)), int64(len(text)))
}

// ObjectKey builds {prefix}/{yyyy}/{mm}/{dd}/{uuid}.{ext}.
func ObjectKey(prefix string, at time.Time, ext string) string {
	name := uuid.NewString()
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		name += "." + ext
	}
	return path.Join(strings.Trim(prefix, "/"), at.UTC().Format("2006/01/02"), name)
}
