// Package publish uploads finished renders to an S3-compatible bucket.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

// ErrNoBucket is returned when uploading without a configured bucket
var ErrNoBucket = errors.New("no S3 bucket configured")

// Config holds the S3 connection settings
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Empty for AWS, set for S3-compatible stores
	AccessKey string
	SecretKey string
	Prefix    string // Key prefix for every upload
	ACL       string
}

// ConfigFromEnv reads the RT_S3_* environment variables
func ConfigFromEnv() Config {
	return Config{
		Bucket:    os.Getenv("RT_S3_BUCKET"),
		Region:    getEnv("RT_S3_REGION", "us-east-1"),
		Endpoint:  os.Getenv("RT_S3_ENDPOINT"),
		AccessKey: os.Getenv("RT_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("RT_S3_SECRET_KEY"),
		Prefix:    getEnv("RT_S3_PREFIX", "renders"),
		ACL:       getEnv("RT_S3_ACL", "public-read"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Enabled reports whether a bucket is configured
func (c Config) Enabled() bool {
	return c.Bucket != ""
}

// Uploader puts PNG renders into a bucket
type Uploader struct {
	config Config
	client s3iface.S3API
	logger core.Logger
}

// NewUploader creates an S3 session from cfg
func NewUploader(cfg Config, logger core.Logger) (*Uploader, error) {
	if !cfg.Enabled() {
		return nil, ErrNoBucket
	}

	s3Config := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.AccessKey != "" {
		s3Config.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		s3Config.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return NewUploaderWithClient(cfg, s3.New(sess), logger), nil
}

// NewUploaderWithClient creates an uploader around an existing S3 client
func NewUploaderWithClient(cfg Config, client s3iface.S3API, logger core.Logger) *Uploader {
	return &Uploader{config: cfg, client: client, logger: logger}
}

// Key returns the object key for a render file name of a scene
func (u *Uploader) Key(sceneName, fileName string) string {
	return path.Join(u.config.Prefix, sceneName, fileName)
}

// Upload stores data as a PNG object under key
func (u *Uploader) Upload(ctx context.Context, key string, data []byte) error {
	if !u.config.Enabled() {
		return ErrNoBucket
	}
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	input := &s3.PutObjectInput{
		Bucket:        aws.String(u.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
	}
	if u.config.ACL != "" {
		input.ACL = aws.String(u.config.ACL)
	}

	if _, err := u.client.PutObjectWithContext(ctx, input); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if u.logger != nil {
		u.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, u.config.Bucket, size)
	}
	return nil
}
