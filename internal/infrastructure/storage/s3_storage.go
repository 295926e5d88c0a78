package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"odonto_docs/internal/infrastructure/config"
	"odonto_docs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

var ErrMissingBucket = errors.New("missing ATTACHMENTS_BUCKET")

// S3FileStorage keeps attachment and signature blobs in a private bucket.
type S3FileStorage struct {
	client   *s3.Client
	bucket   string
	endpoint string
	region   string
}

var _ interfaces.IFileStorage = (*S3FileStorage)(nil)

func NewS3FileStorage(awsCfg aws.Config, cfg config.Config) (*S3FileStorage, error) {
	if strings.TrimSpace(cfg.AttachmentsBucket) == "" {
		return nil, ErrMissingBucket
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3FileStorage{
		client:   client,
		bucket:   cfg.AttachmentsBucket,
		endpoint: strings.TrimRight(cfg.S3Endpoint, "/"),
		region:   cfg.Region,
	}, nil
}

func (s *S3FileStorage) Upload(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		ACL:           types.ObjectCannedACLPrivate,
	})
	if err != nil {
		zap.S().Errorf("[storage][s3] put failed key=%s err=%v", key, err)
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	zap.S().Debugf("[storage][s3] put key=%s size=%d", key, size)
	return s.objectURL(key), nil
}

func (s *S3FileStorage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *S3FileStorage) objectURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, escaped)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, escaped)
}
