package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Backend names reported in upload responses
const (
	BackendMinio    = "minio"
	BackendProvider = "provider"
)

// Object is stored media the STT provider can fetch
type Object struct {
	URL         string
	Key         string
	Name        string
	Size        int64
	ContentType string
	Backend     string
	UploadedAt  time.Time
}

// MediaStore stores uploaded media
type MediaStore interface {
	Put(ctx context.Context, userID, name, contentType string, r io.Reader, size int64) (*Object, error)
}

// MinioConfig configures the object store
type MinioConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	Region     string
	UseSSL     bool
	PresignTTL time.Duration
}

// Enabled reports whether object storage is configured
func (c MinioConfig) Enabled() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != ""
}

// MinioStore implements MediaStore on MinIO or any S3 compatible store
type MinioStore struct {
	client     *minio.Client
	bucket     string
	presignTTL time.Duration
	now        func() time.Time
}

// NewMinioStore creates a MinIO client. Call EnsureBucket before use.
func NewMinioStore(cfg MinioConfig) (*MinioStore, error) {
	if cfg.Bucket == "" {
		cfg.Bucket = "yolo-transcript-media"
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if cfg.PresignTTL <= 0 {
		cfg.PresignTTL = 24 * time.Hour
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinioStore{
		client:     client,
		bucket:     cfg.Bucket,
		presignTTL: cfg.PresignTTL,
		now:        time.Now,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Put uploads media and returns a presigned GET URL
func (s *MinioStore) Put(ctx context.Context, userID, name, contentType string, r io.Reader, size int64) (*Object, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	now := s.now()
	key := ObjectKey(userID, name, now)

	info, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-name": name,
			"user-id":       userID,
			"uploaded-at":   now.UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file to MinIO: %w", err)
	}

	presigned, err := s.PresignedURL(ctx, key)
	if err != nil {
		// an object nobody can fetch is garbage
		_ = s.Delete(ctx, key)
		return nil, err
	}

	return &Object{
		URL:         presigned,
		Key:         key,
		Name:        name,
		Size:        info.Size,
		ContentType: contentType,
		Backend:     BackendMinio,
		UploadedAt:  now,
	}, nil
}

// PresignedURL returns a time-limited GET URL for key
func (s *MinioStore) PresignedURL(ctx context.Context, key string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.presignTTL, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return u.String(), nil
}

// Delete removes an object
func (s *MinioStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// ObjectKey builds "uploads/<user>/<unix>-<id><ext>"
func ObjectKey(userID, name string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(name))
	return fmt.Sprintf("uploads/%s/%d-%s%s", userID, now.Unix(), uuid.New().String()[:8], ext)
}

// Uploader sends media straight to the STT provider
type Uploader interface {
	Upload(ctx context.Context, r io.Reader) (string, error)
}

// ProviderStore implements MediaStore by uploading to the STT provider
type ProviderStore struct {
	uploader Uploader
	now      func() time.Time
}

// NewProviderStore creates a provider-backed store
func NewProviderStore(uploader Uploader) *ProviderStore {
	return &ProviderStore{uploader: uploader, now: time.Now}
}

// Put uploads media to the provider, which returns a private URL
func (s *ProviderStore) Put(ctx context.Context, userID, name, contentType string, r io.Reader, size int64) (*Object, error) {
	counter := &countingReader{r: r}
	uploadURL, err := s.uploader.Upload(ctx, counter)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file to provider: %w", err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &Object{
		URL:         uploadURL,
		Name:        name,
		Size:        counter.n,
		ContentType: contentType,
		Backend:     BackendProvider,
		UploadedAt:  s.now(),
	}, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
