// Package storage uploads exported files to S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Uploader stores a local file remotely
type Uploader interface {
	UploadFile(ctx context.Context, path string) (*UploadResult, error)
}

// UploadResult describes an uploaded object
type UploadResult struct {
	URL        string    `json:"url"`
	Key        string    `json:"key"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Options configures a MinioUploader
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioUploader implements Uploader using MinIO
type MinioUploader struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
	now      func() time.Time
}

// NewMinioUploader creates an uploader; the bucket is created on first upload
func NewMinioUploader(opts Options) (*MinioUploader, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if opts.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinioUploader{
		client:   client,
		bucket:   opts.Bucket,
		endpoint: opts.Endpoint,
		useSSL:   opts.UseSSL,
		now:      time.Now,
	}, nil
}

// UploadFile uploads the file at path under a dated, collision-free key
func (u *MinioUploader) UploadFile(ctx context.Context, path string) (*UploadResult, error) {
	if err := u.ensureBucket(ctx); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	uploadedAt := u.now()
	key := KeyFor(filepath.Base(path), uploadedAt)

	contentType := "application/octet-stream"
	if filepath.Ext(path) == ".xlsx" {
		contentType = xlsxContentType
	}

	_, err = u.client.PutObject(ctx, u.bucket, key, file, stat.Size(), minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-name": filepath.Base(path),
			"uploaded-at":   uploadedAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file to MinIO: %w", err)
	}

	return &UploadResult{
		URL:        u.GetFileURL(key),
		Key:        key,
		Size:       stat.Size(),
		UploadedAt: uploadedAt,
	}, nil
}

func (u *MinioUploader) ensureBucket(ctx context.Context) error {
	exists, err := u.client.BucketExists(ctx, u.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := u.client.MakeBucket(ctx, u.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// GetFileURL returns the URL for accessing an object
func (u *MinioUploader) GetFileURL(key string) string {
	protocol := "http"
	if u.useSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, u.endpoint, u.bucket, key)
}

// KeyFor builds the object key of an export
func KeyFor(name string, at time.Time) string {
	return fmt.Sprintf("exports/%s/%s-%s", at.UTC().Format("2006-01-02"), uuid.New().String()[:8], name)
}
