// Package storage keeps uploaded test result files in MinIO.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"hospital-booking/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// FileStore is the subset of object storage the services need.
type FileStore interface {
	Upload(ctx context.Context, prefix, filename, contentType string, r io.Reader, size int64) (key, publicURL string, err error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type MinIO struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinIO connects and makes sure the bucket exists.
func NewMinIO(ctx context.Context, cfg config.StorageConfig) (*MinIO, error) {
	c, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := c.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := c.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIO{client: c, bucket: cfg.Bucket, publicBase: strings.TrimRight(cfg.PublicBase, "/")}, nil
}

var nonSafe = regexp.MustCompile(`[^a-z0-9\-_.]+`)

// sanitizeFileName keeps [a-z0-9-_.] only.
func sanitizeFileName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	name = nonSafe.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-_")
	if name == "" {
		name = "file"
	}
	return name
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// objectKey builds "<prefix>/<name>-<random><ext>".
func objectKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".bin"
	}
	base := sanitizeFileName(strings.TrimSuffix(path.Base(filename), path.Ext(filename)))
	return path.Join(sanitizeFileName(prefix), fmt.Sprintf("%s-%s%s", base, randomHex(4), ext))
}

func (m *MinIO) Upload(ctx context.Context, prefix, filename, contentType string, r io.Reader, size int64) (string, string, error) {
	key := objectKey(prefix, filename)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload object: %w", err)
	}
	return key, m.publicURL(key), nil
}

func (m *MinIO) publicURL(key string) string {
	u, err := url.Parse(m.publicBase)
	if err != nil {
		return ""
	}
	u.Path = path.Join(u.Path, m.bucket, key)
	return u.String()
}

// PresignedURL returns a time-limited download link for a private object.
func (m *MinIO) PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, ttl, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (m *MinIO) Delete(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}
