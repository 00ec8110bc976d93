// Package minio archives report exports in a MinIO bucket.
package minio

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"estatehub/internal/config"
	"estatehub/internal/port"
)

type archive struct {
	client *minio.Client
	bucket string
}

// NewArchive connects to cfg.Endpoint and creates cfg.Bucket when missing.
func NewArchive(ctx context.Context, cfg *config.StorageConfig) (port.ExportArchive, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio.NewArchive: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio.NewArchive: checking bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("minio.NewArchive: creating bucket %s: %w", cfg.Bucket, err)
		}
	}
	return &archive{client: client, bucket: cfg.Bucket}, nil
}

func (a *archive) Store(ctx context.Context, file port.ArchivedExport) (string, error) {
	key := file.Key()
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(file.Data), int64(len(file.Data)), minio.PutObjectOptions{
		ContentType:        file.ContentType,
		ContentDisposition: mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename}),
		UserMetadata:       map[string]string{"report-kind": string(file.Kind)},
	})
	if err != nil {
		return "", fmt.Errorf("minio archive %s: %w", key, err)
	}
	return key, nil
}

func (a *archive) DownloadURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	u, err := a.client.PresignedGetObject(ctx, a.bucket, key, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("minio presign %s: %w", key, err)
	}
	return u.String(), nil
}
