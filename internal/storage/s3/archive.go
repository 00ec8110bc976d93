// Package s3 archives report exports in an S3 or S3-compatible bucket.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"estatehub/internal/config"
	"estatehub/internal/port"
)

type archive struct {
	bucket    string
	presigner *s3.PresignClient
	uploader  *manager.Uploader
}

// NewArchive returns an ExportArchive writing to cfg.Bucket. A non-empty
// endpoint switches to path-style addressing.
func NewArchive(ctx context.Context, cfg *config.StorageConfig) (port.ExportArchive, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3.NewArchive: loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &archive{
		bucket:    cfg.Bucket,
		presigner: s3.NewPresignClient(client),
		uploader:  manager.NewUploader(client),
	}, nil
}

func (a *archive) Store(ctx context.Context, file port.ArchivedExport) (string, error) {
	key := file.Key()
	_, err := a.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(a.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(file.Data),
		ContentLength:      aws.Int64(int64(len(file.Data))),
		ContentType:        aws.String(file.ContentType),
		ContentDisposition: aws.String(mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename})),
		Metadata:           map[string]string{"report-kind": string(file.Kind)},
	})
	if err != nil {
		return "", fmt.Errorf("s3 archive %s: %w", key, err)
	}
	return key, nil
}

func (a *archive) DownloadURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := a.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("s3 presign %s: %w", key, err)
	}
	return req.URL, nil
}
