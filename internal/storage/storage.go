// Package storage selects the object storage backend used for export archives.
package storage

import (
	"context"
	"fmt"

	"estatehub/internal/config"
	"estatehub/internal/port"
	"estatehub/internal/storage/minio"
	"estatehub/internal/storage/s3"
)

// New returns the configured ExportArchive, or nil when archiving is disabled.
func New(ctx context.Context, cfg *config.StorageConfig) (port.ExportArchive, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "s3":
		return s3.NewArchive(ctx, cfg)
	case "minio":
		return minio.NewArchive(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}
