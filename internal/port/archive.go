package port

import (
	"context"
	"path"
	"time"
)

// ExportKind names the report family an archived export belongs to.
type ExportKind string

const (
	ExportKindCommission ExportKind = "commission"
	ExportKindDaily      ExportKind = "daily"
)

// ArchivedExport is a rendered report file kept in object storage.
type ArchivedExport struct {
	Kind        ExportKind
	Filename    string
	ContentType string
	Data        []byte
}

// Key returns the object key, exports/<kind>/<filename>.
func (a ArchivedExport) Key() string {
	return path.Join("exports", string(a.Kind), a.Filename)
}

// ExportArchive keeps copies of rendered report exports in a single bucket.
type ExportArchive interface {
	// Store writes the file and returns its object key. Storing the same
	// report twice overwrites the earlier copy.
	Store(ctx context.Context, file ArchivedExport) (string, error)
	DownloadURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
