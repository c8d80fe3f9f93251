package storage

import "context"

// ObjectInfo represents metadata for an archived upload.
type ObjectInfo struct {
	Key  string
	Size int64
}

// ObjectStorage captures the minimal operations the upload flow needs:
// archive the raw workbook bytes, list and retrieve them later for
// re-ingestion or audit.
type ObjectStorage interface {
	ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error)
	GetObject(ctx context.Context, key string) ([]byte, error)
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
}
