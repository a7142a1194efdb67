package storage

import (
	"context"
	"io"
)

// FileStorage archives raw device export files so a bad parse can always be
// re-run against the original bytes.
type FileStorage interface {
	// Upload writes a file and returns its storage key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a stored file.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists.
	Exists(ctx context.Context, path string) (bool, error)
}
