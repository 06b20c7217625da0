package storage

import (
	"context"
	"io"
)

// FileStorage stores uploaded binaries (employee photos, the company logo).
type FileStorage interface {
	// Upload stores a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// URL resolves a stored path to a public URL
	URL(path string) string

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
