package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Error constants for storage layer
var (
	ErrObjectNotFound = errors.New("object not found in storage")
	ErrInvalidKey     = errors.New("invalid object key")
)

// ObjectSource reads whole objects by key. Callers must close the reader.
type ObjectSource interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// localSource serves objects from a directory on disk.
type localSource struct {
	root string
}

// NewLocalSource returns a source rooted at dir. Keys are slash separated
// paths relative to dir and may not escape it.
func NewLocalSource(dir string) ObjectSource {
	return &localSource{root: dir}
}

func (s *localSource) Open(_ context.Context, key string) (io.ReadCloser, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return nil, ErrInvalidKey
	}

	f, err := os.Open(filepath.Join(s.root, cleaned))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return f, nil
}
