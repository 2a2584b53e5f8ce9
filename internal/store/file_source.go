package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const (
	sourceDirMode  = 0o755
	sourceFileMode = 0o644
)

// sourceFileStorage is the default implementation of [SourceStorage].
// Files are written to a temporary sibling and renamed into place, so a
// reader never sees a partially written source.
type sourceFileStorage struct {
}

// NewSourceFileStorage constructs a new [SourceStorage] instance.
func NewSourceFileStorage() SourceStorage {
	return &sourceFileStorage{}
}

// WriteSource implements [SourceStorage]. An existing file is replaced.
func (s *sourceFileStorage) WriteSource(ctx context.Context, dir, name string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, sourceDirMode); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingSource, err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingSource, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: %w", ErrWritingSource, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingSource, err)
	}
	if err = os.Chmod(tmpName, sourceFileMode); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingSource, err)
	}

	path := filepath.Join(dir, name)
	if err = os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingSource, err)
	}

	return path, nil
}
