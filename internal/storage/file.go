package storage

import (
	"context"
	"os"
	"path/filepath"
)

// FileBackend stores the progress blob as a single file on disk.
type FileBackend struct {
	path string
}

// NewFile returns a file backend rooted at path. The directory is created
// lazily on first save.
func NewFile(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads the blob. A missing file maps to ErrNotFound.
func (f *FileBackend) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Save writes the blob atomically via a temp file and rename.
func (f *FileBackend) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmpFile, err := os.CreateTemp(dir, "progress-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, f.path)
}

// Remove deletes the stored blob. Removing a missing file is not an error.
func (f *FileBackend) Remove(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *FileBackend) Close() error {
	return nil
}
