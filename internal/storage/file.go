package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File stores one file per key inside a directory. Writes go through a temp file and
// a rename so readers never observe a partially written value.
type File struct {
	dir string
}

// NewFile creates a file-backed store, creating dir if needed
func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

// Dir returns the backing directory
func (f *File) Dir() string {
	return f.dir
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get implements KV
func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	if err := checkKey("get", key); err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageError{Op: "get", Key: key, Message: "failed to read file", Cause: err}
	}
	return string(data), true, nil
}

// Set implements KV
func (f *File) Set(_ context.Context, key, value string) error {
	if err := checkKey("set", key); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, "."+key+"-*.tmp")
	if err != nil {
		return &StorageError{Op: "set", Key: key, Message: "failed to create temp file", Cause: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return &StorageError{Op: "set", Key: key, Message: "failed to write temp file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &StorageError{Op: "set", Key: key, Message: "failed to close temp file", Cause: err}
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		return &StorageError{Op: "set", Key: key, Message: "failed to replace file", Cause: err}
	}
	return nil
}

// Delete implements KV
func (f *File) Delete(_ context.Context, key string) error {
	if err := checkKey("delete", key); err != nil {
		return err
	}
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &StorageError{Op: "delete", Key: key, Message: "failed to remove file", Cause: err}
	}
	return nil
}

// Close implements KV
func (f *File) Close() error {
	return nil
}
