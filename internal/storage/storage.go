// Package storage provides the persisted key/value mirror backing the document store.
// Every backend writes whole values atomically; there are no partial updates.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
)

// KV is a string key/value store
type KV interface {
	// Get returns the value stored under key; ok is false when the key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set replaces the value stored under key
	Set(ctx context.Context, key, value string) error
	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the store
	Close() error
}

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// SQLiteFileName is the database file created inside the data directory by the sqlite backend
const SQLiteFileName = "resume.db"

var validKey = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Open creates the named backend rooted at dir
func Open(ctx context.Context, backend, dir string) (KV, error) {
	switch backend {
	case BackendMemory, "":
		return NewMemory(), nil
	case BackendFile:
		return NewFile(dir)
	case BackendSQLite:
		return NewSQLite(ctx, filepath.Join(dir, SQLiteFileName))
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

func checkKey(op, key string) error {
	if !validKey.MatchString(key) {
		return &StorageError{Op: op, Key: key, Message: "invalid key"}
	}
	return nil
}
