package storage

import "fmt"

// StorageError represents a failed read, write or delete against a backend
type StorageError struct {
	Op      string
	Key     string
	Message string
	Cause   error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage %s %q: %s: %v", e.Op, e.Key, e.Message, e.Cause)
	}
	return fmt.Sprintf("storage %s %q: %s", e.Op, e.Key, e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}
