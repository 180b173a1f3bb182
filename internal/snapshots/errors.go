package snapshots

import "errors"

var (
	// ErrNotConfigured is returned by a store built without a path, key or client.
	ErrNotConfigured = errors.New("snapshot store not configured")
	// ErrCorruptSnapshot wraps documents that exist but do not decode.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)
