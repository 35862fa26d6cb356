package note

import "errors"

var (
	// ErrCorruptState reports unreadable persisted data. Recoverable: callers
	// may Reset the store to empty and carry on.
	ErrCorruptState = errors.New("corrupt persisted state")

	// ErrInvalidImport reports a structurally invalid import blob. The store
	// is left untouched.
	ErrInvalidImport = errors.New("invalid import")
)
