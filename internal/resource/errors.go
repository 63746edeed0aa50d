package resource

import "errors"

// Sentinel errors, wrapped by packages that look things up by ID.
var (
	// ErrExists means the thing being added is already present.
	ErrExists = errors.New("already exists")
	// ErrNotFound means nothing has the ID being looked up.
	ErrNotFound = errors.New("not found")
)
