package storage

import "errors"

// ErrNotFound is returned when a requested row does not exist, or when a
// cached embedding has expired.
var ErrNotFound = errors.New("not found")
