package repository

import "errors"

// ErrNotFound is returned by every lookup whose target row is absent,
// so callers can branch on absence instead of faulting on a nil row.
var ErrNotFound = errors.New("resource not found")
