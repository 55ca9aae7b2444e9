package internalerr

import "github.com/pkg/errors"

// Sentinel errors for the storage, ingest and configuration layers.
// Parsing itself never fails.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrStoreUnavailable = errors.New("store unavailable")
)
