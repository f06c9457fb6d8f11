package fitlog

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown log category")
	ErrNotFound        = errors.New("log record not found")
	ErrNoEntries       = errors.New("log record has no entries")
	ErrInvalidKind     = errors.New("invalid entry kind for category")
)
