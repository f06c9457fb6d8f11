package document

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("document not found")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrForbidden         = errors.New("document belongs to another user")
	ErrEmptyBody         = errors.New("document body is empty")
)
