package record

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidData   = errors.New("invalid record data")
	ErrMalformedDate = errors.New("malformed date")
	ErrInvalidStatus = errors.New("invalid record status")
)
