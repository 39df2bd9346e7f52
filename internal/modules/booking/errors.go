package booking

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidDate   = errors.New("invalid date format")
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrNotFound      = errors.New("booking not found")
)
