package customer

import "errors"

var (
	ErrMissingFields = errors.New("name and phone are required")
	ErrNotFound      = errors.New("customer not found")
)
