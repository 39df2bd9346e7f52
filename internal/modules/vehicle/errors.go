package vehicle

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrNotFound      = errors.New("vehicle not found")
	ErrPlateExists   = errors.New("license plate already exists")
	ErrInvalidStatus = errors.New("invalid vehicle status")
	ErrTooManyImages = errors.New("a vehicle can have at most 5 images")
)
