package layer

import "errors"

// Error kinds reported by store, animation and preset operations. Operations
// wrap them with context, use errors.Is to classify.
var (
	// ErrNotFound - referenced layer id, stop index or preset name does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidOperation - structurally disallowed mutation, like deleting
	// the last layer or shrinking a gradient below two stops.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrValidation - malformed or out of range input value.
	ErrValidation = errors.New("validation failed")
	// ErrParse - settings payload could not be decoded.
	ErrParse = errors.New("parse error")
)
