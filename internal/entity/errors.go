package entity

import "errors"

// Domain errors
var (
	// Saved result errors
	ErrSavedResultNotFound = errors.New("saved result not found")
	ErrInvalidSavedResult  = errors.New("invalid saved result data")

	// Comparison errors
	ErrComparisonNotFound = errors.New("comparison not found")
	ErrWorkbenchClosed    = errors.New("workbench is closed")

	// Model catalog errors
	ErrUnknownModel = errors.New("unknown model")

	// Clipboard errors
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")
)
