package domain

import "errors"

var (
	// ErrValidation marks a missing, empty or malformed request field.
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientData is returned when a text is too short for the requested model.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInputTooLarge is returned when an input exceeds a configured bound.
	ErrInputTooLarge = errors.New("input too large")

	// ErrLookupMiss is returned by dictionary lookups that found nothing.
	// Callers recover by falling back to the input word.
	ErrLookupMiss = errors.New("lookup miss")
)
