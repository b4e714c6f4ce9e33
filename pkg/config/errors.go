package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed
	// into the provided struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
