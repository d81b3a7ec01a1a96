package errors

import "errors"

var (
	// Table errors
	ErrInvalidCapacity = errors.New("invalid hash table capacity")

	// Config errors
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
