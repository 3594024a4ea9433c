package cache

import "errors"

// Common cache errors
var (
	// ErrSerialization is returned when a request or payload cannot be
	// serialized to JSON. Unlike store-level failures this is a caller bug,
	// so it always fails loudly regardless of the error policy.
	ErrSerialization = errors.New("cache: value cannot be serialized")

	// ErrNotConnected is the internal error the disabled store returns for
	// every operation. The facade converts it to the miss/false/empty outcome
	// under either error policy; it never reaches callers.
	ErrNotConnected = errors.New("cache: no store connection")
)

// IsSerializationError checks if the error is a serialization failure.
func IsSerializationError(err error) bool {
	return errors.Is(err, ErrSerialization)
}
