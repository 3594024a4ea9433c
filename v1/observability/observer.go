package observability

import "time"

// OperationContext carries the details of a single operation performed against
// an external system. It is passed to an Observer after the operation finishes,
// whether it succeeded or failed.
type OperationContext struct {
	// Component identifies the package emitting the event, e.g. "redis" or "cache".
	Component string

	// Operation is the logical operation name, e.g. "get", "set", "publish".
	Operation string

	// Resource is the primary resource the operation touched, typically a key,
	// a key pattern, or a channel name.
	Resource string

	// SubResource is additional context such as a field name or a key prefix.
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the error returned by the operation, or nil on success.
	Error error

	// Size is the number of bytes or items returned/affected, where meaningful.
	Size int64

	// Metadata holds operation-specific details (e.g. ttl, key_count).
	Metadata map[string]interface{}
}

// Observer receives operation events from instrumented components.
// Implementations must be safe for concurrent use; they are called inline on
// the operation's goroutine and should return quickly.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
