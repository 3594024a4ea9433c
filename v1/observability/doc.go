// Package observability defines the Observer hook used by the sharedredis
// packages to report operations to external metrics and tracing systems
// without coupling those packages to a specific implementation.
//
// Components such as v1/redis and v1/cache call Observer.ObserveOperation
// after each operation with an OperationContext describing what happened.
// An application wires an Observer in once (directly or via fx) and decides
// what to do with the events: export Prometheus metrics, emit spans, sample
// slow operations, or ignore them entirely.
package observability
