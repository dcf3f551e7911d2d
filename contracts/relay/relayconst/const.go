// Package relayconst contains public constants of the relay contract shared
// between the contract itself, its RPC binding and clients.
package relayconst

const (
	// ErrUnauthorized is returned when the caller is not the
	// administrator.
	ErrUnauthorized = "unauthorized"
	// ErrExecutionFailed prefixes any fault of the dispatched registry
	// call, so registry-specific faults never become part of the
	// administrative surface.
	ErrExecutionFailed = "relay execution failed"
	// ErrUnknownMethod is the cause reported for a selector outside the
	// privileged set of the target registry.
	ErrUnknownMethod = "unknown method"
)
