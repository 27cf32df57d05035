// Package domain holds contracts shared by every bounded context.
package domain

// Event is the marker interface implemented by all domain events.
type Event interface {
	// Type returns a stable event type string used for subscription routing.
	Type() string
}
