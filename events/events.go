// Package events defines the orchestrator's lifecycle event bus contract and
// an in-memory implementation of it.
package events

import "context"

// Well-known orchestrator lifecycle events.
const (
	BeforePatternDetection = "orchestrator:before:pattern-detection"
	AfterPatternDetection  = "orchestrator:after:pattern-detection"
	BeforeDeploy           = "orchestrator:before:deploy"
	AfterDeploy            = "orchestrator:after:deploy"
)

// Handler is invoked when a subscribed event is emitted. It may block; the
// bus waits for it before running the next handler.
type Handler func(ctx context.Context) error

// Subscriber is the capability plugins receive to register for events.
type Subscriber interface {
	// Subscribe adds h to the handlers for name.
	Subscribe(name string, h Handler)
	// Unsubscribe removes every handler registered for name.
	Unsubscribe(name string)
}
