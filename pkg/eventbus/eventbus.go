// Package eventbus publishes domain events to in-process subscribers.
package eventbus

import (
	"context"

	"github.com/rmercado/kahera/pkg/domain"
)

// Bus is the contract for publishing and subscribing to domain events.
type Bus interface {
	Publish(ctx context.Context, event domain.Event) error
	Subscribe(eventType string, handler func(context.Context, domain.Event))
}
