package port

import (
	"context"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/event"
)

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
