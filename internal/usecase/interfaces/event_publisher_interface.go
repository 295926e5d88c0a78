package interfaces

import (
	"context"
	"time"
)

// DomainEvent is the envelope published after a state-changing operation.
type DomainEvent struct {
	Type        string         `json:"type"`
	AggregateID string         `json:"aggregate_id"`
	Kind        string         `json:"kind"`
	ActorID     string         `json:"actor_id"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Data        map[string]any `json:"data,omitempty"`
}

type IEventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}
