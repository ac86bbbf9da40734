package service

import (
	"context"
	"time"
)

// WalkStatusEvent is emitted after a walk status transition has been
// persisted. The notification collaborator consumes these events; this
// service never decides who gets notified or how.
type WalkStatusEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	WalkID     int64     `json:"walk_id"`
	WalkerID   int64     `json:"walker_id"`
	OwnerID    int64     `json:"owner_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishWalkStatusEvent publishes a status-change event for async processing
	PublishWalkStatusEvent(ctx context.Context, event *WalkStatusEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
