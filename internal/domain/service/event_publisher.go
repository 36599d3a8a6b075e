package service

import (
	"context"
)

// BroadcastEvent is one batch of a marketing campaign handed to the mail worker.
// Messages are fully rendered; the worker never substitutes placeholders.
type BroadcastEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	CampaignID string        `json:"campaign_id"`
	BatchIndex int           `json:"batch_index"`
	BatchCount int           `json:"batch_count"`
	Messages   []MailMessage `json:"messages"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBroadcastEvent publishes one campaign batch for async delivery
	PublishBroadcastEvent(ctx context.Context, event *BroadcastEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
