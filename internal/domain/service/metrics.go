package service

// MetricsRecorder counts the operational events the back-office exposes on /metrics.
type MetricsRecorder interface {
	// GateDenied counts a rejected role gate
	GateDenied(gate string)

	// AggregationSourceFailed counts a dashboard source that was treated as empty
	AggregationSourceFailed(source string)

	// AuditWriteFailed counts an admin log entry that could not be stored
	AuditWriteFailed()

	// BroadcastBatch counts campaign batches by outcome (published, publish_failed, sent, send_failed)
	BroadcastBatch(outcome string)
}

// Broadcast batch outcomes.
const (
	BatchPublished     = "published"
	BatchPublishFailed = "publish_failed"
	BatchSent          = "sent"
	BatchSendFailed    = "send_failed"
)
