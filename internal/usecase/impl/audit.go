package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"
)

const (
	auditWriteTimeout = 5 * time.Second
	redactedValue     = "[REDACTED]"
)

var sensitiveDetailKeys = []string{"password", "token", "secret"}

// AuditRecorder appends admin log entries off the request path. A failed
// write is logged and counted; the mutation that triggered it still succeeds.
type AuditRecorder struct {
	logs    repository.AdminLogRepository
	metrics service.MetricsRecorder
	logger  *slog.Logger
	timeout time.Duration

	wg sync.WaitGroup
}

// NewAuditRecorder is the constructor for AuditRecorder.
func NewAuditRecorder(
	logs repository.AdminLogRepository,
	metrics service.MetricsRecorder,
	logger *slog.Logger,
) *AuditRecorder {
	return &AuditRecorder{
		logs:    logs,
		metrics: metrics,
		logger:  logger,
		timeout: auditWriteTimeout,
	}
}

// Record stores an entry for the caller found in ctx. It returns immediately.
func (a *AuditRecorder) Record(ctx context.Context, action, targetEmail string, details map[string]any) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, a.logger).With(slog.String("action", action))

	adminID, ok := usecase.SubjectFromContext(ctx)
	if !ok {
		a.metrics.AuditWriteFailed()
		logger.Warn("Audit entry dropped: no actor in context")

		return
	}

	entry := &entity.AdminLog{
		AdminID:     adminID,
		Action:      action,
		TargetEmail: targetEmail,
		Details:     sanitizeDetails(details),
	}
	detached := context.WithoutCancel(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		writeCtx, cancel := context.WithTimeout(detached, a.timeout)
		defer cancel()

		if err := a.logs.CreateAdminLog(writeCtx, entry); err != nil {
			a.metrics.AuditWriteFailed()
			logger.Error("Failed to write audit entry",
				slog.String("admin_id", adminID.String()),
				slog.Any("error", err),
			)
		}
	}()
}

// Wait blocks until every dispatched write has finished.
func (a *AuditRecorder) Wait() {
	a.wg.Wait()
}

func sanitizeDetails(details map[string]any) map[string]any {
	if details == nil {
		return nil
	}

	out := make(map[string]any, len(details))
	for key, value := range details {
		switch {
		case isSensitiveKey(key):
			out[key] = redactedValue
		case isNestedDetails(value):
			out[key] = sanitizeDetails(value.(map[string]any))
		default:
			out[key] = value
		}
	}

	return out
}

func isNestedDetails(value any) bool {
	_, ok := value.(map[string]any)

	return ok
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, marker := range sensitiveDetailKeys {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}
