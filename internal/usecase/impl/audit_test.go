package impl

import (
	"context"
	"testing"

	"portal/internal/domain/entity"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSanitizeDetails(t *testing.T) {
	details := map[string]any{
		"role":         "admin",
		"Password":     "hunter2",
		"invite_token": "abc",
		"nested": map[string]any{
			"client_secret": "s3cr3t",
			"count":         3,
		},
	}

	got := sanitizeDetails(details)

	assert.Equal(t, "admin", got["role"])
	assert.Equal(t, redactedValue, got["Password"])
	assert.Equal(t, redactedValue, got["invite_token"])
	nested := got["nested"].(map[string]any)
	assert.Equal(t, redactedValue, nested["client_secret"])
	assert.Equal(t, 3, nested["count"])
	assert.Equal(t, "hunter2", details["Password"], "input must not be modified")
	assert.Nil(t, sanitizeDetails(nil))
}

func TestAuditRecorder_Record(t *testing.T) {
	logs := mockRepo.NewMockAdminLogRepository(t)
	recorder := mockService.NewMockMetricsRecorder(t)
	audit := NewAuditRecorder(logs, recorder, newDiscardLogger())

	adminID := uuid.New()
	ctx, cancel := context.WithCancel(usecase.WithSubject(context.Background(), adminID))

	logs.EXPECT().
		CreateAdminLog(mock.Anything, mock.MatchedBy(func(entry *entity.AdminLog) bool {
			return entry.AdminID == adminID &&
				entry.Action == entity.AuditRemoveMember &&
				entry.TargetEmail == "staff@shop.test" &&
				entry.Details["token"] == redactedValue
		})).
		RunAndReturn(func(ctx context.Context, _ *entity.AdminLog) error {
			return ctx.Err()
		}).
		Once()

	audit.Record(ctx, entity.AuditRemoveMember, "staff@shop.test", map[string]any{"token": "raw"})
	// the request finishing must not abort the write
	cancel()
	audit.Wait()
}

func TestAuditRecorder_WriteFailureIsCounted(t *testing.T) {
	logs := mockRepo.NewMockAdminLogRepository(t)
	recorder := mockService.NewMockMetricsRecorder(t)
	audit := NewAuditRecorder(logs, recorder, newDiscardLogger())

	logs.EXPECT().CreateAdminLog(mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once()
	recorder.EXPECT().AuditWriteFailed().Once()

	audit.Record(usecase.WithSubject(context.Background(), uuid.New()), entity.AuditDeleteOrder, "", nil)
	audit.Wait()
}

func TestAuditRecorder_MissingActor(t *testing.T) {
	logs := mockRepo.NewMockAdminLogRepository(t)
	recorder := mockService.NewMockMetricsRecorder(t)
	recorder.EXPECT().AuditWriteFailed().Once()

	audit := NewAuditRecorder(logs, recorder, newDiscardLogger())
	audit.Record(context.Background(), entity.AuditDeleteOrder, "", nil)
	audit.Wait()
}
