package validator

import (
	"testing"

	domainerrors "portal/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inviteRequest struct {
	Email    string `json:"email" validate:"required,email"`
	PageSize int    `query:"page_size" validate:"omitempty,max=100"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&inviteRequest{Email: "ops@shop.test"}))

	err := v.Validate(&inviteRequest{Email: "not-an-email", PageSize: 500})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	appErr, ok := domainerrors.Resolve(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Details(), "email (email)")
	assert.Contains(t, appErr.Details(), "page_size (max)")
}
