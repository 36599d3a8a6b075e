package usecase

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase is the customer's own area. Every call runs under the
// caller's identity so row-level security bounds what it can see.
type AccountUsecase interface {
	GetMyProfile(ctx context.Context) (*entity.Profile, error)
	UpdateMyProfile(ctx context.Context, input UpdateProfileInput) (*entity.Profile, error)
	ListMyOrders(ctx context.Context) ([]*entity.Order, error)
	ListMySubscriptions(ctx context.Context) ([]*entity.Subscription, error)
	// GetPlaylistQR returns a PNG QR code of the line's playlist URL.
	GetPlaylistQR(ctx context.Context, subscriptionID uuid.UUID) ([]byte, error)
}
