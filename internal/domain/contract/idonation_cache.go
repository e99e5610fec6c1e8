package contract

import (
	"context"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
)

// CachedDonationsPage is the cached payload for pending-feed endpoints.
type CachedDonationsPage struct {
	Donations []entity.Donation `json:"donations"`
}

// IDonationCache defines caching operations for the pending donation feed.
// The feed is keyed per collector role and invalidated wholesale whenever any
// donation is created or collected.
type IDonationCache interface {
	GetPendingFeed(ctx context.Context, role entity.UserRole) (*CachedDonationsPage, bool, error)
	SetPendingFeed(ctx context.Context, role entity.UserRole, page *CachedDonationsPage) error
	InvalidatePendingFeeds(ctx context.Context) error
}
