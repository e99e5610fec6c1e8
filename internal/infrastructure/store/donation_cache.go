package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/contract"
	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
)

// DonationCacheStore caches the per-role pending donation feed in redis.
// Feeds are invalidated wholesale whenever any donation is created or
// collected, so a short TTL is enough.
type DonationCacheStore struct {
	rdb     *redis.Client
	feedTTL time.Duration
}

func NewDonationCacheStore(rdb *redis.Client) *DonationCacheStore {
	return &DonationCacheStore{
		rdb:     rdb,
		feedTTL: 5 * time.Minute,
	}
}

// check if DonationCacheStore implements contract.IDonationCache at compile time
var _ contract.IDonationCache = (*DonationCacheStore)(nil)

func pendingFeedKey(role entity.UserRole) string {
	return fmt.Sprintf("donations:pending:%s", role)
}

func (c *DonationCacheStore) GetPendingFeed(ctx context.Context, role entity.UserRole) (*contract.CachedDonationsPage, bool, error) {
	b, err := c.rdb.Get(ctx, pendingFeedKey(role)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page contract.CachedDonationsPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *DonationCacheStore) SetPendingFeed(ctx context.Context, role entity.UserRole, page *contract.CachedDonationsPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, pendingFeedKey(role), data, c.feedTTL).Err()
}

func (c *DonationCacheStore) InvalidatePendingFeeds(ctx context.Context) error {
	keys := []string{
		pendingFeedKey(entity.UserRoleNGO),
		pendingFeedKey(entity.UserRoleBiogas),
	}
	return c.rdb.Del(ctx, keys...).Err()
}
