package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/teampulse/teampulse-backend-go/internal/domain/hierarchy"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

const keyPrefix = "hierarchy:reports:"

// hierarchyCacheImpl decorates a hierarchy.Store with a short-lived Redis
// cache of direct-report lists. The TTL must stay small: a stale entry widens
// the window in which an access decision reflects an old reporting structure.
// Callers mutating the manager relation invalidate the affected keys.
type hierarchyCacheImpl struct {
	inner  hierarchy.Store
	client *redis.Client
	ttl    time.Duration
}

func NewHierarchyCache(inner hierarchy.Store, client *redis.Client, ttl time.Duration) *hierarchyCacheImpl {
	return &hierarchyCacheImpl{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

var _ hierarchy.Store = (*hierarchyCacheImpl)(nil)
var _ hierarchy.CacheInvalidator = (*hierarchyCacheImpl)(nil)

// FindByID implements hierarchy.Store. Single-record lookups pass through;
// only the fan-out query is worth caching.
func (c *hierarchyCacheImpl) FindByID(ctx context.Context, id string) (user.User, bool, error) {
	return c.inner.FindByID(ctx, id)
}

// FindDirectReports implements hierarchy.Store.
func (c *hierarchyCacheImpl) FindDirectReports(ctx context.Context, managerID string) ([]user.User, error) {
	key := keyPrefix + managerID

	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var reports []user.User
		if err := json.Unmarshal([]byte(cached), &reports); err == nil {
			return reports, nil
		}
		// Undecodable entry: drop it and fall through to the store.
		c.client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		// Cache trouble is not a reason to deny; go straight to the store.
		slog.Warn("hierarchy cache read failed", "manager_id", managerID, "error", err)
	}

	reports, err := c.inner.FindDirectReports(ctx, managerID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(reports)
	if err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			slog.Warn("hierarchy cache write failed", "manager_id", managerID, "error", err)
		}
	}

	return reports, nil
}

// Invalidate implements hierarchy.CacheInvalidator.
func (c *hierarchyCacheImpl) Invalidate(ctx context.Context, managerIDs ...string) error {
	if len(managerIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(managerIDs))
	for _, id := range managerIDs {
		keys = append(keys, keyPrefix+id)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate hierarchy cache: %w", err)
	}
	return nil
}
