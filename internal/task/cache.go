package task

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rmoura/agenda-api/internal/models"
)

// listTTL bounds how stale a cached task list may get; every mutation also
// invalidates the owner's entry eagerly.
const listTTL = time.Minute

// Cache keeps rendered per-owner task lists in Redis.
type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// GetList returns the cached list for an owner, or ok=false on a miss. A
// Redis failure is treated as a miss; the store stays authoritative.
func (c *Cache) GetList(ctx context.Context, userID string) ([]models.TaskView, bool) {
	raw, err := c.rdb.Get(ctx, "tarefas:"+userID).Bytes()
	if err != nil {
		return nil, false
	}
	var views []models.TaskView
	if err := json.Unmarshal(raw, &views); err != nil {
		return nil, false
	}
	return views, true
}

// SetList stores the rendered list for an owner.
func (c *Cache) SetList(ctx context.Context, userID string, views []models.TaskView) error {
	raw, err := json.Marshal(views)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, "tarefas:"+userID, raw, listTTL).Err()
}

// Invalidate drops the cached list for an owner.
func (c *Cache) Invalidate(ctx context.Context, userID string) error {
	err := c.rdb.Del(ctx, "tarefas:"+userID).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
