package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"estore/internal/model"
)

const itemTTL = 5 * time.Minute

// Client wraps redis.Client but fails safe: a missing or unreachable redis
// behaves like a permanent cache miss, never an error.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

func itemKey(id string) string {
	return fmt.Sprintf("item:%s", id)
}

// GetItem returns a cached store item, or nil on miss or redis failure.
func (c *Client) GetItem(ctx context.Context, id string) *model.StoreItem {
	if c == nil || c.client == nil {
		return nil
	}
	res, err := c.client.Get(ctx, itemKey(id)).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors alike behave as a miss
		return nil
	}
	var item model.StoreItem
	if err := json.Unmarshal(res, &item); err != nil {
		return nil
	}
	return &item
}

// SetItem caches a store item, ignoring redis errors.
func (c *Client) SetItem(ctx context.Context, item *model.StoreItem) {
	if c == nil || c.client == nil || item == nil {
		return
	}
	payload, err := json.Marshal(item)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, itemKey(item.ID.String()), payload, itemTTL).Err()
}

// InvalidateItem drops a cached store item, ignoring redis errors.
func (c *Client) InvalidateItem(ctx context.Context, id string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, itemKey(id)).Err()
}
