package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
)

const (
	listKey    = "portfolio:projects:list" // normalized project list, JSON encoded
	genKey     = "portfolio:projects:gen"  // bumped by every write
	defaultTTL = 5 * time.Minute
)

// ListCache keeps the normalized public project list in Redis.
// Every write to the collection must call Invalidate. A fill only lands
// when no Invalidate happened since the caller read Generation.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache creates a ListCache. A non-positive ttl falls back to five minutes.
func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &ListCache{client: client, ttl: ttl}
}

// Get returns the cached list and whether it was present.
func (c *ListCache) Get(ctx context.Context) ([]domain.Project, bool, error) {
	data, err := c.client.Get(ctx, listKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached projects: %w", err)
	}

	var items []domain.Project
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached projects: %w", err)
	}
	return items, true, nil
}

// Generation returns the current write generation; read it before loading
// the list from the store.
func (c *ListCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, genKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read cache generation: %w", err)
	}
	return gen, nil
}

// Set stores items if the generation is still gen. It reports whether the
// list was stored; a concurrent write makes it a no-op.
func (c *ListCache) Set(ctx context.Context, gen int64, items []domain.Project) (bool, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return false, fmt.Errorf("failed to marshal projects: %w", err)
	}

	stored := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if cur != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, listKey, data, c.ttl)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, genKey)
	if err == redis.TxFailedErr {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to cache projects: %w", err)
	}
	return stored, nil
}

// Invalidate drops the cached list and bumps the generation so that fills
// started before this write are discarded.
func (c *ListCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Del(ctx, listKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate cached projects: %w", err)
	}
	return nil
}

func (c *ListCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
