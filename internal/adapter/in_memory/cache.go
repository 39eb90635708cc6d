package in_memory

import (
	"context"
	"sync"

	"github.com/olyamironova/matching-core/internal/domain"
	"github.com/olyamironova/matching-core/internal/port"
)

var _ port.DepthCache = (*Cache)(nil)

type Cache struct {
	mu    sync.Mutex
	store map[string]*domain.Depth
}

func NewCache() *Cache {
	return &Cache{store: make(map[string]*domain.Depth)}
}

func (c *Cache) SetDepth(ctx context.Context, instrument string, d *domain.Depth) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copyDepth := *d
	c.store[instrument] = &copyDepth
	return nil
}

func (c *Cache) GetDepth(ctx context.Context, instrument string) (*domain.Depth, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.store[instrument]
	if !ok {
		return nil, nil
	}
	copyDepth := *d
	return &copyDepth, nil
}

func (c *Cache) Invalidate(ctx context.Context, instrument string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, instrument)
	return nil
}
