package cache

import (
	"context"
	"sync"
)

// MemoryLabelCache process 內的地名快取，重啟即清空
type MemoryLabelCache struct {
	mu     sync.RWMutex
	labels map[string]string
}

func NewMemoryLabelCache() *MemoryLabelCache {
	return &MemoryLabelCache{labels: make(map[string]string)}
}

func (c *MemoryLabelCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	label, ok := c.labels[key]
	return label, ok, nil
}

func (c *MemoryLabelCache) Set(_ context.Context, key, label string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.labels[key] = label
	return nil
}

func (c *MemoryLabelCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.labels)
}
