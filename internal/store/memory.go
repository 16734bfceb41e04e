package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryCollection is an in-process Collection for tests and throwaway runs.
type MemoryCollection struct {
	mu   sync.RWMutex
	docs []json.RawMessage
}

// NewMemoryCollection returns an empty collection.
func NewMemoryCollection() *MemoryCollection {
	return &MemoryCollection{}
}

// EnsureExists is a no-op; the collection always exists.
func (c *MemoryCollection) EnsureExists(ctx context.Context) error {
	return ctx.Err()
}

// ReadAll returns copies of the stored documents.
func (c *MemoryCollection) ReadAll(ctx context.Context) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]json.RawMessage, len(c.docs))
	for i, doc := range c.docs {
		out[i] = append(json.RawMessage(nil), doc...)
	}
	return out, nil
}

// Append stores a copy of doc.
func (c *MemoryCollection) Append(ctx context.Context, _ string, doc json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, append(json.RawMessage(nil), doc...))
	return nil
}
