// Package cache stores generated FAQ answers so repeated questions skip the
// completion service.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// AnswerCache is a keyed store of answers.
type AnswerCache interface {
	Get(ctx context.Context, question string) (string, bool, error)
	Set(ctx context.Context, question, answer string) error
}

// Key normalizes a question into a cache key. Case and surrounding or
// repeated whitespace are ignored.
func Key(question string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(question)), " ")
	sum := sha256.Sum256([]byte(normalized))
	return "faq:answer:" + hex.EncodeToString(sum[:])
}

// RedisAnswerCache keeps answers in Redis with a TTL.
type RedisAnswerCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAnswerCache wraps client. A zero ttl keeps entries forever.
func NewRedisAnswerCache(client *redis.Client, ttl time.Duration) *RedisAnswerCache {
	return &RedisAnswerCache{client: client, ttl: ttl}
}

// Get returns the cached answer, if any.
func (c *RedisAnswerCache) Get(ctx context.Context, question string) (string, bool, error) {
	val, err := c.client.Get(ctx, Key(question)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores answer under question.
func (c *RedisAnswerCache) Set(ctx context.Context, question, answer string) error {
	return c.client.Set(ctx, Key(question), answer, c.ttl).Err()
}

type memoryEntry struct {
	answer  string
	expires time.Time
}

// MemoryAnswerCache is a process-local AnswerCache used when Redis is not
// configured.
type MemoryAnswerCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemoryAnswerCache returns an empty cache. A zero ttl keeps entries forever.
func NewMemoryAnswerCache(ttl time.Duration) *MemoryAnswerCache {
	return &MemoryAnswerCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

// Get returns the cached answer, if present and not expired.
func (c *MemoryAnswerCache) Get(_ context.Context, question string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key(question)
	entry, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}
	if !entry.expires.IsZero() && c.now().After(entry.expires) {
		delete(c.entries, key)
		return "", false, nil
	}
	return entry.answer, true, nil
}

// Set stores answer under question.
func (c *MemoryAnswerCache) Set(_ context.Context, question, answer string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := memoryEntry{answer: answer}
	if c.ttl > 0 {
		entry.expires = c.now().Add(c.ttl)
	}
	c.entries[Key(question)] = entry
	return nil
}
