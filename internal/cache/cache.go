// Package cache provides the response cache for tool invocations. The engines
// are pure functions, so a cached response for identical arguments is always
// valid.
package cache

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Cache stores serialized tool responses keyed by tool name and arguments.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Memory is a process-local cache. It is the default when no Redis address is
// configured.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.entries[key]
	return val, ok
}

func (m *Memory) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

// Redis caches responses in a shared Redis instance so multiple replicas see
// the same entries.
type Redis struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedis(addr string) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Redis{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *Redis) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *Redis) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}
