// Package progress persists in-progress survey state in a key-value store.
package progress

import (
	"context"
	"sync"
)

// KV is a string key-value store. Get reports whether the key exists.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// MemoryKV is a KV held in process memory. The zero value is ready to use.
type MemoryKV struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: make(map[string]string)}
}

func (kv *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	v, ok := kv.m[key]
	return v, ok, nil
}

func (kv *MemoryKV) Set(_ context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if kv.m == nil {
		kv.m = make(map[string]string)
	}
	kv.m[key] = value
	return nil
}

func (kv *MemoryKV) Delete(_ context.Context, keys ...string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	for _, k := range keys {
		delete(kv.m, k)
	}
	return nil
}
