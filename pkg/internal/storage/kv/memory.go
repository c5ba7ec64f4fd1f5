package kv

import (
	"context"
	"sync"
	"time"

	"github.com/yeisme/tunevault/pkg/configs"
)

// memoryEntry 内存条目，expiresAt 为零值表示不过期.
type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryKV 基于 sync.Map 的内存 KV 实现，按条目惰性过期.
type MemoryKV struct {
	data sync.Map
}

// NewMemoryKV 创建内存 KV 实例.
func NewMemoryKV(_ context.Context, _ *configs.KVConfig) (KVStore, error) {
	return &MemoryKV{}, nil
}

// Get 获取键的值；过期条目视为不存在并顺带清理.
func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	raw, exists := m.data.Load(key)
	if !exists {
		return nil, ErrNotFound
	}

	entry, ok := raw.(memoryEntry)
	if !ok {
		return nil, ErrNotFound
	}

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.data.Delete(key)
		return nil, ErrNotFound
	}

	// 返回副本
	result := make([]byte, len(entry.value))
	copy(result, entry.value)

	return result, nil
}

// Set 设置键的值.
func (m *MemoryKV) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	data := make([]byte, len(value))
	copy(data, value)

	entry := memoryEntry{value: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	m.data.Store(key, entry)

	return nil
}

// Delete 删除键.
func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.data.Delete(key)
	return nil
}

// Exists 检查键是否存在.
func (m *MemoryKV) Exists(ctx context.Context, key string) (bool, error) {
	if _, err := m.Get(ctx, key); err != nil {
		return false, nil
	}

	return true, nil
}

// Close 关闭存储（内存实现无需操作）.
func (m *MemoryKV) Close() error {
	return nil
}

func init() {
	RegisterKVFactory(configs.KVTypeMemory, NewMemoryKV)
}
