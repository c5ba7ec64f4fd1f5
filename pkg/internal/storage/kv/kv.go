// Package kv 提供用于枚举结果缓存的键值存储接口和实现.
package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yeisme/tunevault/pkg/configs"
)

// ErrNotFound 键不存在（或已过期）.
var ErrNotFound = errors.New("key not found")

// Client 键值存储客户端.
type Client struct {
	KVStore

	cfg configs.KVConfig
}

// KVStore 定义键值存储接口.
type KVStore interface {
	// Get 获取键的值；键不存在时返回 ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set 设置键的值，ttl<=0 表示不过期.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete 删除键.
	Delete(ctx context.Context, key string) error
	// Exists 检查键是否存在.
	Exists(ctx context.Context, key string) (bool, error)
	// Close 关闭存储连接.
	Close() error
}

// KVFactory 定义创建 KVStore 的工厂函数类型.
type KVFactory func(ctx context.Context, cfg *configs.KVConfig) (KVStore, error)

var kvFactories = make(map[configs.KVType]KVFactory)

// RegisterKVFactory 注册 KV 工厂函数.
func RegisterKVFactory(kvType configs.KVType, factory KVFactory) {
	kvFactories[kvType] = factory
}

// GetRegisteredKVTypes 返回已注册的 KV 类型列表.
func GetRegisteredKVTypes() []configs.KVType {
	types := make([]configs.KVType, 0, len(kvFactories))
	for kvType := range kvFactories {
		types = append(types, kvType)
	}

	return types
}

// New 根据配置创建 KV 客户端.
func New(ctx context.Context, cfg *configs.KVConfig) (*Client, error) {
	factory, exists := kvFactories[cfg.Type]
	if !exists {
		return nil, fmt.Errorf("unsupported kv type: %s (registered: %v)", cfg.Type, GetRegisteredKVTypes())
	}

	store, err := factory(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kv store (%s): %w", cfg.Type, err)
	}

	return &Client{KVStore: store, cfg: *cfg}, nil
}

// TTL 返回配置的缓存有效期.
func (c *Client) TTL() time.Duration {
	return time.Duration(c.cfg.TTLSeconds) * time.Second
}
