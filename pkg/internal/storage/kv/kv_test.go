package kv_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yeisme/tunevault/pkg/configs"
	"github.com/yeisme/tunevault/pkg/internal/storage/kv"
)

// newMemoryStore 创建用于测试的内存 KV 实例.
func newMemoryStore(t *testing.T) kv.KVStore {
	t.Helper()

	store, err := kv.NewMemoryKV(context.Background(), &configs.KVConfig{})
	if err != nil {
		t.Fatalf("new memory kv: %v", err)
	}

	return store
}

// TestMemoryKVRoundTrip 测试基本的写入读取往返.
func TestMemoryKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	if err := store.Set(ctx, "k", []byte("value"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if string(got) != "value" {
		t.Errorf("value mismatch: got %q", got)
	}

	exists, err := store.Exists(ctx, "k")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}

	if !exists {
		t.Error("expected key to exist")
	}
}

// TestMemoryKVMissingKey 缺失的键返回 ErrNotFound.
func TestMemoryKVMissingKey(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	if _, err := store.Get(ctx, "absent"); !errors.Is(err, kv.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	exists, err := store.Exists(ctx, "absent")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}

	if exists {
		t.Error("expected key to be absent")
	}
}

// TestMemoryKVDelete 删除后读取返回 ErrNotFound，重复删除是无操作.
func TestMemoryKVDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := store.Get(ctx, "k"); !errors.Is(err, kv.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Errorf("expected no-op second delete, got %v", err)
	}
}

// TestMemoryKVTTL 带 TTL 的条目过期后视为不存在.
func TestMemoryKVTTL(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	if err := store.Set(ctx, "k", []byte("v"), 20*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}

	if _, err := store.Get(ctx, "k"); err != nil {
		t.Fatalf("get before expiry: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	if _, err := store.Get(ctx, "k"); !errors.Is(err, kv.ErrNotFound) {
		t.Errorf("expected expiry, got %v", err)
	}
}

// TestMemoryKVValueCopy 返回的是副本，修改不影响存储内部状态.
func TestMemoryKVValueCopy(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	original := []byte("value")
	if err := store.Set(ctx, "k", original, 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	original[0] = 'X'

	first, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	first[0] = 'Y'

	second, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if string(second) != "value" {
		t.Errorf("stored value mutated: got %q", second)
	}
}
