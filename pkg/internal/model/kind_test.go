package model_test

import (
	"testing"

	"github.com/yeisme/tunevault/pkg/internal/model"
)

// TestKindFromCollection 测试集合名到资源种类的解析.
func TestKindFromCollection(t *testing.T) {
	if k := model.KindFromCollection("users"); k != model.KindAudio {
		t.Errorf("expected audio kind for users collection, got %s", k)
	}

	if k := model.KindFromCollection("sheets"); k != model.KindImage {
		t.Errorf("expected image kind for sheets collection, got %s", k)
	}

	// 未知集合名按图片处理，与历史行为一致
	if k := model.KindFromCollection("whatever"); k != model.KindImage {
		t.Errorf("expected image kind for unknown collection, got %s", k)
	}
}

// TestKindFromStoreType 测试媒体库资源类型到种类的解析.
func TestKindFromStoreType(t *testing.T) {
	if k := model.KindFromStoreType("video"); k != model.KindAudio {
		t.Errorf("expected audio kind for video store type, got %s", k)
	}

	if k := model.KindFromStoreType("image"); k != model.KindImage {
		t.Errorf("expected image kind for image store type, got %s", k)
	}

	if k := model.KindFromStoreType("raw"); k != model.KindImage {
		t.Errorf("expected image fallback for unknown store type, got %s", k)
	}
}

// TestKindAccessors 测试种类携带的集合名与存储前缀.
func TestKindAccessors(t *testing.T) {
	if model.KindAudio.Collection() != "users" {
		t.Errorf("unexpected audio collection: %s", model.KindAudio.Collection())
	}

	if model.KindAudio.StoreType() != "video" {
		t.Errorf("unexpected audio store type: %s", model.KindAudio.StoreType())
	}

	if model.KindImage.Collection() != "sheets" {
		t.Errorf("unexpected image collection: %s", model.KindImage.Collection())
	}

	if len(model.Kinds()) != 2 {
		t.Errorf("expected 2 kinds, got %d", len(model.Kinds()))
	}
}
