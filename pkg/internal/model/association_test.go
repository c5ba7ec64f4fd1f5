package model_test

import (
	"reflect"
	"testing"

	"github.com/yeisme/tunevault/pkg/internal/model"
)

// TestTagsRoundTrip 测试标签集合的编码与解码.
func TestTagsRoundTrip(t *testing.T) {
	var a model.Association

	if err := a.SetTags([]string{"riff", "demo", "slow"}); err != nil {
		t.Fatalf("set tags: %v", err)
	}

	got := a.Tags()
	want := []string{"riff", "demo", "slow"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags round trip mismatch: got %v, want %v", got, want)
	}
}

// TestTagsInvalidJSON 测试非法存量数据返回空集合而不是报错.
func TestTagsInvalidJSON(t *testing.T) {
	a := model.Association{TagsJSON: "not-json"}

	if got := a.Tags(); len(got) != 0 {
		t.Errorf("expected empty tags for invalid json, got %v", got)
	}

	empty := model.Association{}
	if got := empty.Tags(); len(got) != 0 {
		t.Errorf("expected empty tags for empty column, got %v", got)
	}
}

// TestDedupTags 测试去重保持首次出现顺序并过滤空串.
func TestDedupTags(t *testing.T) {
	got := model.DedupTags([]string{"a", "b", "a", "", "c", "b"})
	want := []string{"a", "b", "c"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("dedup mismatch: got %v, want %v", got, want)
	}
}

// TestSetTagsDedup 测试 SetTags 本身就做去重.
func TestSetTagsDedup(t *testing.T) {
	var a model.Association

	if err := a.SetTags([]string{"x", "x", "y"}); err != nil {
		t.Fatalf("set tags: %v", err)
	}

	got := a.Tags()
	want := []string{"x", "y"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected deduplicated tags, got %v, want %v", got, want)
	}
}
