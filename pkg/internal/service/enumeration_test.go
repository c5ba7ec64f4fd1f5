package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/storage/db"
	"github.com/yeisme/tunevault/pkg/internal/types"
)

// TestListUserProjects 项目枚举跨两张集合表聚合，ID 是按名称排序后的序号.
func TestListUserProjects(t *testing.T) {
	gdb := newTestDB(t)
	svc := &ResourceService{dbClient: &db.Client{DB: gdb}}

	mustInsert(t, gdb, model.KindAudio, "clip-1", "ann@example.com", "beta", nil)
	mustInsert(t, gdb, model.KindAudio, "clip-2", "ann@example.com", "beta", nil)
	// 只有图片的项目同样要出现在枚举结果里
	mustInsert(t, gdb, model.KindImage, "sheet-1", "ann@example.com", "alpha", nil)
	mustInsert(t, gdb, model.KindImage, "sheet-2", "bob@example.com", "solo", nil)

	projects, err := svc.ListUserProjects(context.Background())
	if err != nil {
		t.Fatalf("list user projects: %v", err)
	}

	want := types.UserProjects{
		"ann@example.com": {
			{ID: 1, Name: "alpha"},
			{ID: 2, Name: "beta"},
		},
		"bob@example.com": {
			{ID: 1, Name: "solo"},
		},
	}
	if !reflect.DeepEqual(projects, want) {
		t.Errorf("projects mismatch: got %v, want %v", projects, want)
	}
}

// TestListAllTags 标签枚举取两张集合表的去重并集并排序.
func TestListAllTags(t *testing.T) {
	gdb := newTestDB(t)
	svc := &ResourceService{dbClient: &db.Client{DB: gdb}}

	mustInsert(t, gdb, model.KindAudio, "clip-1", "ann@example.com", "demo", []string{"riff", "slow"})
	mustInsert(t, gdb, model.KindImage, "sheet-1", "ann@example.com", "demo", []string{"slow", "verse"})
	mustInsert(t, gdb, model.KindAudio, "clip-2", "ann@example.com", "other", []string{"hidden"})

	tags, err := svc.ListAllTags(context.Background(), "ann@example.com", "demo")
	if err != nil {
		t.Fatalf("list all tags: %v", err)
	}

	want := []string{"riff", "slow", "verse"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags mismatch: got %v, want %v", tags, want)
	}
}

// TestListAllTagsEmpty 没有记录时返回空列表而不是错误.
func TestListAllTagsEmpty(t *testing.T) {
	gdb := newTestDB(t)
	svc := &ResourceService{dbClient: &db.Client{DB: gdb}}

	tags, err := svc.ListAllTags(context.Background(), "ann@example.com", "missing")
	if err != nil {
		t.Fatalf("list all tags: %v", err)
	}

	if len(tags) != 0 {
		t.Errorf("expected no tags, got %v", tags)
	}
}
