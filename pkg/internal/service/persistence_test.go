package service

import (
	"reflect"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/yeisme/tunevault/pkg/internal/model"
)

// newTestDB 建立内存 sqlite 并迁移两张集合表.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}

	for _, k := range model.Kinds() {
		if err := gdb.Table(k.Collection()).AutoMigrate(&model.Association{}); err != nil {
			t.Fatalf("migrate %s table: %v", k.Collection(), err)
		}
	}

	return gdb
}

// mustInsert 写入一条关联记录.
func mustInsert(t *testing.T, gdb *gorm.DB, kind model.Kind, publicID, owner, project string, tags []string) {
	t.Helper()

	row := &model.Association{
		PublicID:     publicID,
		Owner:        owner,
		Project:      project,
		ResourceType: kind.StoreType(),
	}
	if err := row.SetTags(tags); err != nil {
		t.Fatalf("set tags: %v", err)
	}

	if err := insertAssociation(gdb, kind, row); err != nil {
		t.Fatalf("insert association: %v", err)
	}
}

// TestListAssociationIDs 测试按 (owner, project) 过滤并保持入库顺序.
func TestListAssociationIDs(t *testing.T) {
	gdb := newTestDB(t)

	mustInsert(t, gdb, model.KindAudio, "clip-1", "ann@example.com", "demo", nil)
	mustInsert(t, gdb, model.KindAudio, "clip-2", "ann@example.com", "demo", nil)
	mustInsert(t, gdb, model.KindAudio, "clip-3", "ann@example.com", "other", nil)
	mustInsert(t, gdb, model.KindImage, "sheet-1", "ann@example.com", "demo", nil)

	ids, err := listAssociationIDs(gdb, model.KindAudio, "ann@example.com", "demo")
	if err != nil {
		t.Fatalf("list ids: %v", err)
	}

	want := []string{"clip-1", "clip-2"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids mismatch: got %v, want %v", ids, want)
	}

	// 空组合返回空列表而不是错误
	empty, err := listAssociationIDs(gdb, model.KindAudio, "ann@example.com", "missing")
	if err != nil {
		t.Fatalf("list empty project: %v", err)
	}

	if len(empty) != 0 {
		t.Errorf("expected no ids, got %v", empty)
	}
}

// TestAddAssociationTagsIdempotent 重复追加同一标签只保留一份.
func TestAddAssociationTagsIdempotent(t *testing.T) {
	gdb := newTestDB(t)
	mustInsert(t, gdb, model.KindAudio, "clip-1", "ann@example.com", "demo", []string{"riff"})

	if _, err := addAssociationTags(gdb, model.KindAudio, "clip-1", []string{"slow"}); err != nil {
		t.Fatalf("first add: %v", err)
	}

	merged, err := addAssociationTags(gdb, model.KindAudio, "clip-1", []string{"slow"})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	want := []string{"riff", "slow"}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("expected idempotent tag add, got %v, want %v", merged, want)
	}
}

// TestAddAssociationTagsMissingRow 记录缺失时返回 nil 集合且不报错.
func TestAddAssociationTagsMissingRow(t *testing.T) {
	gdb := newTestDB(t)

	merged, err := addAssociationTags(gdb, model.KindAudio, "ghost", []string{"x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if merged != nil {
		t.Errorf("expected nil tags for missing row, got %v", merged)
	}
}

// TestRemoveAssociationTags 删除精确匹配的标签，缺失标签按无操作处理.
func TestRemoveAssociationTags(t *testing.T) {
	gdb := newTestDB(t)
	mustInsert(t, gdb, model.KindImage, "sheet-1", "ann@example.com", "demo", []string{"verse", "chorus"})

	remaining, err := removeAssociationTags(gdb, model.KindImage, "sheet-1", []string{"absent"})
	if err != nil {
		t.Fatalf("remove absent tag: %v", err)
	}

	if !reflect.DeepEqual(remaining, []string{"verse", "chorus"}) {
		t.Errorf("expected unchanged tags, got %v", remaining)
	}

	remaining, err = removeAssociationTags(gdb, model.KindImage, "sheet-1", []string{"verse"})
	if err != nil {
		t.Fatalf("remove existing tag: %v", err)
	}

	if !reflect.DeepEqual(remaining, []string{"chorus"}) {
		t.Errorf("expected verse removed, got %v", remaining)
	}
}

// TestDeleteAssociation 删除返回影响行数，重复删除是无操作.
func TestDeleteAssociation(t *testing.T) {
	gdb := newTestDB(t)
	mustInsert(t, gdb, model.KindAudio, "clip-1", "ann@example.com", "demo", nil)

	n, err := deleteAssociation(gdb, model.KindAudio, "clip-1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}

	if n != 1 {
		t.Errorf("expected 1 row deleted, got %d", n)
	}

	n, err = deleteAssociation(gdb, model.KindAudio, "clip-1")
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}

	if n != 0 {
		t.Errorf("expected no-op on second delete, got %d rows", n)
	}

	ids, err := listAssociationIDs(gdb, model.KindAudio, "ann@example.com", "demo")
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}

	if len(ids) != 0 {
		t.Errorf("expected id absent after delete, got %v", ids)
	}
}
