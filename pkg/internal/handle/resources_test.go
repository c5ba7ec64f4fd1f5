package handle_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/yeisme/tunevault/pkg/internal/handle"
	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/storage"
	"github.com/yeisme/tunevault/pkg/internal/storage/db"
	"github.com/yeisme/tunevault/pkg/internal/types"
	"github.com/yeisme/tunevault/pkg/middleware"
)

// newListEngine 构造带内存关联库的测试引擎，只注入数据库客户端.
func newListEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}

	for _, k := range model.Kinds() {
		if err := gdb.Table(k.Collection()).AutoMigrate(&model.Association{}); err != nil {
			t.Fatalf("migrate %s table: %v", k.Collection(), err)
		}
	}

	manager := &storage.Manager{DB: &db.Client{DB: gdb}}

	e := gin.New()
	e.Use(middleware.StorageMiddleware(manager))
	e.GET("/api/get-audio", handle.GetAudio)
	e.GET("/api/get-images", handle.GetImages)

	return e
}

// TestListResourcesSentinel 零条记录返回 200 哨兵消息，不是错误.
func TestListResourcesSentinel(t *testing.T) {
	e := newListEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/get-audio?project=demo", nil)
	req.Header.Set("X-Auth-Request-Email", "ann@example.com")

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp types.MessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Message != types.NoResourcesMessage {
		t.Errorf("message mismatch: got %q, want %q", resp.Message, types.NoResourcesMessage)
	}
}

// TestListResourcesMissingProject 缺少 project 参数返回 400.
func TestListResourcesMissingProject(t *testing.T) {
	e := newListEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/get-images", nil)
	req.Header.Set("X-Auth-Request-Email", "ann@example.com")

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// TestListResourcesMissingOwner 无法解析 owner 时返回 400.
func TestListResourcesMissingOwner(t *testing.T) {
	e := newListEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/get-audio?project=demo", nil)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
