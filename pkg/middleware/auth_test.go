package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/configs"
	"github.com/yeisme/tunevault/pkg/middleware"
)

// newAuthEngine 构造挂载认证中间件的测试引擎.
func newAuthEngine(conf configs.AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	e := gin.New()
	e.Use(middleware.AuthMiddleware(conf))
	e.GET("/api/get-audio", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	e.GET("/api/health/db", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return e
}

// doRequest 发起测试请求并返回状态码.
func doRequest(e *gin.Engine, path string, headers map[string]string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	return w.Code
}

// TestAuthMissingIdentity 开启认证且无身份头时拒绝请求.
func TestAuthMissingIdentity(t *testing.T) {
	e := newAuthEngine(configs.AuthConfig{Enabled: true})

	if code := doRequest(e, "/api/get-audio", nil); code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", code)
	}
}

// TestAuthProxyHeaders 任一认证代理请求头都能通过校验.
func TestAuthProxyHeaders(t *testing.T) {
	e := newAuthEngine(configs.AuthConfig{Enabled: true})

	headers := []string{"X-Auth-Request-Email", "X-Forwarded-Email"}
	for _, h := range headers {
		code := doRequest(e, "/api/get-audio", map[string]string{h: "ann@example.com"})
		if code != http.StatusOK {
			t.Errorf("header %s: expected 200, got %d", h, code)
		}
	}
}

// TestAuthSkipPaths 配置的路径前缀跳过认证.
func TestAuthSkipPaths(t *testing.T) {
	e := newAuthEngine(configs.AuthConfig{
		Enabled:   true,
		SkipPaths: []string{"/api/health"},
	})

	if code := doRequest(e, "/api/health/db", nil); code != http.StatusOK {
		t.Errorf("expected skip path to pass, got %d", code)
	}

	if code := doRequest(e, "/api/get-audio", nil); code != http.StatusUnauthorized {
		t.Errorf("expected 401 outside skip path, got %d", code)
	}
}

// TestAuthDevAllowQuery 开发模式允许用 query user 兜底.
func TestAuthDevAllowQuery(t *testing.T) {
	e := newAuthEngine(configs.AuthConfig{Enabled: true, DevAllowQuery: true})

	if code := doRequest(e, "/api/get-audio?user=ann@example.com", nil); code != http.StatusOK {
		t.Errorf("expected 200 with query user, got %d", code)
	}

	if code := doRequest(e, "/api/get-audio", nil); code != http.StatusUnauthorized {
		t.Errorf("expected 401 without query user, got %d", code)
	}
}

// TestAuthDisabled 关闭认证时全部放行.
func TestAuthDisabled(t *testing.T) {
	e := newAuthEngine(configs.AuthConfig{Enabled: false})

	if code := doRequest(e, "/api/get-audio", nil); code != http.StatusOK {
		t.Errorf("expected 200 when auth disabled, got %d", code)
	}
}
