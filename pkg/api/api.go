// Package api 将HTTP接口组挂载到 gin 引擎.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/internal/router"
)

// RegisterGroup 注册媒体资源与健康检查相关的路由组到传入的 gin 引擎.
func RegisterGroup(e *gin.Engine) *gin.Engine {
	apiGroup := e.Group("/api")

	router.RegisterMediaRoutes(apiGroup)
	router.RegisterHealthCheckRoute(apiGroup)

	return e
}
