// Package router 管理路由配置，将媒体资源相关的路径绑定到处理器.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/internal/handle"
)

// RegisterMediaRoutes 注册媒体资源相关路由.
// 路径与参数形状沿用既有前端契约，挂在上层的 /api 组下.
func RegisterMediaRoutes(g *gin.RouterGroup) {
	// 枚举
	g.GET("/get-user-projects", handle.GetUserProjects)
	g.GET("/get-audio", handle.GetAudio)
	g.GET("/get-images", handle.GetImages)
	g.GET("/get-all-tags", handle.GetAllTags)

	// 上传
	g.POST("/upload-audio", handle.UploadAudio)
	g.POST("/upload-image", handle.UploadImage)

	// 删除
	g.DELETE("/delete-resource/:resourceType/:id", handle.DeleteResource)

	// 标签维护
	g.POST("/update-tags/:collection", handle.UpdateTags)
	g.DELETE("/delete-tag/:publicId/:tags/:collection", handle.DeleteTag)

	// 调度任务可视化
	g.GET("/scheduler/jobs", handle.SchedulerJobs)
}
