package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/service"
	"github.com/yeisme/tunevault/pkg/internal/types"
	"github.com/yeisme/tunevault/pkg/log"
)

// GetAudio 处理 GET /api/get-audio：枚举 (owner, project) 下的音频片段.
func GetAudio(c *gin.Context) {
	listResources(c, model.KindAudio)
}

// GetImages 处理 GET /api/get-images：枚举 (owner, project) 下的乐谱图片.
func GetImages(c *gin.Context) {
	listResources(c, model.KindImage)
}

// listResources 两种资源共用的枚举处理.零条记录渲染为哨兵消息而非错误，
// 前端据此区分"空项目"与真正的失败.
func listResources(c *gin.Context, kind model.Kind) {
	listLog := log.Logger()

	owner, err := resolveOwner(c)
	if err != nil {
		listLog.Warn().Err(err).Msg("missing or invalid user")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})

		return
	}

	project := c.Query("project")
	if project == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing project"})
		return
	}

	svc := service.NewResourceService(c.Request.Context())

	resources := svc.ListResources(c.Request.Context(), kind, owner, project)
	if len(resources) == 0 {
		c.JSON(http.StatusOK, types.MessageResponse{Message: types.NoResourcesMessage})
		return
	}

	c.JSON(http.StatusOK, resources)
}
