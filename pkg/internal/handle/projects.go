package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/internal/service"
	"github.com/yeisme/tunevault/pkg/log"
)

// GetUserProjects 处理 GET /api/get-user-projects：
// 返回全部 owner 各自去重后的项目列表，填充前端项目下拉框.
func GetUserProjects(c *gin.Context) {
	svc := service.NewResourceService(c.Request.Context())

	projects, err := svc.ListUserProjects(c.Request.Context())
	if err != nil {
		log.Logger().Error().Err(err).Msg("project enumeration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching user projects"})

		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetAllTags 处理 GET /api/get-all-tags?user=&project=：
// 返回该 (owner, project) 下两类资源合并去重后的标签列表.
func GetAllTags(c *gin.Context) {
	tagLog := log.Logger()

	owner, err := resolveOwner(c)
	if err != nil {
		tagLog.Warn().Err(err).Msg("missing or invalid user")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})

		return
	}

	project := c.Query("project")
	if project == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing project"})
		return
	}

	svc := service.NewResourceService(c.Request.Context())

	tags, err := svc.ListAllTags(c.Request.Context(), owner, project)
	if err != nil {
		tagLog.Error().Err(err).Msg("tag enumeration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching tags"})

		return
	}

	c.JSON(http.StatusOK, tags)
}
