package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/service"
	"github.com/yeisme/tunevault/pkg/internal/types"
	"github.com/yeisme/tunevault/pkg/log"
)

// DeleteResource 处理 DELETE /api/delete-resource/:resourceType/:id.
// resourceType 是媒体库的资源类型（video/image），按它选定关联集合.
func DeleteResource(c *gin.Context) {
	delLog := log.Logger()

	resourceType := c.Param("resourceType")
	id := c.Param("id")

	if resourceType == "" || id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing resource type or id"})
		return
	}

	kind := model.KindFromStoreType(resourceType)
	svc := service.NewResourceService(c.Request.Context())

	if err := svc.DeleteResource(c.Request.Context(), kind, id); err != nil {
		delLog.Error().Err(err).
			Str("resource_type", resourceType).
			Str("public_id", id).
			Msg("delete failed")
		c.JSON(http.StatusInternalServerError, types.MessageResponse{Message: "Error deleting resources"})

		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "Success"})
}
