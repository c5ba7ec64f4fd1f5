package handle

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/service"
	"github.com/yeisme/tunevault/pkg/internal/types"
	"github.com/yeisme/tunevault/pkg/log"
	"github.com/yeisme/tunevault/pkg/rule"
)

// UpdateTags 处理 POST /api/update-tags/:collection：向资源追加标签.
// :collection 是关联集合名（users/sheets），据此推导媒体库资源类型.
func UpdateTags(c *gin.Context) {
	tagLog := log.Logger()

	var req types.UpdateTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		tagLog.Warn().Err(err).Msg("invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		tagLog.Warn().Err(err).Msg("invalid tag update request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	kind := model.KindFromCollection(c.Param("collection"))
	svc := service.NewResourceService(c.Request.Context())

	if _, err := svc.AddTags(c.Request.Context(), kind, req.PublicID, req.Tags); err != nil {
		tagLog.Error().Err(err).Str("public_id", req.PublicID).Msg("tag add failed")
		c.JSON(http.StatusInternalServerError, types.MessageResponse{Message: "Error updating tags"})

		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "Success"})
}

// DeleteTag 处理 DELETE /api/delete-tag/:publicId/:tags/:collection.
// :tags 允许逗号分隔的多个标签，全部按精确匹配删除.
func DeleteTag(c *gin.Context) {
	tagLog := log.Logger()

	publicID := c.Param("publicId")
	rawTags := c.Param("tags")

	if publicID == "" || rawTags == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing public id or tags"})
		return
	}

	tags := make([]string, 0)

	for _, t := range strings.Split(rawTags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	if len(tags) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing tags"})
		return
	}

	kind := model.KindFromCollection(c.Param("collection"))
	svc := service.NewResourceService(c.Request.Context())

	if _, err := svc.RemoveTags(c.Request.Context(), kind, publicID, tags); err != nil {
		tagLog.Error().Err(err).Str("public_id", publicID).Msg("tag remove failed")
		c.JSON(http.StatusInternalServerError, types.MessageResponse{Message: "Error deleting tags"})

		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "Success"})
}
