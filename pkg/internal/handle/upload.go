package handle

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/tunevault/pkg/internal/service"
	"github.com/yeisme/tunevault/pkg/internal/types"
	"github.com/yeisme/tunevault/pkg/log"
	"github.com/yeisme/tunevault/pkg/rule"
)

const (
	// MaxUploadSize 单个上传文件的大小上限.
	MaxUploadSize = 100 * 1024 * 1024 // 100MB

	defaultAudioContentType = "audio/webm"
)

// UploadAudio 处理 POST /api/upload-audio：multipart 字段 audio + tags/user/project.
// 音频经暂存文件走文件路径上传接口，暂存文件在所有路径上清理.
func UploadAudio(c *gin.Context) {
	upLog := log.Logger()

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		upLog.Warn().Err(err).Msg("missing audio file")
		c.JSON(http.StatusBadRequest, types.UploadAudioResponse{Success: false, Message: "missing audio file"})

		return
	}

	if fileHeader.Size > MaxUploadSize {
		c.JSON(http.StatusBadRequest, types.UploadAudioResponse{Success: false, Message: "file too large"})
		return
	}

	owner, project, rawTags, ok := uploadForm(c)
	if !ok {
		return
	}

	tmp, err := os.CreateTemp("", "tunevault-audio-*"+filepath.Ext(fileHeader.Filename))
	if err != nil {
		upLog.Error().Err(err).Msg("create scratch file failed")
		c.JSON(http.StatusInternalServerError, types.UploadAudioResponse{Success: false, Message: "Internal server error"})

		return
	}

	tmpPath := tmp.Name()
	tmp.Close()

	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		upLog.Error().Err(err).Msg("save scratch file failed")
		c.JSON(http.StatusInternalServerError, types.UploadAudioResponse{Success: false, Message: "Internal server error"})

		return
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			upLog.Warn().Err(err).Str("path", tmpPath).Msg("scratch file cleanup failed")
		}
	}()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultAudioContentType
	}

	svc := service.NewResourceService(c.Request.Context())

	if _, err := svc.UploadAudioFile(c.Request.Context(), tmpPath, contentType, rawTags, owner, project); err != nil {
		upLog.Error().Err(err).Msg("audio upload failed")
		c.JSON(http.StatusInternalServerError, types.UploadAudioResponse{Success: false, Message: "Internal server error"})

		return
	}

	c.JSON(http.StatusOK, types.UploadAudioResponse{Success: true, Message: "Audio uploaded successfully"})
}

// UploadImage 处理 POST /api/upload-image：multipart 字段 image + tags/user/project.
// 图片直接从内存流上传，响应保留历史契约中两侧存储的结果字段.
func UploadImage(c *gin.Context) {
	upLog := log.Logger()

	fileHeader, err := c.FormFile("image")
	if err != nil {
		upLog.Warn().Err(err).Msg("missing image file")
		c.JSON(http.StatusBadRequest, types.UploadImageResponse{Success: false, Message: "missing image file"})

		return
	}

	if fileHeader.Size > MaxUploadSize {
		c.JSON(http.StatusBadRequest, types.UploadImageResponse{Success: false, Message: "file too large"})
		return
	}

	owner, project, rawTags, ok := uploadForm(c)
	if !ok {
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		upLog.Error().Err(err).Msg("open uploaded file failed")
		c.JSON(http.StatusInternalServerError, types.UploadImageResponse{Success: false, Message: "Internal server error"})

		return
	}
	defer f.Close()

	svc := service.NewResourceService(c.Request.Context())

	result, err := svc.UploadImage(c.Request.Context(), f, fileHeader.Size,
		fileHeader.Header.Get("Content-Type"), rawTags, owner, project, fileHeader.Filename)
	if err != nil {
		upLog.Error().Err(err).Msg("image upload failed")
		c.JSON(http.StatusInternalServerError, types.UploadImageResponse{Success: false, Message: "Internal server error"})

		return
	}

	c.JSON(http.StatusOK, types.UploadImageResponse{
		Success:     true,
		Message:     "Image uploaded successfully",
		StoreResult: result.Store,
		DBResult:    result.Row,
	})
}

// uploadForm 校验上传共用的表单字段，失败时已写出响应.
func uploadForm(c *gin.Context) (owner, project, rawTags string, ok bool) {
	upLog := log.Logger()

	owner, err := resolveOwner(c)
	if err != nil {
		upLog.Warn().Err(err).Msg("missing or invalid user")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})

		return "", "", "", false
	}

	project = c.PostForm("project")
	if err := rule.ValidateVar(project, "required,max=255"); err != nil {
		upLog.Warn().Err(err).Msg("missing or invalid project")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing project"})

		return "", "", "", false
	}

	return owner, project, c.PostForm("tags"), true
}
