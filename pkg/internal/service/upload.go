package service

import (
	"context"
	"io"
	"strings"

	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/storage/media"
	nlog "github.com/yeisme/tunevault/pkg/log"
	"github.com/yeisme/tunevault/pkg/metrics"
	"github.com/yeisme/tunevault/pkg/queue"
)

// UploadResult 上传完成后两侧存储各自的记录.
type UploadResult struct {
	Store *media.Resource
	Row   *model.Association
}

// parseTagList 逗号分隔的标签原文 → 去重后的标签集合.
func parseTagList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}

	return model.DedupTags(out)
}

// UploadAudioFile 从暂存文件上传一段音频并写入关联记录.
//
// 媒体库写入优先；关联记录写入失败不回滚已上传对象（允许孤儿，
// 对账任务负责清理），但仍向调用方返回错误.
func (s *ResourceService) UploadAudioFile(ctx context.Context, path, contentType, rawTags, owner, project string) (*UploadResult, error) {
	return s.upload(ctx, model.KindAudio, func(tags []string) (*media.Resource, error) {
		return s.mediaClient.UploadFile(ctx, model.KindAudio, path, contentType, tags, owner, project)
	}, rawTags, owner, project, "")
}

// UploadImage 从内存流上传一张乐谱图片并写入关联记录.
func (s *ResourceService) UploadImage(ctx context.Context, reader io.Reader, size int64, contentType, rawTags, owner, project, fileName string) (*UploadResult, error) {
	return s.upload(ctx, model.KindImage, func(tags []string) (*media.Resource, error) {
		return s.mediaClient.Upload(ctx, model.KindImage, reader, size, contentType, tags, owner, project)
	}, rawTags, owner, project, fileName)
}

// upload 两种资源共用的上传编排.
func (s *ResourceService) upload(ctx context.Context, kind model.Kind,
	store func(tags []string) (*media.Resource, error),
	rawTags, owner, project, fileName string,
) (*UploadResult, error) {
	upLog := nlog.Logger()
	tags := parseTagList(rawTags)

	res, err := store(tags)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(kind.String(), "error").Inc()
		return nil, err
	}

	row := &model.Association{
		PublicID:     res.PublicID,
		Owner:        owner,
		Project:      project,
		ByteSize:     res.ByteSize,
		SecureURL:    res.SecureURL,
		ResourceType: res.ResourceType,
		CreatedAt:    res.CreatedAt,
	}
	if err := row.SetTags(tags); err != nil {
		metrics.UploadsTotal.WithLabelValues(kind.String(), "error").Inc()
		return &UploadResult{Store: res}, err
	}

	if err := insertAssociation(s.dbClient.DB, kind, row); err != nil {
		// 对象已入媒体库，记录留作孤儿交给对账任务
		upLog.Error().Err(err).
			Str("kind", kind.String()).
			Str("public_id", res.PublicID).
			Msg("association insert failed after store upload")
		metrics.UploadsTotal.WithLabelValues(kind.String(), "error").Inc()

		return &UploadResult{Store: res}, err
	}

	metrics.UploadsTotal.WithLabelValues(kind.String(), "ok").Inc()
	s.invalidateEnumerationCache(ctx, owner, project)

	publishEvent(s.mqClient, queue.TopicMediaStored, queue.MediaStoredPayload{
		Media:    s.mediaRef(res, owner, project),
		FileName: fileName,
		Tags:     tags,
	})

	upLog.Info().
		Str("kind", kind.String()).
		Str("public_id", res.PublicID).
		Str("owner", owner).
		Str("project", project).
		Int64("bytes", res.ByteSize).
		Msg("media uploaded")

	return &UploadResult{Store: res, Row: row}, nil
}

// mediaRef 事件负载中的媒体标识.
func (s *ResourceService) mediaRef(res *media.Resource, owner, project string) queue.MediaRef {
	return queue.MediaRef{
		PublicID:     res.PublicID,
		ResourceType: res.ResourceType,
		Owner:        owner,
		Project:      project,
		ByteSize:     res.ByteSize,
		ContentType:  res.ContentType,
		SecureURL:    res.SecureURL,
	}
}
