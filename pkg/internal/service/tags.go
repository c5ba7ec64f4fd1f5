package service

import (
	"context"

	"github.com/yeisme/tunevault/pkg/internal/model"
	nlog "github.com/yeisme/tunevault/pkg/log"
	"github.com/yeisme/tunevault/pkg/metrics"
	"github.com/yeisme/tunevault/pkg/queue"
)

// AddTags 以集合并集语义向两侧存储追加标签，重复追加同一标签是幂等的.
// 返回媒体库合并后的权威标签集合.
func (s *ResourceService) AddTags(ctx context.Context, kind model.Kind, publicID string, tags []string) ([]string, error) {
	tagLog := nlog.Logger()
	tags = model.DedupTags(tags)

	merged, err := s.mediaClient.AddTags(ctx, kind, publicID, tags)
	if err != nil {
		return nil, err
	}

	rowTags, err := addAssociationTags(s.dbClient.DB, kind, publicID, tags)
	if err != nil {
		return nil, err
	}

	if rowTags == nil {
		// 媒体库已更新而关联记录缺失：孤儿对象，交给对账任务
		tagLog.Warn().
			Str("kind", kind.String()).
			Str("public_id", publicID).
			Msg("tag add on object without association row")
	}

	metrics.TagMutationsTotal.WithLabelValues(kind.String(), "add").Inc()
	s.invalidateTagCacheFor(ctx, kind, publicID)

	publishEvent(s.mqClient, queue.TopicMediaTagsUpdated, queue.MediaTagsUpdatedPayload{
		Media: queue.MediaRef{PublicID: publicID, ResourceType: kind.StoreType()},
		Tags:  merged,
		Op:    "add",
	})

	return merged, nil
}

// RemoveTags 从两侧存储删除所有精确匹配的标签；标签本就不存在时为成功的无操作.
// 返回媒体库剩余的权威标签集合.
func (s *ResourceService) RemoveTags(ctx context.Context, kind model.Kind, publicID string, tags []string) ([]string, error) {
	remaining, err := s.mediaClient.RemoveTags(ctx, kind, publicID, tags)
	if err != nil {
		return nil, err
	}

	if _, err := removeAssociationTags(s.dbClient.DB, kind, publicID, tags); err != nil {
		return nil, err
	}

	metrics.TagMutationsTotal.WithLabelValues(kind.String(), "remove").Inc()
	s.invalidateTagCacheFor(ctx, kind, publicID)

	publishEvent(s.mqClient, queue.TopicMediaTagsUpdated, queue.MediaTagsUpdatedPayload{
		Media: queue.MediaRef{PublicID: publicID, ResourceType: kind.StoreType()},
		Tags:  remaining,
		Op:    "remove",
	})

	return remaining, nil
}

// invalidateTagCacheFor 按记录归属失效标签枚举缓存；记录缺失时跳过.
func (s *ResourceService) invalidateTagCacheFor(ctx context.Context, kind model.Kind, publicID string) {
	row, err := findAssociation(s.dbClient.DB, kind, publicID)
	if err != nil || row == nil {
		return
	}

	s.invalidateEnumerationCache(ctx, row.Owner, row.Project)
}
