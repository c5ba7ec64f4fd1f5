package service

import (
	"context"

	"github.com/yeisme/tunevault/pkg/internal/model"
	nlog "github.com/yeisme/tunevault/pkg/log"
	"github.com/yeisme/tunevault/pkg/metrics"
	"github.com/yeisme/tunevault/pkg/queue"
)

// DeleteResource 删除一条媒体资源：先销毁媒体库对象，再删除关联记录.
//
// 两步按顺序执行且无事务.媒体库失败立即返回错误（关联记录保留）；
// 关联记录不存在按成功的无操作处理，关联库出错才算失败.
func (s *ResourceService) DeleteResource(ctx context.Context, kind model.Kind, publicID string) error {
	delLog := nlog.Logger()

	// 先取记录以便失效对应的枚举缓存
	row, err := findAssociation(s.dbClient.DB, kind, publicID)
	if err != nil {
		delLog.Warn().Err(err).Str("public_id", publicID).Msg("association lookup before delete failed")
	}

	if err := s.mediaClient.Destroy(ctx, kind, publicID); err != nil {
		metrics.DeletesTotal.WithLabelValues(kind.String(), "error").Inc()
		return err
	}

	if _, err := deleteAssociation(s.dbClient.DB, kind, publicID); err != nil {
		metrics.DeletesTotal.WithLabelValues(kind.String(), "error").Inc()
		return err
	}

	metrics.DeletesTotal.WithLabelValues(kind.String(), "ok").Inc()

	var owner, project string
	if row != nil {
		owner, project = row.Owner, row.Project
		s.invalidateEnumerationCache(ctx, owner, project)
	}

	publishEvent(s.mqClient, queue.TopicMediaDeleted, queue.MediaDeletedPayload{
		Media: queue.MediaRef{
			PublicID:     publicID,
			ResourceType: kind.StoreType(),
			Owner:        owner,
			Project:      project,
		},
	})

	delLog.Info().
		Str("kind", kind.String()).
		Str("public_id", publicID).
		Msg("media deleted")

	return nil
}
