package service

import (
	"context"
	"time"

	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/storage/media"
	nlog "github.com/yeisme/tunevault/pkg/log"
	"github.com/yeisme/tunevault/pkg/metrics"
	"github.com/yeisme/tunevault/pkg/queue"
)

// ReconcileStats 一轮对账的修复统计.
type ReconcileStats struct {
	Kind        string
	OrphanRows  int // 删除的孤儿关联记录数
	MissingRows int // 补建的关联记录数
	ObjectsSeen int
	Duration    time.Duration
}

// driftReport 两侧存储的差异.
type driftReport struct {
	// orphanIDs 关联库有而媒体库没有的 public_id
	orphanIDs []string
	// missing 媒体库有而关联库没有的对象
	missing []media.Resource
}

// computeDrift 对比关联记录与媒体库对象清单，媒体库为存在性的权威来源.
func computeDrift(rows []model.Association, objects []media.Resource) driftReport {
	known := make(map[string]struct{}, len(objects))
	for _, o := range objects {
		known[o.PublicID] = struct{}{}
	}

	indexed := make(map[string]struct{}, len(rows))

	var report driftReport

	for _, row := range rows {
		indexed[row.PublicID] = struct{}{}

		if _, ok := known[row.PublicID]; !ok {
			report.orphanIDs = append(report.orphanIDs, row.PublicID)
		}
	}

	for _, o := range objects {
		if _, ok := indexed[o.PublicID]; !ok {
			report.missing = append(report.missing, o)
		}
	}

	return report
}

// Reconcile 以媒体库为准修复一种资源的关联记录：删除对象已消失的孤儿记录，
// 按对象的 owner/project 元数据补建缺失记录.操作幂等，可安全重复执行.
func (s *ResourceService) Reconcile(ctx context.Context, kind model.Kind) (*ReconcileStats, error) {
	recLog := nlog.Logger()
	start := time.Now()

	objects, err := s.mediaClient.ListResources(ctx, kind)
	if err != nil {
		return nil, err
	}

	rows, err := listAllAssociations(s.dbClient.DB, kind)
	if err != nil {
		return nil, err
	}

	drift := computeDrift(rows, objects)
	stats := &ReconcileStats{Kind: kind.String(), ObjectsSeen: len(objects)}

	for _, id := range drift.orphanIDs {
		if _, err := deleteAssociation(s.dbClient.DB, kind, id); err != nil {
			recLog.Error().Err(err).Str("public_id", id).Msg("orphan row delete failed")
			continue
		}

		stats.OrphanRows++
	}

	for _, obj := range drift.missing {
		if obj.Owner == "" {
			// 上传时没有归属元数据的对象无法补建，跳过
			recLog.Warn().Str("public_id", obj.PublicID).Msg("object without owner metadata, skipping")
			continue
		}

		row := &model.Association{
			PublicID:     obj.PublicID,
			Owner:        obj.Owner,
			Project:      obj.Project,
			ByteSize:     obj.ByteSize,
			SecureURL:    obj.SecureURL,
			ResourceType: obj.ResourceType,
			CreatedAt:    obj.CreatedAt,
		}
		if err := row.SetTags(obj.Tags); err != nil {
			recLog.Error().Err(err).Str("public_id", obj.PublicID).Msg("encode tags failed")
			continue
		}

		if err := insertAssociation(s.dbClient.DB, kind, row); err != nil {
			recLog.Error().Err(err).Str("public_id", obj.PublicID).Msg("missing row insert failed")
			continue
		}

		stats.MissingRows++
	}

	stats.Duration = time.Since(start)

	metrics.ReconcileDrift.WithLabelValues(kind.String(), "orphan").Set(float64(stats.OrphanRows))
	metrics.ReconcileDrift.WithLabelValues(kind.String(), "missing").Set(float64(stats.MissingRows))

	publishEvent(s.mqClient, queue.TopicReconcileCompleted, queue.ReconcileCompletedPayload{
		Kind:         stats.Kind,
		OrphanRows:   stats.OrphanRows,
		MissingRows:  stats.MissingRows,
		ObjectsSeen:  stats.ObjectsSeen,
		DurationSecs: int64(stats.Duration.Seconds()),
	})

	recLog.Info().
		Str("kind", stats.Kind).
		Int("orphan_rows", stats.OrphanRows).
		Int("missing_rows", stats.MissingRows).
		Int("objects_seen", stats.ObjectsSeen).
		Dur("duration", stats.Duration).
		Msg("reconciliation completed")

	return stats, nil
}

// ReconcileAll 对全部资源种类执行对账.
func (s *ResourceService) ReconcileAll(ctx context.Context) error {
	for _, kind := range model.Kinds() {
		if _, err := s.Reconcile(ctx, kind); err != nil {
			return err
		}
	}

	return nil
}
