package service

import (
	"context"
	"time"

	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/types"
	nlog "github.com/yeisme/tunevault/pkg/log"
)

// ListResources 枚举 (owner, project) 下某种资源：先查关联库取 public_id 列表，
// 再逐个向媒体库查元数据与权威标签并按位合并.
//
// 关联库查询失败按零条记录处理（历史的 fail-open 行为），只记日志不向上返回错误；
// 调用方将空结果渲染为哨兵消息.个别对象在媒体库缺失（孤儿记录）时跳过该条目，
// 留给对账任务清理.
func (s *ResourceService) ListResources(ctx context.Context, kind model.Kind, owner, project string) []types.Resource {
	listLog := nlog.Logger()

	ids, err := listAssociationIDs(s.dbClient.DB, kind, owner, project)
	if err != nil {
		listLog.Warn().Err(err).
			Str("kind", kind.String()).
			Str("owner", owner).
			Str("project", project).
			Msg("association query failed, treating as empty")

		return nil
	}

	if len(ids) == 0 {
		return nil
	}

	resources := make([]types.Resource, 0, len(ids))

	for _, id := range ids {
		res, err := s.mediaClient.Resource(ctx, kind, id)
		if err != nil {
			listLog.Warn().Err(err).Str("public_id", id).Msg("media stat failed, skipping entry")
			continue
		}

		tags, err := s.mediaClient.Tags(ctx, kind, id)
		if err != nil {
			listLog.Warn().Err(err).Str("public_id", id).Msg("media tags lookup failed")

			tags = []string{}
		}

		resources = append(resources, types.Resource{
			PublicID:     res.PublicID,
			ResourceType: res.ResourceType,
			Bytes:        res.ByteSize,
			ContentType:  res.ContentType,
			SecureURL:    res.SecureURL,
			CreatedAt:    res.CreatedAt.Format(time.RFC3339),
			Tags:         tags,
		})
	}

	return resources
}
