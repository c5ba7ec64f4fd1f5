package service

import (
	"context"
	"errors"
	"sort"

	"github.com/bytedance/sonic"

	"github.com/yeisme/tunevault/pkg/internal/model"
	"github.com/yeisme/tunevault/pkg/internal/storage/kv"
	"github.com/yeisme/tunevault/pkg/internal/types"
	nlog "github.com/yeisme/tunevault/pkg/log"
)

const projectsCacheKey = "enum:projects"

// tagsCacheKey (owner, project) 标签枚举的缓存键.
func tagsCacheKey(owner, project string) string {
	return "enum:tags:" + owner + ":" + project
}

// ListUserProjects 枚举全部 owner 及其去重后的项目列表.
//
// 两张集合表都参与聚合，只有图片的项目同样可见.结果缓存一个 TTL 周期，
// 上传、删除与标签变更时失效.
func (s *ResourceService) ListUserProjects(ctx context.Context) (types.UserProjects, error) {
	if s.kvClient != nil {
		if cached, err := s.kvClient.Get(ctx, projectsCacheKey); err == nil {
			var result types.UserProjects
			if err := sonic.Unmarshal(cached, &result); err == nil {
				return result, nil
			}
		}
	}

	// owner → 项目名集合，保持跨表合并后的确定性顺序
	byOwner := make(map[string][]string)

	for _, kind := range model.Kinds() {
		rows, err := distinctOwnerProjects(s.dbClient.DB, kind)
		if err != nil {
			return nil, err
		}

		for _, row := range rows {
			if !containsString(byOwner[row.Owner], row.Project) {
				byOwner[row.Owner] = append(byOwner[row.Owner], row.Project)
			}
		}
	}

	result := make(types.UserProjects, len(byOwner))

	for owner, projects := range byOwner {
		sort.Strings(projects)

		items := make([]types.ProjectItem, 0, len(projects))
		for i, name := range projects {
			items = append(items, types.ProjectItem{ID: i + 1, Name: name})
		}

		result[owner] = items
	}

	s.cacheEnumeration(ctx, projectsCacheKey, result)

	return result, nil
}

// ListAllTags 枚举 (owner, project) 下两张集合表的去重标签并集.
func (s *ResourceService) ListAllTags(ctx context.Context, owner, project string) ([]string, error) {
	key := tagsCacheKey(owner, project)

	if s.kvClient != nil {
		if cached, err := s.kvClient.Get(ctx, key); err == nil {
			var result []string
			if err := sonic.Unmarshal(cached, &result); err == nil {
				return result, nil
			}
		}
	}

	seen := make(map[string]struct{})
	all := make([]string, 0)

	for _, kind := range model.Kinds() {
		rawSets, err := associationTagSets(s.dbClient.DB, kind, owner, project)
		if err != nil {
			return nil, err
		}

		for _, raw := range rawSets {
			a := model.Association{TagsJSON: raw}
			for _, t := range a.Tags() {
				if _, ok := seen[t]; ok {
					continue
				}

				seen[t] = struct{}{}
				all = append(all, t)
			}
		}
	}

	sort.Strings(all)
	s.cacheEnumeration(ctx, key, all)

	return all, nil
}

// cacheEnumeration 把枚举结果写入缓存，失败只记日志.
func (s *ResourceService) cacheEnumeration(ctx context.Context, key string, value any) {
	if s.kvClient == nil {
		return
	}

	b, err := sonic.Marshal(value)
	if err != nil {
		return
	}

	if err := s.kvClient.Set(ctx, key, b, s.kvClient.TTL()); err != nil {
		nlog.Logger().Debug().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// invalidateEnumerationCache 媒体集合变更后失效相关枚举缓存.
func (s *ResourceService) invalidateEnumerationCache(ctx context.Context, owner, project string) {
	if s.kvClient == nil {
		return
	}

	for _, key := range []string{projectsCacheKey, tagsCacheKey(owner, project)} {
		if err := s.kvClient.Delete(ctx, key); err != nil && !errors.Is(err, kv.ErrNotFound) {
			nlog.Logger().Debug().Err(err).Str("key", key).Msg("cache invalidation failed")
		}
	}
}

// containsString 线性查找，项目列表规模很小.
func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}

	return false
}
