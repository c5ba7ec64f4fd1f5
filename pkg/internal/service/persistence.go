package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeisme/tunevault/pkg/internal/model"
)

// 关联库访问集中在本文件.两张集合表结构相同，统一经 kind.Collection()
// 选表；包级函数直接收 *gorm.DB，便于白盒测试.

// listAssociationIDs 查询 (owner, project) 下某种资源的 public_id 列表，按入库顺序.
func listAssociationIDs(tx *gorm.DB, kind model.Kind, owner, project string) ([]string, error) {
	var ids []string

	err := tx.Table(kind.Collection()).
		Where("owner = ? AND project = ?", owner, project).
		Order("id").
		Pluck("public_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list %s associations: %w", kind, err)
	}

	return ids, nil
}

// insertAssociation 写入一条关联记录.
func insertAssociation(tx *gorm.DB, kind model.Kind, a *model.Association) error {
	if err := tx.Table(kind.Collection()).Create(a).Error; err != nil {
		return fmt.Errorf("insert %s association: %w", kind, err)
	}

	return nil
}

// findAssociation 按 public_id 查询关联记录；不存在时返回 (nil, nil).
func findAssociation(tx *gorm.DB, kind model.Kind, publicID string) (*model.Association, error) {
	var a model.Association

	err := tx.Table(kind.Collection()).Where("public_id = ?", publicID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("find %s association %s: %w", kind, publicID, err)
	}

	return &a, nil
}

// deleteAssociation 按 public_id 删除关联记录，返回删除行数.
func deleteAssociation(tx *gorm.DB, kind model.Kind, publicID string) (int64, error) {
	res := tx.Table(kind.Collection()).Where("public_id = ?", publicID).Delete(&model.Association{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete %s association %s: %w", kind, publicID, res.Error)
	}

	return res.RowsAffected, nil
}

// addAssociationTags 集合并集语义追加标签，返回合并后的标签集合.
// 记录不存在时返回 (nil, nil)，由调用方决定是否视为错误.
func addAssociationTags(tx *gorm.DB, kind model.Kind, publicID string, tags []string) ([]string, error) {
	a, err := findAssociation(tx, kind, publicID)
	if err != nil {
		return nil, err
	}

	if a == nil {
		return nil, nil
	}

	merged := model.DedupTags(append(a.Tags(), tags...))
	if err := a.SetTags(merged); err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	err = tx.Table(kind.Collection()).
		Where("public_id = ?", publicID).
		Update("tags_json", a.TagsJSON).Error
	if err != nil {
		return nil, fmt.Errorf("update %s tags %s: %w", kind, publicID, err)
	}

	return merged, nil
}

// removeAssociationTags 删除所有精确匹配的标签；不存在的标签按无操作处理.
func removeAssociationTags(tx *gorm.DB, kind model.Kind, publicID string, tags []string) ([]string, error) {
	a, err := findAssociation(tx, kind, publicID)
	if err != nil {
		return nil, err
	}

	if a == nil {
		return nil, nil
	}

	drop := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		drop[t] = struct{}{}
	}

	remaining := make([]string, 0)

	for _, t := range a.Tags() {
		if _, ok := drop[t]; !ok {
			remaining = append(remaining, t)
		}
	}

	if err := a.SetTags(remaining); err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	err = tx.Table(kind.Collection()).
		Where("public_id = ?", publicID).
		Update("tags_json", a.TagsJSON).Error
	if err != nil {
		return nil, fmt.Errorf("update %s tags %s: %w", kind, publicID, err)
	}

	return remaining, nil
}

// ownerProject 一条 (owner, project) 组合.
type ownerProject struct {
	Owner   string
	Project string
}

// distinctOwnerProjects 某种资源的全部 (owner, project) 组合.
func distinctOwnerProjects(tx *gorm.DB, kind model.Kind) ([]ownerProject, error) {
	var rows []ownerProject

	err := tx.Table(kind.Collection()).
		Distinct("owner", "project").
		Order("owner").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list %s projects: %w", kind, err)
	}

	return rows, nil
}

// associationTagSets (owner, project) 下全部记录的标签集合原文.
func associationTagSets(tx *gorm.DB, kind model.Kind, owner, project string) ([]string, error) {
	var raw []string

	err := tx.Table(kind.Collection()).
		Where("owner = ? AND project = ?", owner, project).
		Pluck("tags_json", &raw).Error
	if err != nil {
		return nil, fmt.Errorf("list %s tags: %w", kind, err)
	}

	return raw, nil
}

// listAllAssociations 某种资源的全部关联记录，供对账使用.
func listAllAssociations(tx *gorm.DB, kind model.Kind) ([]model.Association, error) {
	var rows []model.Association

	if err := tx.Table(kind.Collection()).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list all %s associations: %w", kind, err)
	}

	return rows, nil
}
