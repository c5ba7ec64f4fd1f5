// Package model 定义关联库的数据模型.
package model

import (
	"time"

	"github.com/bytedance/sonic"
)

// Association 一条媒体对象与 (owner, project) 分组的关联记录.
// public_id 由媒体库在上传时分配并在此镜像，本服务从不自行生成；
// 每个媒体对象至多对应一行.
type Association struct {
	ID uint `gorm:"primaryKey" json:"-"`
	// PublicID 媒体库分配的对象标识，同一集合内唯一
	PublicID string `gorm:"size:255;uniqueIndex" json:"public_id"`
	// Owner 外部身份提供方给出的用户标识
	Owner   string `gorm:"size:255;index:idx_owner_project" json:"user"`
	Project string `gorm:"size:255;index:idx_owner_project" json:"project"`
	// TagsJSON 以 JSON 数组字符串存储的标签集合
	TagsJSON     string    `gorm:"type:text"  json:"-"`
	ByteSize     int64     `gorm:""           json:"bytes"`
	SecureURL    string    `gorm:"size:1024"  json:"secure_url"`
	ResourceType string    `gorm:"size:32"    json:"resource_type"`
	CreatedAt    time.Time `gorm:""           json:"created_at"`
}

// Tags 解码标签集合；空或非法的存量数据返回空集合.
func (a *Association) Tags() []string {
	if a.TagsJSON == "" {
		return []string{}
	}

	var tags []string
	if err := sonic.Unmarshal([]byte(a.TagsJSON), &tags); err != nil {
		return []string{}
	}

	return tags
}

// SetTags 去重后编码标签集合，保持首次出现顺序.
func (a *Association) SetTags(tags []string) error {
	deduped := DedupTags(tags)

	b, err := sonic.Marshal(deduped)
	if err != nil {
		return err
	}

	a.TagsJSON = string(b)

	return nil
}

// DedupTags 去除重复标签，保持首次出现顺序，过滤空串.
func DedupTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))

	for _, t := range tags {
		if t == "" {
			continue
		}

		if _, ok := seen[t]; ok {
			continue
		}

		seen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}
