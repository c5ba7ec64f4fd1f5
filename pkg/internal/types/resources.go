// Package types 定义HTTP层的请求与响应结构.
package types

// NoResourcesMessage 表示 (owner, project) 下没有任何关联记录的哨兵响应文案.
// 与历史前端约定保持一致，不是错误.
const NoResourcesMessage = "No clips found for this user/project combination"

// Resource 列表返回的单个媒体条目：媒体库元数据与权威标签集合的合并结果.
type Resource struct {
	PublicID     string   `json:"public_id"`
	ResourceType string   `json:"resource_type"`
	Bytes        int64    `json:"bytes"`
	ContentType  string   `json:"content_type,omitempty"`
	SecureURL    string   `json:"secure_url"`
	CreatedAt    string   `json:"created_at"`
	Tags         []string `json:"tags"`
}

// MessageResponse 通用的 {message} 响应体.
type MessageResponse struct {
	Message string `json:"message"`
}
