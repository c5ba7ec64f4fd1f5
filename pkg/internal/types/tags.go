package types

// UpdateTagsRequest 标签追加请求体.
// 字段名遵循历史前端契约（camelCase publicId）.
type UpdateTagsRequest struct {
	PublicID string   `json:"publicId" rule:"required"`
	Tags     []string `json:"tags"     rule:"required,min=1"`
}
