package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// MediaRef 标识一条媒体资源及其归属.
type MediaRef struct {
	PublicID     string `json:"public_id"`
	ResourceType string `json:"resource_type"`
	Owner        string `json:"owner,omitempty"`
	Project      string `json:"project,omitempty"`
	ByteSize     int64  `json:"bytes,omitempty"`
	ContentType  string `json:"content_type,omitempty"`
	SecureURL    string `json:"secure_url,omitempty"`
}

// MediaStoredPayload 媒体上传完成.
type MediaStoredPayload struct {
	Media    MediaRef `json:"media"`
	FileName string   `json:"file_name,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// MediaDeletedPayload 媒体被删除.
type MediaDeletedPayload struct {
	Media MediaRef `json:"media"`
}

// MediaTagsUpdatedPayload 媒体标签集合变更后的权威标签.
type MediaTagsUpdatedPayload struct {
	Media MediaRef `json:"media"`
	Tags  []string `json:"tags"`
	// Op 变更种类：add 或 remove.
	Op string `json:"op"`
}

// ReconcileCompletedPayload 一轮对账的漂移统计.
type ReconcileCompletedPayload struct {
	Kind         string `json:"kind"`
	OrphanRows   int    `json:"orphan_rows"`   // 删除的孤儿关联记录数
	MissingRows  int    `json:"missing_rows"`  // 补建的关联记录数
	ObjectsSeen  int    `json:"objects_seen"`  // 媒体库中的对象总数
	DurationSecs int64  `json:"duration_secs"` // 本轮耗时（秒）
}
