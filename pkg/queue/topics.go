// Package queue 定义消息主题常量，供发布/订阅使用.
package queue

// 主题命名规范：tv.<域>.<动作>，尽量稳定且向后兼容.

const (
	// 媒体生命周期领域.
	TopicMediaStored      = "tv.media.stored"       // 媒体对象写入完成且关联记录已入库
	TopicMediaDeleted     = "tv.media.deleted"      // 媒体对象与关联记录被删除
	TopicMediaTagsUpdated = "tv.media.tags.updated" // 媒体对象标签集合发生变更

	// 对账领域.
	TopicReconcileCompleted = "tv.reconcile.completed" // 一轮对账完成，含漂移统计
)

// MediaTopics 媒体生命周期相关主题集合.
var MediaTopics = []string{
	TopicMediaStored, TopicMediaDeleted, TopicMediaTagsUpdated,
}
