// Package service 实现媒体资源的业务逻辑：上传、枚举、删除、标签维护与对账.
//
// 每个操作跨两套外部存储：媒体库（二进制与权威标签）与关联库（(owner, project)
// 分组索引）.两者之间没有事务边界，局部失败允许暂时漂移，由对账任务补偿.
package service

import (
	"context"

	ctxPkg "github.com/yeisme/tunevault/pkg/context"
	"github.com/yeisme/tunevault/pkg/internal/storage/db"
	"github.com/yeisme/tunevault/pkg/internal/storage/kv"
	"github.com/yeisme/tunevault/pkg/internal/storage/media"
	"github.com/yeisme/tunevault/pkg/internal/storage/mq"
	nlog "github.com/yeisme/tunevault/pkg/log"
	"github.com/yeisme/tunevault/pkg/queue"
)

// producerName 事件头中的生产者标识.
const producerName = "tunevault"

// ResourceService 聚合媒体资源操作所需的存储客户端.
type ResourceService struct {
	dbClient    *db.Client
	mediaClient *media.Client
	mqClient    *mq.Client
	kvClient    *kv.Client
}

// NewResourceService 从上下文中取出存储管理器并构造服务.
func NewResourceService(c context.Context) *ResourceService {
	return &ResourceService{
		dbClient:    ctxPkg.GetDBClient(c),
		mediaClient: ctxPkg.GetMediaClient(c),
		mqClient:    ctxPkg.GetMQClient(c),
		kvClient:    ctxPkg.GetKVClient(c),
	}
}

// publishEvent 尽力发布事件：MQ 未启用时为空操作，失败只记日志.
func publishEvent[T any](client *mq.Client, topic string, payload T) {
	if client == nil {
		return
	}

	msg, err := queue.NewWatermillMessage(topic, payload, queue.WithProducer(producerName))
	if err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", topic).Msg("encode event failed")
		return
	}

	if err := client.Publish(topic, msg); err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", topic).Msg("publish event failed")
	}
}
