// Package storage 聚合两套外部存储（媒体库与关联数据库）及其可选配套设施
// （消息队列、枚举缓存）的初始化与访问.
package storage

import (
	"context"
	"sync"

	"github.com/yeisme/tunevault/pkg/configs"
	dbc "github.com/yeisme/tunevault/pkg/internal/storage/db"
	kvc "github.com/yeisme/tunevault/pkg/internal/storage/kv"
	mediac "github.com/yeisme/tunevault/pkg/internal/storage/media"
	mqc "github.com/yeisme/tunevault/pkg/internal/storage/mq"
	nlog "github.com/yeisme/tunevault/pkg/log"
)

// Manager 聚合所有存储资源.
//
// DB 与 Media 是必需的；MQ 仅在配置启用时初始化，KV 总是可用
// （默认内存后端）.
type Manager struct {
	DB    *dbc.Client
	Media *mediac.Client
	MQ    *mqc.Client
	KV    *kvc.Client
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init 初始化默认存储，使用全局配置.重复调用只返回已初始化实例.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		cfg := configs.GetConfig()
		m := &Manager{}

		// 关联数据库
		dbi, e := dbc.New(ctx, &cfg.DB)
		if e != nil {
			err = e

			return
		}

		m.DB = dbi

		if e := dbi.MigrateAssociations(); e != nil {
			err = e

			return
		}

		// 媒体库
		mi, e := mediac.New(ctx, &cfg.Media)
		if e != nil {
			err = e

			return
		}

		m.Media = mi

		// 消息队列（可选）
		if cfg.MQ.Enabled {
			mqi, e := mqc.New(ctx, &cfg.MQ)
			if e != nil {
				err = e

				return
			}

			m.MQ = mqi
		}

		// 枚举缓存
		kvi, e := kvc.New(ctx, &cfg.KV)
		if e != nil {
			err = e

			return
		}

		m.KV = kvi

		mgr = m

		nlog.Logger().Info().Msg("storage manager initialized")
	})

	return mgr, err
}

// GetDBClient 获取关联数据库客户端.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetMediaClient 获取媒体库客户端.
func (m *Manager) GetMediaClient() *mediac.Client {
	return m.Media
}

// GetMQClient 获取 MQ 客户端，未启用时为 nil.
func (m *Manager) GetMQClient() *mqc.Client {
	return m.MQ
}

// GetKVClient 获取 KV 客户端.
func (m *Manager) GetKVClient() *kvc.Client {
	return m.KV
}
