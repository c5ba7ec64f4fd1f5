// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"fmt"

	"github.com/yeisme/tunevault/pkg/configs"
	ctxPkg "github.com/yeisme/tunevault/pkg/context"
	"github.com/yeisme/tunevault/pkg/internal/service"
	"github.com/yeisme/tunevault/pkg/internal/storage"
	"github.com/yeisme/tunevault/pkg/log"
	"github.com/yeisme/tunevault/pkg/scheduler"
)

// RegisterCronJobs 配置业务定时任务：按配置的 cron 表达式对账媒体库与关联库.
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	cfg := configs.GetConfig().Reconcile

	// 将 storage manager 注入到 context，便于 service 使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	return sched.AddCron(JobMediaReconcile, cfg.Cron, runReconcile, baseCtx)
}

// runReconcile 以媒体库为准修复两类资源的关联记录.
func runReconcile(ctx context.Context) {
	l := log.Logger().With().Str("job", JobMediaReconcile).Logger()

	svc := service.NewResourceService(ctx)
	if err := svc.ReconcileAll(ctx); err != nil {
		l.Error().Err(err).Msg("reconciliation failed")
		return
	}

	l.Info().Msg("reconciliation run finished")
}
