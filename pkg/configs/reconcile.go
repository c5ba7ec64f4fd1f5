package configs

import "github.com/spf13/viper"

const (
	DefaultReconcileEnabled = true
	// 默认在每天低峰期执行一次全量对账.
	DefaultReconcileCron = "30 3 * * *"
)

// ReconcileConfig 媒体库与关联库之间的对账任务配置.
// 媒体库是对象存在性的事实来源；关联库作为派生索引按此修复.
type ReconcileConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Cron    string `mapstructure:"cron"` // 标准 5 段 cron 表达式
}

func (c *ReconcileConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("reconcile.enabled", DefaultReconcileEnabled)
	v.SetDefault("reconcile.cron", DefaultReconcileCron)
}
