// Package metrics 提供监控指标功能.
// 支持Prometheus标准，收集应用和系统指标.
//
// Example:
//
//	import "github.com/yeisme/tunevault/pkg/metrics"
//
//	err := metrics.InitMetrics(config.Metrics)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// 记录指标
//	metrics.RequestCounter.WithLabelValues("GET", "/api/get-audio").Inc()
package metrics

import (
	"net/http"
	_ "net/http/pprof" // 自动注册pprof端点

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yeisme/tunevault/pkg/configs"
)

// 全局指标变量.
var (
	// RequestCounter HTTP请求计数器.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	// RequestDuration HTTP请求持续时间.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// UploadsTotal 按资源类型统计的上传次数.
	UploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_uploads_total",
			Help: "Total number of media uploads by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	// DeletesTotal 按资源类型统计的删除次数.
	DeletesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_deletes_total",
			Help: "Total number of media deletions by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	// TagMutationsTotal 标签增删次数.
	TagMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_tag_mutations_total",
			Help: "Total number of tag add/remove operations by kind",
		},
		[]string{"kind", "op"},
	)

	// ReconcileDrift 最近一次对账发现的漂移行数.
	ReconcileDrift = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reconcile_drift_rows",
			Help: "Rows repaired during the last reconciliation run",
		},
		[]string{"kind", "direction"},
	)

	// registry Prometheus注册表.
	registry = prometheus.NewRegistry()
)

// InitMetrics 初始化Metrics.
func InitMetrics(config configs.MetricsConfig) error {
	if !config.Enabled {
		return nil
	}

	// 注册标准收集器
	if config.RuntimeMetrics {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	// 注册自定义指标
	registry.MustRegister(
		RequestCounter,
		RequestDuration,
		UploadsTotal,
		DeletesTotal,
		TagMutationsTotal,
		ReconcileDrift,
	)

	return nil
}

// StartMetricsServer 在 gin 引擎上挂载指标端点.
func StartMetricsServer(config configs.MetricsConfig, engine *gin.Engine) error {
	if !config.Enabled {
		return nil
	}

	path := config.Path
	if path == "" {
		path = "/metrics"
	}

	engine.GET(path, gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if configs.GetConfig().Server.Debug {
		engine.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	return nil
}

// GetRegistry 获取Prometheus注册表.
func GetRegistry() *prometheus.Registry {
	return registry
}
