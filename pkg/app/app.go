// Package app 提供应用程序的初始化和配置功能.
package app

import (
	contextPkg "context"
	"fmt"
	"os"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yeisme/tunevault/pkg/api"
	"github.com/yeisme/tunevault/pkg/configs"
	"github.com/yeisme/tunevault/pkg/internal/jobs"
	"github.com/yeisme/tunevault/pkg/internal/storage"
	"github.com/yeisme/tunevault/pkg/log"
	"github.com/yeisme/tunevault/pkg/metrics"
	"github.com/yeisme/tunevault/pkg/middleware"
	"github.com/yeisme/tunevault/pkg/scheduler"
)

type App struct {
	Engine    *gin.Engine
	Scheduler *scheduler.Scheduler

	config *configs.AppConfig
}

func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()

	if config.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine.Use(
		gin.Recovery(),
		middleware.CORSMiddleware(config.Server),
		middleware.GinLoggerMiddleware(),
		middleware.AuthMiddleware(config.Auth),
		middleware.RateLimitMiddleware(config.RateLimit),
		middleware.CircuitBreakerMiddleware(config.Breaker),
		middleware.PrometheusMiddleware(),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.StorageMiddleware(manager),
	)

	// 定时对账
	var sched *scheduler.Scheduler

	if config.Reconcile.Enabled {
		sched, err = scheduler.NewScheduler()
		if err != nil {
			fmt.Printf("Error creating scheduler: %v\n", err)
			os.Exit(1)
		}

		if err := jobs.RegisterCronJobs(sched, manager); err != nil {
			fmt.Printf("Error registering cron jobs: %v\n", err)
			os.Exit(1)
		}

		sched.Start()
		engine.Use(middleware.SchedulerMiddleware(sched))
	}

	api.RegisterGroup(engine)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	return &App{
		Engine:    engine,
		Scheduler: sched,
		config:    config,
	}
}

func (a *App) Run() error {
	return a.Engine.Run(fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port))
}
