// Package configs 管理应用程序配置，包括数据库、媒体存储和消息队列的配置信息.
// configs 包支持多种配置格式（YAML、JSON、TOML、dotenv）并启用热重载.
//
// Example:
//
//	import "github.com/yeisme/tunevault/pkg/configs"
//
//	err := configs.InitConfig("./")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	config := configs.GetConfig()
//	fmt.Println(config.Server.Port)
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// AppVersion 应用版本，构建时可通过 ldflags 覆盖.
var AppVersion = "dev"

type (
	// AppConfig 全局应用程序配置.
	AppConfig struct {
		DB        DBConfig             `mapstructure:"db"`        // DBConfig 关联库（数据库）配置
		Media     MediaConfig          `mapstructure:"media"`     // MediaConfig 媒体对象存储配置
		MQ        MQConfig             `mapstructure:"mq"`        // MQConfig 消息队列配置
		KV        KVConfig             `mapstructure:"kv"`        // KVConfig 枚举缓存配置
		Server    ServerConfig         `mapstructure:"server"`    // ServerConfig 服务器配置
		Log       LogConfig            `mapstructure:"log"`       // LogConfig 日志相关配置
		Auth      AuthConfig           `mapstructure:"auth"`      // AuthConfig 身份认证配置
		Metrics   MetricsConfig        `mapstructure:"metrics"`   // MetricsConfig 指标配置
		RateLimit RateLimitConfig      `mapstructure:"ratelimit"` // RateLimitConfig 限流配置
		Breaker   CircuitBreakerConfig `mapstructure:"breaker"`   // CircuitBreakerConfig 熔断配置
		Reconcile ReconcileConfig      `mapstructure:"reconcile"` // ReconcileConfig 两存储对账配置
	}
)

var (
	// globalConfig 全局配置实例.
	globalConfig AppConfig
	// appViper 全局 Viper 实例.
	appViper *viper.Viper
)

// InitConfig 加载应用程序配置，支持多种格式(yaml、json、toml、dotenv)并启用热重载.
// 找不到配置文件时退回默认值与环境变量.
func InitConfig(path string) error {
	appViper = viper.New()
	// 设置默认值
	setAllDefaults(appViper)

	// 检查path是否是文件
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		// 是文件，使用SetConfigFile，Viper会自动检测类型
		appViper.SetConfigFile(path)
	} else {
		// 是目录，设置配置名和路径
		appViper.SetConfigName("config")
		appViper.AddConfigPath(path)
		appViper.AddConfigPath(path + "/configs")

		exts := []string{"yaml", "yml", "json", "toml", "env", "dotenv"}

		for _, ext := range exts {
			cfg := filepath.Join(path, "config."+ext)
			if _, err := os.Stat(cfg); err == nil {
				appViper.SetConfigFile(cfg)

				break
			}
		}
	}

	appViper.AutomaticEnv()
	appViper.SetEnvPrefix("TUNEVAULT")

	// 读取配置
	if err := appViper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	// 解析到全局配置
	if err := appViper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	reloadConfigs(appViper, globalConfig.Server.ReloadConfig)

	return nil
}

// setAllDefaults 设置所有配置的默认值.
func setAllDefaults(v *viper.Viper) {
	var (
		serverConfig    ServerConfig
		dbConfig        DBConfig
		mediaConfig     MediaConfig
		mqConfig        MQConfig
		kvConfig        KVConfig
		logConfig       LogConfig
		authConfig      AuthConfig
		metricsConfig   MetricsConfig
		rateLimitConfig RateLimitConfig
		breakerConfig   CircuitBreakerConfig
		reconcileConfig ReconcileConfig
	)

	serverConfig.setDefaults(v)
	dbConfig.setDefaults(v)
	mediaConfig.setDefaults(v)
	mqConfig.setDefaults(v)
	kvConfig.setDefaults(v)
	logConfig.setDefaults(v)
	authConfig.setDefaults(v)
	metricsConfig.setDefaults(v)
	rateLimitConfig.setDefaults(v)
	breakerConfig.setDefaults(v)
	reconcileConfig.setDefaults(v)
}

func reloadConfigs(v *viper.Viper, isHotReload bool) {
	if !isHotReload {
		return
	}
	// 启用配置热重载
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("Config file changed:", e.Name)
		fmt.Println("Reloading configuration...")

		if err := v.Unmarshal(&globalConfig); err != nil {
			fmt.Printf("Error reloading config: %v\n", err)
		}
	})
	v.WatchConfig()
}

// GetConfig 返回全局配置实例.
func GetConfig() *AppConfig {
	return &globalConfig
}

func GetViper() *viper.Viper {
	return appViper
}
