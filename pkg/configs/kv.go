package configs

import "github.com/spf13/viper"

// KVType 枚举缓存后端类型.
type KVType string

const (
	KVTypeMemory KVType = "memory"
	KVTypeRedis  KVType = "redis"

	DefaultKVTTLSeconds = 60 // 默认缓存有效期（秒）
)

// KVConfig 项目与标签枚举结果的缓存配置.
type KVConfig struct {
	Type       KVType        `mapstructure:"type"        rule:"oneof=memory redis"`
	TTLSeconds int           `mapstructure:"ttl_seconds" rule:"min=1,max=3600"`
	Redis      RedisKVConfig `mapstructure:"redis"`
}

// RedisKVConfig Redis 缓存后端配置.
type RedisKVConfig struct {
	Addr     string `mapstructure:"addr"     rule:"hostname_port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"       rule:"min=0,max=15"`
}

func (c *KVConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("kv.type", KVTypeMemory)
	v.SetDefault("kv.ttl_seconds", DefaultKVTTLSeconds)
	v.SetDefault("kv.redis.addr", "localhost:6379")
	v.SetDefault("kv.redis.password", "")
	v.SetDefault("kv.redis.db", 0)
}
