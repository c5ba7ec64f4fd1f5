package configs

import (
	"github.com/spf13/viper"
)

// MQType 消息队列类型.
type MQType string

const (
	MQTypeNATS MQType = "nats"

	DefaultMQURL           = "localhost:4222"
	DefaultMQUser          = ""
	DefaultMQPassword      = ""
	DefaultMaxReconnects   = 5               // 默认最大重连次数
	DefaultReconnectWait   = 5               // 默认重连等待时间（秒）
	DefaultMQClientID      = "tunevault-app" // 默认客户端ID
	DefaultMQPingInterval  = 20              // 默认ping间隔（秒）
	DefaultMQBufferSize    = 32768           // 默认重连缓冲区大小（32KB）
	DefaultJetStreamEnable = false           // 默认不启用 JetStream
)

// MQConfig 消息队列配置，用于发布媒体变更事件.
type MQConfig struct {
	Enabled          bool   `mapstructure:"enabled"`
	Type             MQType `mapstructure:"type"              rule:"oneof=nats"`
	URL              string `mapstructure:"url"               rule:"hostname_port"`
	User             string `mapstructure:"user"`
	Password         string `mapstructure:"password"`
	ClientID         string `mapstructure:"client_id"`
	MaxReconnects    int    `mapstructure:"max_reconnects"    rule:"min=0,max=100"`
	ReconnectWait    int    `mapstructure:"reconnect_wait"    rule:"min=1,max=300"`
	PingInterval     int    `mapstructure:"ping_interval"     rule:"min=1,max=300"`
	BufferSize       int    `mapstructure:"buffer_size"       rule:"min=1024,max=1048576"`
	JetStreamEnabled bool   `mapstructure:"jetstream_enabled"`
}

// GetMQType 返回当前配置的消息队列类型.
func (c *MQConfig) GetMQType() MQType {
	return c.Type
}

// setDefaults 设置MQ配置的默认值.
func (c *MQConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("mq.enabled", false)
	v.SetDefault("mq.type", MQTypeNATS)
	v.SetDefault("mq.url", DefaultMQURL)
	v.SetDefault("mq.user", DefaultMQUser)
	v.SetDefault("mq.password", DefaultMQPassword)
	v.SetDefault("mq.client_id", DefaultMQClientID)
	v.SetDefault("mq.max_reconnects", DefaultMaxReconnects)
	v.SetDefault("mq.reconnect_wait", DefaultReconnectWait)
	v.SetDefault("mq.ping_interval", DefaultMQPingInterval)
	v.SetDefault("mq.buffer_size", DefaultMQBufferSize)
	v.SetDefault("mq.jetstream_enabled", DefaultJetStreamEnable)
}
