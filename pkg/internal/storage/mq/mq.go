// Package mq 消息队列客户端，基于 watermill 抽象，通过工厂注册机制支持多种后端.
package mq

import (
	"context"
	"fmt"
	"strings"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/yeisme/tunevault/pkg/configs"
	nlog "github.com/yeisme/tunevault/pkg/log"
)

// Client 消息队列客户端，封装 watermill 的发布/订阅接口.
type Client struct {
	publisher  message.Publisher
	subscriber message.Subscriber

	cfg configs.MQConfig
}

// Factory 根据配置构建某种后端的发布者与订阅者.
type Factory func(ctx context.Context, cfg *configs.MQConfig, logger watermill.LoggerAdapter) (message.Publisher, message.Subscriber, error)

var factories = make(map[configs.MQType]Factory)

// RegisterFactory 注册一种消息队列后端，由各后端文件的 init 调用.
func RegisterFactory(mqType configs.MQType, f Factory) {
	factories[mqType] = f
}

// GetRegisteredMQTypes 返回已注册的消息队列后端类型.
func GetRegisteredMQTypes() []configs.MQType {
	types := make([]configs.MQType, 0, len(factories))
	for t := range factories {
		types = append(types, t)
	}

	return types
}

// New 按配置初始化消息队列客户端.
func New(ctx context.Context, cfg *configs.MQConfig) (*Client, error) {
	f, ok := factories[configs.MQType(strings.ToLower(string(cfg.Type)))]
	if !ok {
		return nil, fmt.Errorf("unsupported mq type: %s (registered: %v)", cfg.Type, GetRegisteredMQTypes())
	}

	l := nlog.Logger().With().Str("component", "mq").Logger()

	pub, sub, err := f(ctx, cfg, &zerologAdapter{l: &l})
	if err != nil {
		return nil, fmt.Errorf("create mq client (%s): %w", cfg.Type, err)
	}

	return &Client{publisher: pub, subscriber: sub, cfg: *cfg}, nil
}

// Publish 向主题发布消息.
func (c *Client) Publish(topic string, messages ...*message.Message) error {
	return c.publisher.Publish(topic, messages...)
}

// Subscribe 订阅主题.
func (c *Client) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return c.subscriber.Subscribe(ctx, topic)
}

// Close 关闭底层连接.
func (c *Client) Close() error {
	if err := c.publisher.Close(); err != nil {
		return err
	}

	return c.subscriber.Close()
}

// GetConfig 返回消息队列配置.
func (c *Client) GetConfig() configs.MQConfig {
	return c.cfg
}
