package mq

import (
	"context"
	"fmt"

	"KizombaTok.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var defaultProducer *Producer

// InitProducer 建立进程级的生产者 MQ不可用时服务降级为不发事件
func InitProducer() {
	cfg := config.ConfigInfo.RabbitMq
	url := fmt.Sprintf("amqp://%s:%s@%s/", cfg.Username, cfg.Password, cfg.Addr)
	p, err := NewProducer(url)
	if err != nil {
		hlog.Errorf("Failed to connect to RabbitMQ at %s: %v", cfg.Addr, err)
		hlog.Warn("Running without activity events (RabbitMQ unavailable)")
		return
	}
	defaultProducer = p
}

// PublishActivity 失败只记录日志 事件丢失不能影响用户操作
func PublishActivity(ctx context.Context, event *ActivityEvent) {
	if defaultProducer == nil {
		return
	}
	if err := defaultProducer.PublishActivity(ctx, event); err != nil {
		hlog.Errorf("Failed to publish activity event: %v", err)
	}
}

// StartConsumer 拉起站内信的消费协程
func StartConsumer(ctx context.Context, handler ActivityHandler) {
	cfg := config.ConfigInfo.RabbitMq
	url := fmt.Sprintf("amqp://%s:%s@%s/", cfg.Username, cfg.Password, cfg.Addr)
	consumer, err := NewConsumer(url, handler)
	if err != nil {
		hlog.Errorf("Failed to start activity consumer: %v", err)
		return
	}
	go func() {
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil {
			hlog.Errorf("Activity consumer exited: %v", err)
		}
	}()
}
