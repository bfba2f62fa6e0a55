package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

// ActivityHandler 消费侧回调 由调用方注入 避免mq层依赖存储层
type ActivityHandler func(ctx context.Context, event *ActivityEvent) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler ActivityHandler
}

func NewConsumer(rabbitmqURL string, handler ActivityHandler) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		ActivityEventQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare activity event queue: %w", err)
	}

	return &Consumer{
		conn:    conn,
		channel: ch,
		handler: handler,
	}, nil
}

// Start 拉起消费循环 直到ctx取消
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(
		ActivityEventQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	hlog.Info("Activity event consumer started")

	for {
		select {
		case <-ctx.Done():
			hlog.Info("Activity event consumer stopped")
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			c.handleDelivery(ctx, d)
		}
	}
}

func (c *Consumer) handleDelivery(ctx context.Context, d amqp091.Delivery) {
	var event ActivityEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		hlog.Errorf("Failed to unmarshal activity event: %v", err)
		// 无法解析的消息直接丢弃 重回队列也不会成功
		d.Nack(false, false)
		return
	}

	if err := c.handler(ctx, &event); err != nil {
		hlog.Errorf("Failed to handle activity event %s: %v", event.EventID, err)
		d.Nack(false, true)
		return
	}
	d.Ack(false)
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
