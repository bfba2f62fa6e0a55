package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"KizombaTok.com/pkg/cache"
	goredis "github.com/redis/go-redis/v9"
)

// 未读角标的短时缓存 30秒内的轮询直接命中
const (
	unreadCountKey    = "inbox:unread:%d"
	unreadCountExpire = 30 * time.Second
)

// GetCachedUnread 未命中时返回 miss=false
func GetCachedUnread(ctx context.Context, userId int64) (int64, bool, error) {
	key := fmt.Sprintf(unreadCountKey, userId)
	val, err := cache.Client().Get(ctx, key).Result()
	if err != nil {
		if err == goredis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get unread count: %w", err)
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse unread count: %w", err)
	}
	return count, true, nil
}

func SetCachedUnread(ctx context.Context, userId, count int64) error {
	key := fmt.Sprintf(unreadCountKey, userId)
	return cache.Client().Set(ctx, key, count, unreadCountExpire).Err()
}

// InvalidateUnread 新消息写入或清零后失效缓存
func InvalidateUnread(ctx context.Context, userId int64) error {
	key := fmt.Sprintf(unreadCountKey, userId)
	return cache.Client().Del(ctx, key).Err()
}
