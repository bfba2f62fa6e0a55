package redis

import (
	"context"
	"fmt"
	"strconv"

	"KizombaTok.com/pkg/cache"
)

// 播放计数先落Redis 攒够一批再冲刷进MySQL 降低热点行的写压力
const visitCountKey = "post:visits:%d"

// IncrVisit 计数加一并返回当前未冲刷的数量
func IncrVisit(ctx context.Context, postId int64) (int64, error) {
	key := fmt.Sprintf(visitCountKey, postId)
	count, err := cache.Client().Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to incr visit count: %w", err)
	}
	return count, nil
}

// DrainVisits 取出并清零待冲刷的计数
func DrainVisits(ctx context.Context, postId int64) (int64, error) {
	key := fmt.Sprintf(visitCountKey, postId)
	val, err := cache.Client().GetDel(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to drain visit count: %w", err)
	}
	pending, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse visit count: %w", err)
	}
	return pending, nil
}
