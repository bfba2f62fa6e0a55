package redis

import (
	"context"
	"fmt"
	"time"

	"KizombaTok.com/pkg/cache"
)

// 评论频控 每用户每分钟一个计数窗口
const commentRateLimitKey = "comment_rate_limit:%d"

// IncrCommentRate 窗口计数加一并返回当前值 首次写入时设置过期
func IncrCommentRate(ctx context.Context, userId int64) (int64, error) {
	key := fmt.Sprintf(commentRateLimitKey, userId)
	count, err := cache.Client().Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to incr comment rate: %w", err)
	}
	if count == 1 {
		if err := cache.Client().Expire(ctx, key, time.Minute).Err(); err != nil {
			return count, fmt.Errorf("failed to expire comment rate key: %w", err)
		}
	}
	return count, nil
}
