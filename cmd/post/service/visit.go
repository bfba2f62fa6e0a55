package service

import (
	"context"

	"KizombaTok.com/cmd/post/dal/db"
	"KizombaTok.com/cmd/post/infras/redis"
	"KizombaTok.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// 攒够这么多次播放再冲刷一次MySQL
const visitFlushThreshold = 5

type VisitService struct {
	ctx context.Context
}

func NewVisitService(ctx context.Context) *VisitService {
	return &VisitService{ctx: ctx}
}

// Visit 播放上报 计数先进Redis 攒批冲刷 Redis不可用时直写库
func (s *VisitService) Visit(postId int64) error {
	post, err := db.GetPost(s.ctx, postId)
	if err != nil {
		return err
	}
	if post == nil {
		return errno.RecordNotFoundErr
	}

	pending, err := redis.IncrVisit(s.ctx, postId)
	if err != nil {
		hlog.Errorf("Visit count cache unavailable: %v", err)
		return db.IncrPostViews(s.ctx, postId, 1)
	}
	if pending < visitFlushThreshold {
		return nil
	}

	drained, err := redis.DrainVisits(s.ctx, postId)
	if err != nil {
		hlog.Errorf("Failed to drain visit counts for post %d: %v", postId, err)
		return nil
	}
	return db.IncrPostViews(s.ctx, postId, drained)
}
