package service

import (
	"context"

	interactiondb "KizombaTok.com/cmd/interaction/dal/db"
	postdb "KizombaTok.com/cmd/post/dal/db"
	"KizombaTok.com/cmd/relation/dal/db"
)

// UserStats 用户主页的三项统计
type UserStats struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
	Likes     int64 `json:"likes"`
}

type StatsService struct {
	ctx context.Context
}

func NewStatsService(ctx context.Context) *StatsService {
	return &StatsService{ctx: ctx}
}

// Stats 粉丝数 关注数 以及全部作品收到的点赞总数
func (s *StatsService) Stats(userId int64) (*UserStats, error) {
	followers, err := db.CountFollowers(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	following, err := db.CountFollowing(s.ctx, userId)
	if err != nil {
		return nil, err
	}

	posts, err := postdb.GetPostsByUser(s.ctx, userId, 0, -1)
	if err != nil {
		return nil, err
	}
	pids := make([]int64, 0, len(posts))
	for _, p := range posts {
		pids = append(pids, p.PostId)
	}
	likes, err := interactiondb.CountReactionsByPostIds(s.ctx, pids)
	if err != nil {
		return nil, err
	}

	return &UserStats{Followers: followers, Following: following, Likes: likes}, nil
}
