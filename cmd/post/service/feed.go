package service

import (
	"context"

	"KizombaTok.com/cmd/model"
	"KizombaTok.com/cmd/post/dal/db"
	userdb "KizombaTok.com/cmd/user/dal/db"
)

type FeedService struct {
	ctx context.Context
}

func NewFeedService(ctx context.Context) *FeedService {
	return &FeedService{ctx: ctx}
}

// Feed 首页信息流 按翻跳热度排序 新帖优先
// pinPostId 非零时对应深链进入 把目标帖子顶到第一位
func (s *FeedService) Feed(pinPostId int64) ([]*model.PostInfo, error) {
	posts, err := db.GetAllPosts(s.ctx)
	if err != nil {
		return nil, err
	}
	ranked := RankPosts(posts, ByCreatedAt, pinPostId)
	return attachAuthors(s.ctx, ranked)
}

// attachAuthors 批量补全作者资料 作者缺失的帖子保留 Author 为 nil
func attachAuthors(ctx context.Context, posts []*model.Post) ([]*model.PostInfo, error) {
	uids := make([]int64, 0, len(posts))
	seen := make(map[int64]struct{}, len(posts))
	for _, post := range posts {
		if _, ok := seen[post.UserId]; ok {
			continue
		}
		seen[post.UserId] = struct{}{}
		uids = append(uids, post.UserId)
	}
	users, err := userdb.GetUsersByIds(ctx, uids)
	if err != nil {
		return nil, err
	}
	infos := make([]*model.PostInfo, 0, len(posts))
	for _, post := range posts {
		infos = append(infos, &model.PostInfo{Post: post, Author: users[post.UserId]})
	}
	return infos, nil
}
