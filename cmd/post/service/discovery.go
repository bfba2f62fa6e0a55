package service

import (
	"context"
	"strings"

	"KizombaTok.com/cmd/model"
	"KizombaTok.com/cmd/post/dal/db"
	userdb "KizombaTok.com/cmd/user/dal/db"
	"KizombaTok.com/pkg/constants"
)

type DiscoveryService struct {
	ctx context.Context
}

func NewDiscoveryService(ctx context.Context) *DiscoveryService {
	return &DiscoveryService{ctx: ctx}
}

type DiscoveryResult struct {
	Posts []*model.PostInfo
	Users []*model.User
}

// Discover 发现页检索 关键词为空时回退到热门榜
// 帖子结果为文案命中与作者命中的并集 文案命中在前 按首次出现去重
func (s *DiscoveryService) Discover(keyword string) (*DiscoveryResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.trending()
	}

	users, err := userdb.SearchUsers(s.ctx, keyword, constants.DefaultLimit)
	if err != nil {
		return nil, err
	}
	contentHits, err := db.SearchPostsByContent(s.ctx, keyword, constants.DefaultLimit)
	if err != nil {
		return nil, err
	}
	uids := make([]int64, 0, len(users))
	for _, u := range users {
		uids = append(uids, u.UserId)
	}
	authorHits, err := db.GetPostsByUserIds(s.ctx, uids, constants.DefaultLimit)
	if err != nil {
		return nil, err
	}

	merged := DedupePosts(contentHits, authorHits)
	infos, err := attachAuthors(s.ctx, merged)
	if err != nil {
		return nil, err
	}
	return &DiscoveryResult{Posts: infos, Users: users}, nil
}

// trending 全量帖子按翻跳热度排序 平级看播放量 截断到榜单长度
func (s *DiscoveryService) trending() (*DiscoveryResult, error) {
	posts, err := db.GetAllPosts(s.ctx)
	if err != nil {
		return nil, err
	}
	ranked := RankPosts(posts, ByViews, 0)
	if len(ranked) > constants.DiscoveryTrendingLimit {
		ranked = ranked[:constants.DiscoveryTrendingLimit]
	}
	infos, err := attachAuthors(s.ctx, ranked)
	if err != nil {
		return nil, err
	}
	return &DiscoveryResult{Posts: infos, Users: []*model.User{}}, nil
}
