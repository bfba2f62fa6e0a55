package service

import (
	"context"

	interactiondb "KizombaTok.com/cmd/interaction/dal/db"
	"KizombaTok.com/cmd/model"
	"KizombaTok.com/cmd/post/dal/db"
	"KizombaTok.com/pkg/constants"
)

type ProfilePostService struct {
	ctx context.Context
}

func NewProfilePostService(ctx context.Context) *ProfilePostService {
	return &ProfilePostService{ctx: ctx}
}

// Posts 主页作品栏 page从1开始 每页固定条数
func (s *ProfilePostService) Posts(uid int64, page int64) ([]*model.Post, error) {
	if page < 1 {
		page = 1
	}
	offset := int(page-1) * constants.ProfilePageSize
	return db.GetPostsByUser(s.ctx, uid, offset, constants.ProfilePageSize)
}

// LikedPosts 主页喜欢栏 按点赞时间倒序
func (s *ProfilePostService) LikedPosts(uid int64) ([]*model.Post, error) {
	pids, err := interactiondb.GetLikedPostIds(s.ctx, uid)
	if err != nil {
		return nil, err
	}
	posts, err := db.GetPostsByIds(s.ctx, pids)
	if err != nil {
		return nil, err
	}
	byId := make(map[int64]*model.Post, len(posts))
	for _, p := range posts {
		byId[p.PostId] = p
	}
	ordered := make([]*model.Post, 0, len(pids))
	for _, pid := range pids {
		if p, ok := byId[pid]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}
