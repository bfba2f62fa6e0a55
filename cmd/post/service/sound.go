package service

import (
	"context"

	"KizombaTok.com/cmd/model"
	"KizombaTok.com/cmd/post/dal/db"
	"KizombaTok.com/pkg/errno"
)

type SoundService struct {
	ctx context.Context
}

func NewSoundService(ctx context.Context) *SoundService {
	return &SoundService{ctx: ctx}
}

type SoundDetail struct {
	Original *model.PostInfo
	Posts    []*model.PostInfo
	UseCount int64
}

// Detail 音频聚合页 原帖加上所有翻跳作品 翻跳按播放量倒序
func (s *SoundService) Detail(soundPostId int64) (*SoundDetail, error) {
	original, err := db.GetPost(s.ctx, soundPostId)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, errno.RecordNotFoundErr
	}
	reused, useCount, err := db.GetPostsBySound(s.ctx, soundPostId)
	if err != nil {
		return nil, err
	}

	withOriginal := append([]*model.Post{original}, reused...)
	infos, err := attachAuthors(s.ctx, withOriginal)
	if err != nil {
		return nil, err
	}
	return &SoundDetail{
		Original: infos[0],
		Posts:    infos[1:],
		UseCount: useCount,
	}, nil
}
