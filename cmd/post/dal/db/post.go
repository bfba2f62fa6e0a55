package db

import (
	"context"

	"KizombaTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func InsertPost(ctx context.Context, post *model.Post) error {
	if err := DB.WithContext(ctx).Create(post).Error; err != nil {
		return errors.Wrapf(err, "InsertPost failed,err:%v", err)
	}
	return nil
}

// GetAllPosts 拉取全量帖子 创建时间倒序 排序核心在内存中完成
func GetAllPosts(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	if err := DB.WithContext(ctx).Model(&model.Post{}).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, errors.Wrapf(err, "GetAllPosts failed,err:%v", err)
	}
	return posts, nil
}

func GetPost(ctx context.Context, pid int64) (*model.Post, error) {
	var post model.Post
	err := DB.WithContext(ctx).Model(&model.Post{}).Where("post_id = ?", pid).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetPost failed,err:%v", err)
	}
	return &post, nil
}

func GetPostsByIds(ctx context.Context, pids []int64) ([]*model.Post, error) {
	var posts []*model.Post
	if len(pids) == 0 {
		return posts, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Post{}).Where("post_id IN (?)", pids).Find(&posts).Error; err != nil {
		return nil, errors.Wrapf(err, "GetPostsByIds failed,err:%v", err)
	}
	return posts, nil
}

// GetPostsByUser 用户主页作品栏 按页拉取
func GetPostsByUser(ctx context.Context, uid int64, offset, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := DB.WithContext(ctx).Model(&model.Post{}).
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetPostsByUser failed,err:%v", err)
	}
	return posts, nil
}

// SearchPostsByContent 文案的模糊匹配
func SearchPostsByContent(ctx context.Context, keyword string, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := DB.WithContext(ctx).Model(&model.Post{}).
		Where("content LIKE ?", "%"+keyword+"%").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, errors.Wrapf(err, "SearchPostsByContent failed,err:%v", err)
	}
	return posts, nil
}

// GetPostsByUserIds 命中资料检索的作者发布的帖子
func GetPostsByUserIds(ctx context.Context, uids []int64, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	if len(uids) == 0 {
		return posts, nil
	}
	err := DB.WithContext(ctx).Model(&model.Post{}).
		Where("user_id IN (?)", uids).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetPostsByUserIds failed,err:%v", err)
	}
	return posts, nil
}

// GetPostsBySound 使用了某条帖子音频的全部帖子 播放量倒序
func GetPostsBySound(ctx context.Context, soundId int64) ([]*model.Post, int64, error) {
	var posts []*model.Post
	var count int64
	err := DB.WithContext(ctx).Model(&model.Post{}).
		Where("sound_id = ?", soundId).
		Count(&count).
		Order("views DESC").
		Find(&posts).Error
	if err != nil {
		return nil, 0, errors.Wrapf(err, "GetPostsBySound failed,err:%v", err)
	}
	return posts, count, nil
}

// IncrPostViews 播放计数自增 行内原子更新
func IncrPostViews(ctx context.Context, pid, delta int64) error {
	err := DB.WithContext(ctx).Model(&model.Post{}).
		Where("post_id = ?", pid).
		Update("views", gorm.Expr("views + ?", delta)).Error
	if err != nil {
		return errors.Wrapf(err, "IncrPostViews failed,err:%v", err)
	}
	return nil
}
