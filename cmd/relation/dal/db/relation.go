package db

import (
	"context"

	"KizombaTok.com/cmd/model"
	"github.com/pkg/errors"
)

func CreateFollow(ctx context.Context, follow *model.Follow) error {
	return DB.WithContext(ctx).Create(follow).Error
}

func DeleteFollow(ctx context.Context, followerId, followingId int64) error {
	result := DB.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerId, followingId).
		Delete(&model.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("No rows has been affected")
	}
	return nil
}

func HasFollow(ctx context.Context, followerId, followingId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerId, followingId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func CountFollowers(ctx context.Context, userId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Follow{}).Where("following_id = ?", userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func CountFollowing(ctx context.Context, userId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetRecentFollowers 最近关注该用户的记录 活动中心的关注事件来源
func GetRecentFollowers(ctx context.Context, userId int64, limit int) ([]*model.Follow, error) {
	var follows []*model.Follow
	err := DB.WithContext(ctx).Model(&model.Follow{}).
		Where("following_id = ?", userId).
		Order("created_at DESC").
		Limit(limit).
		Find(&follows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetRecentFollowers failed,err:%v", err)
	}
	return follows, nil
}
