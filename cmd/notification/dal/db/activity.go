package db

import (
	"context"

	"KizombaTok.com/cmd/model"
	"github.com/pkg/errors"
)

// GetReactionsOnUserPosts 别人对当前用户帖子的点赞 时间倒序
func GetReactionsOnUserPosts(ctx context.Context, userId int64, limit int) ([]*model.Reaction, error) {
	var reactions []*model.Reaction
	err := DB.WithContext(ctx).Model(&model.Reaction{}).
		Joins("JOIN posts ON posts.post_id = reactions.post_id").
		Where("posts.user_id = ?", userId).
		Order("reactions.created_at DESC").
		Limit(limit).
		Find(&reactions).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetReactionsOnUserPosts failed,err:%v", err)
	}
	return reactions, nil
}

// GetCommentsOnUserPosts 别人对当前用户帖子的评论 时间倒序
func GetCommentsOnUserPosts(ctx context.Context, userId int64, limit int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := DB.WithContext(ctx).Model(&model.Comment{}).
		Joins("JOIN posts ON posts.post_id = comments.post_id").
		Where("posts.user_id = ?", userId).
		Order("comments.created_at DESC").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetCommentsOnUserPosts failed,err:%v", err)
	}
	return comments, nil
}
