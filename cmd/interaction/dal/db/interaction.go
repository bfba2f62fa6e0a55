package db

import (
	"context"

	"KizombaTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

// GetCommentsByPost 帖子的全部评论 创建时间倒序 层级在service里组装
func GetCommentsByPost(ctx context.Context, postId int64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ?", postId).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetCommentsByPost failed,err:%v", err)
	}
	return comments, nil
}

func GetPostCommentCount(ctx context.Context, postId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("post_id = ?", postId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func GetComment(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// CountRecentCommentsByUser 评论频控的数据来源
func CountRecentCommentsByUser(ctx context.Context, userId int64, since string) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("user_id = ? AND created_at > ?", userId, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func CreateReaction(ctx context.Context, reaction *model.Reaction) error {
	return DB.WithContext(ctx).Create(reaction).Error
}

func DeleteReaction(ctx context.Context, postId, userId int64) error {
	result := DB.WithContext(ctx).Where("post_id = ? AND user_id = ?", postId, userId).Delete(&model.Reaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("No rows has been affected")
	}
	return nil
}

func HasReaction(ctx context.Context, postId, userId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Reaction{}).
		Where("post_id = ? AND user_id = ?", postId, userId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func GetPostReactionCount(ctx context.Context, postId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Reaction{}).Where("post_id = ?", postId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountReactionsByPostIds 用户收到的总点赞数 主页统计使用
func CountReactionsByPostIds(ctx context.Context, postIds []int64) (count int64, err error) {
	if len(postIds) == 0 {
		return 0, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Reaction{}).Where("post_id IN (?)", postIds).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikedPostIds 用户点赞过的帖子 点赞时间倒序
func GetLikedPostIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	err := DB.WithContext(ctx).Model(&model.Reaction{}).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Select("post_id").
		Scan(&list).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetLikedPostIds failed,err:%v", err)
	}
	return list, nil
}

func CreateCommentReaction(ctx context.Context, reaction *model.CommentReaction) error {
	return DB.WithContext(ctx).Create(reaction).Error
}

func DeleteCommentReaction(ctx context.Context, commentId, userId int64) error {
	result := DB.WithContext(ctx).Where("comment_id = ? AND user_id = ?", commentId, userId).Delete(&model.CommentReaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("No rows has been affected")
	}
	return nil
}

func HasCommentReaction(ctx context.Context, commentId, userId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.CommentReaction{}).
		Where("comment_id = ? AND user_id = ?", commentId, userId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func GetCommentReactionCount(ctx context.Context, commentId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.CommentReaction{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
