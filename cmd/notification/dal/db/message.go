package db

import (
	"context"

	"KizombaTok.com/cmd/model"
	"github.com/pkg/errors"
)

func InsertMessage(ctx context.Context, message *model.Message) error {
	if err := DB.WithContext(ctx).Create(message).Error; err != nil {
		return errors.Wrapf(err, "InsertMessage failed,err:%v", err)
	}
	return nil
}

// CountUnread 未读角标
func CountUnread(ctx context.Context, userId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Message{}).
		Where("user_id = ? AND `read` = ?", userId, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkAllRead 打开收件箱时一次性清零
func MarkAllRead(ctx context.Context, userId int64) error {
	err := DB.WithContext(ctx).Model(&model.Message{}).
		Where("user_id = ? AND `read` = ?", userId, false).
		Update("read", true).Error
	if err != nil {
		return errors.Wrapf(err, "MarkAllRead failed,err:%v", err)
	}
	return nil
}
