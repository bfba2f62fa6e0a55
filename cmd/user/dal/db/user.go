package db

import (
	"context"

	"KizombaTok.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed,err:%v", err)
	}
	return nil
}

// RemoveDuplicate 检查用户名是否已被占用 flag为false表示重复
func RemoveDuplicate(ctx context.Context, username string) (error, bool) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", username).Count(&count).Error; err != nil {
		return err, false
	}
	if count > 0 {
		return nil, false
	}
	return nil, true
}

// CheckUser 按用户名或邮箱查找用户 用于登录
func CheckUser(ctx context.Context, account string) (*model.User, error) {
	var user model.User
	err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_name = ? OR email = ?", account, account).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "CheckUser failed,err:%v", err)
	}
	return &user, nil
}

func GetUser(ctx context.Context, uid int64) (*model.User, error) {
	var user model.User
	err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", uid).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetUser failed,err:%v", err)
	}
	return &user, nil
}

// GetUsersByIds 批量获取用户 用于列表里补全作者资料
func GetUsersByIds(ctx context.Context, uids []int64) (map[int64]*model.User, error) {
	result := make(map[int64]*model.User, len(uids))
	if len(uids) == 0 {
		return result, nil
	}
	var users []*model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id IN (?)", uids).Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUsersByIds failed,err:%v", err)
	}
	for _, u := range users {
		result[u.UserId] = u
	}
	return result, nil
}

// SearchUsers 用户名或昵称的模糊匹配 发现页的资料检索
func SearchUsers(ctx context.Context, keyword string, limit int) ([]*model.User, error) {
	var users []*model.User
	pattern := "%" + keyword + "%"
	err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_name LIKE ? OR name LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, errors.Wrapf(err, "SearchUsers failed,err:%v", err)
	}
	return users, nil
}

func UpdateUser(ctx context.Context, uid int64, fields map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", uid).Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "UpdateUser failed,err:%v", err)
	}
	return nil
}

func UpdateAvatar(ctx context.Context, uid int64, avatarUrl string) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", uid).Update("avatar_url", avatarUrl).Error; err != nil {
		return errors.Wrapf(err, "UpdateAvatar failed,err:%v", err)
	}
	return nil
}
