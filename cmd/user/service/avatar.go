package service

import (
	"context"
	"strconv"

	"KizombaTok.com/cmd/user/dal/db"
	"KizombaTok.com/pkg/errno"
	"KizombaTok.com/pkg/oss"
)

// 头像大小上限 5MB
const maxAvatarSize = 5 << 20

type AvatarService struct {
	ctx context.Context
}

func NewAvatarService(ctx context.Context) *AvatarService {
	return &AvatarService{ctx: ctx}
}

// UploadAvatar 更换头像 旧头像由对象存储侧覆盖删除
func (s *AvatarService) UploadAvatar(uid int64, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", errno.ParamErr.WithMessage("empty avatar file")
	}
	if len(data) > maxAvatarSize {
		return "", errno.MediaErr.WithMessage("avatar exceeds 5MB")
	}
	if contentType != "image/jpeg" && contentType != "image/jpg" && contentType != "image/png" {
		return "", errno.MediaErr.WithMessage("avatar must be jpeg or png")
	}

	url, err := oss.UploadAvatar(s.ctx, data, strconv.FormatInt(uid, 10), contentType)
	if err != nil {
		return "", err
	}
	if err := db.UpdateAvatar(s.ctx, uid, url); err != nil {
		return "", err
	}
	return url, nil
}
