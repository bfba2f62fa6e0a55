package service

import (
	"context"
	"strings"
	"time"

	"KizombaTok.com/cmd/model"
	"KizombaTok.com/cmd/user/dal/db"
	"KizombaTok.com/pkg/constants"
	"KizombaTok.com/pkg/errno"
)

type UpdateUserService struct {
	ctx context.Context
}

func NewUpdateUserService(ctx context.Context) *UpdateUserService {
	return &UpdateUserService{ctx: ctx}
}

type UpdateProfileRequest struct {
	UserId   int64
	UserName string
	Name     string
	Bio      string
}

// UpdateUser 编辑资料 只能改自己的 用户名必填且改名时查重
func (s *UpdateUserService) UpdateUser(req *UpdateProfileRequest) (*model.User, error) {
	req.UserName = strings.TrimSpace(req.UserName)
	if req.UserName == "" {
		return nil, errno.ParamErr.WithMessage("username is required")
	}

	current, err := db.GetUser(s.ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errno.RecordNotFoundErr
	}
	if req.UserName != current.UserName {
		err, ok := db.RemoveDuplicate(s.ctx, req.UserName)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errno.UserAlreadyExistErr.WithMessage("username already taken")
		}
	}

	fields := map[string]interface{}{
		"user_name":  req.UserName,
		"name":       strings.TrimSpace(req.Name),
		"bio":        req.Bio,
		"updated_at": time.Now().Format(constants.DataFormate),
	}
	if err := db.UpdateUser(s.ctx, req.UserId, fields); err != nil {
		return nil, err
	}
	return db.GetUser(s.ctx, req.UserId)
}
