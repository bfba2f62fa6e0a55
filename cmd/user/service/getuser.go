package service

import (
	"context"

	"KizombaTok.com/cmd/model"
	"KizombaTok.com/cmd/user/dal/db"
	"KizombaTok.com/pkg/errno"
)

type GetUserService struct {
	ctx context.Context
}

func NewGetUserService(ctx context.Context) *GetUserService {
	return &GetUserService{ctx: ctx}
}

func (s *GetUserService) GetUser(uid int64) (*model.User, error) {
	user, err := db.GetUser(s.ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errno.RecordNotFoundErr
	}
	return user, nil
}
