package service

import (
	"context"

	"KizombaTok.com/cmd/model"
	"KizombaTok.com/cmd/user/dal/db"
	"KizombaTok.com/pkg/errno"
	"KizombaTok.com/pkg/jwt"
	"KizombaTok.com/pkg/utils"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

type LoginResponse struct {
	User         *model.User
	AccessToken  string
	RefreshToken string
}

// LoginUser 用户名或邮箱登录 校验通过后签发双token
func (s *LoginUserService) LoginUser(account, password string) (*LoginResponse, error) {
	user, err := db.CheckUser(s.ctx, account)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errno.AuthorizationFailedErr.WithMessage("account not found")
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, errno.AuthorizationFailedErr.WithMessage("wrong password")
	}

	accessToken, err := jwt.GenerateAccessToken(user.UserId)
	if err != nil {
		return nil, err
	}
	refreshToken, err := jwt.GenerateRefreshToken(user.UserId)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
