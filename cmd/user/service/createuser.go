package service

import (
	"context"
	"strings"
	"time"

	"KizombaTok.com/cmd/model"
	"KizombaTok.com/cmd/user/dal/db"
	"KizombaTok.com/pkg/constants"
	"KizombaTok.com/pkg/errno"
	"KizombaTok.com/pkg/utils"
)

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

type RegisterRequest struct {
	UserName string
	Email    string
	Password string
}

// CreateUser 注册新用户 密码bcrypt加密 用户名和邮箱都不允许重复
func (s *CreateUserService) CreateUser(req *RegisterRequest) (*model.User, error) {
	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.TrimSpace(req.Email)
	if req.UserName == "" {
		req.UserName = utils.UsernameFromEmail(req.Email)
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, errno.ParamErr.WithMessage("invalid email address")
	}
	if len(req.Password) < 6 {
		return nil, errno.ParamErr.WithMessage("password must be at least 6 characters")
	}

	err, ok := db.RemoveDuplicate(s.ctx, req.UserName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errno.UserAlreadyExistErr
	}
	existing, err := db.CheckUser(s.ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errno.UserAlreadyExistErr.WithMessage("email already registered")
	}

	hashed, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserId:    utils.GenerateID(),
		UserName:  req.UserName,
		Name:      req.UserName,
		Email:     req.Email,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateUser(s.ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
