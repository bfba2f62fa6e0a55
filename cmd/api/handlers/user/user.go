package user

import (
	"context"
	"io"

	"KizombaTok.com/cmd/api/handlers"
	"KizombaTok.com/cmd/user/service"
	"KizombaTok.com/pkg/errno"
	"KizombaTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type RegisterParam struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register 注册 成功后直接返回登录态
func Register(ctx context.Context, c *app.RequestContext) {
	var req RegisterParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewCreateUserService(ctx).CreateUser(&service.RegisterRequest{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	resp, err := service.NewLoginUserService(ctx).LoginUser(user.UserName, req.Password)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"user":          resp.User,
		"access_token":  resp.AccessToken,
		"refresh_token": resp.RefreshToken,
	})
}

type LoginParam struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

func Login(ctx context.Context, c *app.RequestContext) {
	var req LoginParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewLoginUserService(ctx).LoginUser(req.Account, req.Password)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"user":          resp.User,
		"access_token":  resp.AccessToken,
		"refresh_token": resp.RefreshToken,
	})
}

type InfoParam struct {
	UserId int64 `query:"user_id"`
}

func Info(ctx context.Context, c *app.RequestContext) {
	var req InfoParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewGetUserService(ctx).GetUser(req.UserId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, user)
}

type UpdateParam struct {
	UserName string `json:"user_name"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
}

// Update 编辑资料 目标用户取自登录态
func Update(ctx context.Context, c *app.RequestContext) {
	uid, err := jwt.GetUserID(c)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req UpdateParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewUpdateUserService(ctx).UpdateUser(&service.UpdateProfileRequest{
		UserId:   uid,
		UserName: req.UserName,
		Name:     req.Name,
		Bio:      req.Bio,
	})
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, user)
}

// UploadAvatar multipart表单 字段名avatar
func UploadAvatar(ctx context.Context, c *app.RequestContext) {
	uid, err := jwt.GetUserID(c)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("avatar file is required"), nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer file.Close()
	data := make([]byte, fileHeader.Size)
	if _, err := io.ReadFull(file, data); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := service.NewAvatarService(ctx).UploadAvatar(uid, data, contentType)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]string{"avatar_url": url})
}
