package authfunc

import (
	"context"

	"KizombaTok.com/cmd/api/handlers"
	"KizombaTok.com/pkg/errno"
	"KizombaTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// Auth 双token鉴权中间件
// access-token有效直接放行 过期后refresh-token有效则续签并放行
func Auth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if jwt.IsAccessTokenAvailable(ctx, c) {
			c.Next(ctx)
			return
		}
		if jwt.IsRefreshTokenAvailable(ctx, c) {
			jwt.RenewAccessToken(ctx, c)
			c.Next(ctx)
			return
		}
		handlers.SendResponse(c, errno.TokenInvalidErr, nil)
		c.Abort()
	}
}
