package jwt

import (
	"context"
	"time"

	"KizombaTok.com/config"
	"KizombaTok.com/pkg/constants"
	"KizombaTok.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/golang-jwt/jwt/v5"
)

// 双token机制 access-token短期有效 refresh-token长期有效
// access-token过期但refresh-token有效时 中间件签发新的access-token

const (
	AccessTokenHeader  = "Access-Token"
	RefreshTokenHeader = "Refresh-Token"
	NewAccessTokenKey  = "New-Access-Token"
)

var (
	accessSecret  []byte
	refreshSecret []byte
	accessExpire  time.Duration
	refreshExpire time.Duration
)

func AccessTokenJwtInit() {
	accessSecret = []byte(config.ConfigInfo.Jwt.AccessSecret)
	accessExpire = time.Duration(config.ConfigInfo.Jwt.AccessExpire) * time.Minute
}

func RefreshTokenJwtInit() {
	refreshSecret = []byte(config.ConfigInfo.Jwt.RefreshSecret)
	refreshExpire = time.Duration(config.ConfigInfo.Jwt.RefreshExpire) * time.Minute
}

type sessionClaims struct {
	UserId int64 `json:"user_id"`
	jwt.RegisteredClaims
}

func generate(uid int64, secret []byte, expire time.Duration) (string, error) {
	claims := sessionClaims{
		UserId: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "KizombaTok",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func GenerateAccessToken(uid int64) (string, error) {
	return generate(uid, accessSecret, accessExpire)
}

func GenerateRefreshToken(uid int64) (string, error) {
	return generate(uid, refreshSecret, refreshExpire)
}

func parse(tokenString string, secret []byte) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errno.TokenInvalidErr
		}
		return secret, nil
	})
	if err != nil {
		return 0, errno.TokenInvalidErr
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return 0, errno.TokenInvalidErr
	}
	return claims.UserId, nil
}

// IsAccessTokenAvailable 校验access-token 成功后把用户ID写入RequestContext
func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	tokenString := string(c.GetHeader(AccessTokenHeader))
	if tokenString == "" {
		return false
	}
	uid, err := parse(tokenString, accessSecret)
	if err != nil {
		return false
	}
	c.Set(constants.CtxUserIDKey, uid)
	return true
}

func IsRefreshTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	tokenString := string(c.GetHeader(RefreshTokenHeader))
	if tokenString == "" {
		return false
	}
	uid, err := parse(tokenString, refreshSecret)
	if err != nil {
		return false
	}
	c.Set(constants.CtxUserIDKey, uid)
	return true
}

// RenewAccessToken refresh-token有效时签发新的access-token并写入响应头
func RenewAccessToken(ctx context.Context, c *app.RequestContext) {
	uid, err := GetUserID(c)
	if err != nil {
		return
	}
	token, err := GenerateAccessToken(uid)
	if err != nil {
		hlog.Errorf("failed to renew access token: %v", err)
		return
	}
	c.Header(NewAccessTokenKey, token)
}

// GetUserID 取出鉴权中间件写入的用户ID
func GetUserID(c *app.RequestContext) (int64, error) {
	v, ok := c.Get(constants.CtxUserIDKey)
	if !ok {
		return 0, errno.AuthorizationFailedErr
	}
	uid, ok := v.(int64)
	if !ok {
		return 0, errno.AuthorizationFailedErr
	}
	return uid, nil
}

// CurrentUserID 公开接口下的可选登录态 没有session时返回0
func CurrentUserID(ctx context.Context, c *app.RequestContext) int64 {
	if IsAccessTokenAvailable(ctx, c) {
		uid, _ := GetUserID(c)
		return uid
	}
	return 0
}
