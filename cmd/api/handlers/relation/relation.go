package relation

import (
	"context"

	"KizombaTok.com/cmd/api/handlers"
	"KizombaTok.com/cmd/relation/service"
	"KizombaTok.com/pkg/errno"
	"KizombaTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type FollowParam struct {
	UserId int64 `json:"user_id"`
}

func Follow(ctx context.Context, c *app.RequestContext) {
	uid, err := jwt.GetUserID(c)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req FollowParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	result, err := service.NewRelationService(ctx).ToggleFollow(uid, req.UserId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, result)
}

type StatsParam struct {
	UserId int64 `query:"user_id"`
}

// Stats 主页统计 附带viewer对该用户的关注状态
func Stats(ctx context.Context, c *app.RequestContext) {
	var req StatsParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	stats, err := service.NewStatsService(ctx).Stats(req.UserId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	following := false
	if viewerId := jwt.CurrentUserID(ctx, c); viewerId != 0 && viewerId != req.UserId {
		following, err = service.NewRelationService(ctx).IsFollowing(viewerId, req.UserId)
		if err != nil {
			handlers.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"stats":     stats,
		"following": following,
	})
}
