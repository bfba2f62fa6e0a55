package notification

import (
	"context"

	"KizombaTok.com/cmd/api/handlers"
	"KizombaTok.com/cmd/notification/service"
	"KizombaTok.com/pkg/errno"
	"KizombaTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type ActivitiesParam struct {
	Kind string `query:"kind"`
}

// Activities 活动中心 kind可选 follow/like/comment
func Activities(ctx context.Context, c *app.RequestContext) {
	uid, err := jwt.GetUserID(c)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req ActivitiesParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	activities, err := service.NewNotificationService(ctx).Activities(uid, req.Kind)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, activities)
}

func Unread(ctx context.Context, c *app.RequestContext) {
	uid, err := jwt.GetUserID(c)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	count, err := service.NewNotificationService(ctx).UnreadCount(uid)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]int64{"unread": count})
}

func MarkRead(ctx context.Context, c *app.RequestContext) {
	uid, err := jwt.GetUserID(c)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewNotificationService(ctx).MarkAllRead(uid); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, nil)
}
