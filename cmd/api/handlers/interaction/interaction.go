package interaction

import (
	"context"

	"KizombaTok.com/cmd/api/handlers"
	"KizombaTok.com/cmd/interaction/service"
	"KizombaTok.com/pkg/errno"
	"KizombaTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type LikeParam struct {
	PostId int64 `json:"post_id"`
}

func Like(ctx context.Context, c *app.RequestContext) {
	uid, err := jwt.GetUserID(c)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req LikeParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	result, err := service.NewLikeService(ctx).ToggleLike(uid, req.PostId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, result)
}

type CommentLikeParam struct {
	CommentId int64 `json:"comment_id"`
}

func CommentLike(ctx context.Context, c *app.RequestContext) {
	uid, err := jwt.GetUserID(c)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req CommentLikeParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	result, err := service.NewLikeService(ctx).ToggleCommentLike(uid, req.CommentId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, result)
}

type CreateCommentParam struct {
	PostId   int64  `json:"post_id"`
	ParentId int64  `json:"parent_id"`
	Content  string `json:"content"`
}

func CreateComment(ctx context.Context, c *app.RequestContext) {
	uid, err := jwt.GetUserID(c)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req CreateCommentParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	comment, err := service.NewCommentService(ctx).PostComment(&service.PostCommentRequest{
		UserId:   uid,
		PostId:   req.PostId,
		ParentId: req.ParentId,
		Content:  req.Content,
	})
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, comment)
}

type ListCommentsParam struct {
	PostId int64 `query:"post_id"`
}

// ListComments 公开接口 登录态用于标记viewer是否点过赞
func ListComments(ctx context.Context, c *app.RequestContext) {
	var req ListCommentsParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId := jwt.CurrentUserID(ctx, c)
	comments, err := service.NewCommentService(ctx).ListComments(req.PostId, viewerId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, comments)
}

type SummaryParam struct {
	PostId int64 `query:"post_id"`
}

func Summary(ctx context.Context, c *app.RequestContext) {
	var req SummaryParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId := jwt.CurrentUserID(ctx, c)
	summary, err := service.NewSummaryService(ctx).Summary(req.PostId, viewerId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, summary)
}
