package post

import (
	"context"
	"os"
	"path/filepath"

	"KizombaTok.com/cmd/api/handlers"
	"KizombaTok.com/cmd/post/service"
	"KizombaTok.com/pkg/errno"
	"KizombaTok.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type FeedParam struct {
	PinPostId int64 `query:"pin_post_id"`
}

// Feed 首页信息流 pin_post_id用于深链置顶
func Feed(ctx context.Context, c *app.RequestContext) {
	var req FeedParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	posts, err := service.NewFeedService(ctx).Feed(req.PinPostId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, posts)
}

type DiscoverParam struct {
	Keyword string `query:"keyword"`
}

func Discover(ctx context.Context, c *app.RequestContext) {
	var req DiscoverParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	result, err := service.NewDiscoveryService(ctx).Discover(req.Keyword)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"posts": result.Posts,
		"users": result.Users,
	})
}

type SoundParam struct {
	PostId int64 `query:"post_id"`
}

// Sound 音频聚合页 post_id为音频来源帖子
func Sound(ctx context.Context, c *app.RequestContext) {
	var req SoundParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	detail, err := service.NewSoundService(ctx).Detail(req.PostId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"original":  detail.Original,
		"posts":     detail.Posts,
		"use_count": detail.UseCount,
	})
}

type PublishParam struct {
	Content   string `form:"content"`
	MediaType string `form:"media_type"`
	SoundId   int64  `form:"sound_id"`
}

// Publish multipart表单 素材字段名media 先落临时文件再传对象存储
func Publish(ctx context.Context, c *app.RequestContext) {
	uid, err := jwt.GetUserID(c)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req PublishParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	fileHeader, err := c.FormFile("media")
	if err != nil {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("media file is required"), nil)
		return
	}

	tmpDir, err := os.MkdirTemp("", "kizombatok-upload-*")
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer os.RemoveAll(tmpDir)
	tmpPath := filepath.Join(tmpDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	post, err := service.NewPublishService(ctx).Publish(&service.PublishRequest{
		UserId:      uid,
		Content:     req.Content,
		MediaType:   req.MediaType,
		ContentType: fileHeader.Header.Get("Content-Type"),
		FilePath:    tmpPath,
		SoundId:     req.SoundId,
	})
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, post)
}

type VisitParam struct {
	PostId int64 `json:"post_id"`
}

func Visit(ctx context.Context, c *app.RequestContext) {
	var req VisitParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewVisitService(ctx).Visit(req.PostId); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, nil)
}

type ProfilePostsParam struct {
	UserId int64 `query:"user_id"`
	Page   int64 `query:"page"`
}

func ProfilePosts(ctx context.Context, c *app.RequestContext) {
	var req ProfilePostsParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	posts, err := service.NewProfilePostService(ctx).Posts(req.UserId, req.Page)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, posts)
}

type LikedPostsParam struct {
	UserId int64 `query:"user_id"`
}

func LikedPosts(ctx context.Context, c *app.RequestContext) {
	var req LikedPostsParam
	if err := c.BindAndValidate(&req); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	posts, err := service.NewProfilePostService(ctx).LikedPosts(req.UserId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, posts)
}
