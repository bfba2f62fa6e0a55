package router

import (
	"KizombaTok.com/cmd/api/handlers/interaction"
	"KizombaTok.com/cmd/api/handlers/notification"
	"KizombaTok.com/cmd/api/handlers/post"
	"KizombaTok.com/cmd/api/handlers/relation"
	"KizombaTok.com/cmd/api/handlers/user"
	"KizombaTok.com/cmd/api/router/authfunc"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// Register 注册全部路由 公开接口在前 需要登录态的挂鉴权中间件
func Register(h *server.Hertz) {
	v1 := h.Group("/v1")

	userGroup := v1.Group("/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.GET("/info", user.Info)
		userGroup.GET("/stats", relation.Stats)

		authed := userGroup.Group("/", authfunc.Auth())
		authed.PUT("/profile", user.Update)
		authed.POST("/avatar", user.UploadAvatar)
	}

	postGroup := v1.Group("/post")
	{
		postGroup.GET("/feed", post.Feed)
		postGroup.GET("/discover", post.Discover)
		postGroup.GET("/sound", post.Sound)
		postGroup.GET("/list", post.ProfilePosts)
		postGroup.GET("/liked", post.LikedPosts)
		postGroup.POST("/visit", post.Visit)
		postGroup.GET("/summary", interaction.Summary)
		postGroup.GET("/comments", interaction.ListComments)

		authed := postGroup.Group("/", authfunc.Auth())
		authed.POST("/publish", post.Publish)
		authed.POST("/like", interaction.Like)
		authed.POST("/comment", interaction.CreateComment)
		authed.POST("/comment/like", interaction.CommentLike)
	}

	relationGroup := v1.Group("/relation", authfunc.Auth())
	{
		relationGroup.POST("/follow", relation.Follow)
	}

	notificationGroup := v1.Group("/notification", authfunc.Auth())
	{
		notificationGroup.GET("/activities", notification.Activities)
		notificationGroup.GET("/unread", notification.Unread)
		notificationGroup.POST("/read", notification.MarkRead)
	}
}
