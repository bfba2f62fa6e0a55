package main

import (
	"context"

	"KizombaTok.com/cmd/api/router"
	interactiondb "KizombaTok.com/cmd/interaction/dal/db"
	notificationdb "KizombaTok.com/cmd/notification/dal/db"
	notificationservice "KizombaTok.com/cmd/notification/service"
	postdb "KizombaTok.com/cmd/post/dal/db"
	relationdb "KizombaTok.com/cmd/relation/dal/db"
	userdb "KizombaTok.com/cmd/user/dal/db"
	"KizombaTok.com/config"
	"KizombaTok.com/pkg/cache"
	"KizombaTok.com/pkg/database"
	"KizombaTok.com/pkg/jwt"
	"KizombaTok.com/pkg/mq"
	"KizombaTok.com/pkg/oss"
	"KizombaTok.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/cors"
)

func Init() {
	config.Init()
	database.Init()
	userdb.Load()
	postdb.Load()
	interactiondb.Load()
	relationdb.Load()
	notificationdb.Load()
	cache.Load()
	oss.InitMinio()
	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()
	if err := utils.InitSnowflake(config.ConfigInfo.Server.WorkerId); err != nil {
		panic(err)
	}
	mq.InitProducer()
	mq.StartConsumer(context.Background(), notificationservice.HandleActivityEvent)
}

func main() {
	Init()

	addr := config.ConfigInfo.Server.Addr
	if addr == "" {
		addr = "0.0.0.0:8888"
	}
	h := server.Default(server.WithHostPorts(addr))
	h.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", jwt.AccessTokenHeader, jwt.RefreshTokenHeader},
		ExposeHeaders: []string{jwt.NewAccessTokenKey},
	}))
	router.Register(h)

	hlog.Infof("Server starting on %s", addr)
	h.Spin()
}
