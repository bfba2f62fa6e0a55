package cache

import (
	"context"

	"KizombaTok.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

func Load() {
	rdb = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		hlog.Info("redis ping failed: ", err)
	}
}

// Client 暴露给各领域缓存管理器
func Client() *redis.Client {
	return rdb
}
