package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// 使用Viper读取yaml配置 环境变量可以覆盖文件中的敏感项
func Init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	configPaths := []string{
		"./config",
		"../config",
		"../../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Errorf("config file not found: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
		return
	}
	logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())

	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Server.WorkerId = viper.GetInt64("server.worker_id")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")

	ConfigInfo.Minio.Endpoint = getEnvOrDefault("MINIO_ENDPOINT", viper.GetString("minio.endpoint"))
	ConfigInfo.Minio.AccessKey = getEnvOrDefault("MINIO_ACCESS_KEY", viper.GetString("minio.access_key"))
	ConfigInfo.Minio.SecretKey = getEnvOrDefault("MINIO_SECRET_KEY", viper.GetString("minio.secret_key"))
	ConfigInfo.Minio.UseSSL = getEnvOrDefault("MINIO_USE_SSL", viper.GetString("minio.use_ssl")) == "true"
	ConfigInfo.Minio.PublicHost = viper.GetString("minio.public_host")

	ConfigInfo.RabbitMq.Addr = viper.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = viper.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = viper.GetString("rabbitmq.password")

	ConfigInfo.Jwt.AccessSecret = getEnvOrDefault("JWT_ACCESS_SECRET", viper.GetString("jwt.access_secret"))
	ConfigInfo.Jwt.RefreshSecret = getEnvOrDefault("JWT_REFRESH_SECRET", viper.GetString("jwt.refresh_secret"))
	ConfigInfo.Jwt.AccessExpire = viper.GetInt64("jwt.access_expire")
	ConfigInfo.Jwt.RefreshExpire = viper.GetInt64("jwt.refresh_expire")

	logrus.Infof("Config loaded - MySQL: %s:%s@%s/%s",
		ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
}

// getEnvOrDefault 获取环境变量，如果不存在则返回默认值
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
