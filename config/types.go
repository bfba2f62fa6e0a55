package config

type config struct {
	Server   server
	Mysql    mysql
	Redis    redis
	Minio    minio
	RabbitMq rabbitmq
	Jwt      jwtconfig
}

type server struct {
	Addr     string
	WorkerId int64
}

type mysql struct {
	Addr     string
	Database string
	Username string
	Password string
	Charset  string
}

type redis struct {
	Addr     string
	Password string
	DB       int
}

type minio struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	// 对外可访问的地址 用于拼接公开URL
	PublicHost string
}

type rabbitmq struct {
	Addr     string
	Username string
	Password string
}

type jwtconfig struct {
	AccessSecret  string
	RefreshSecret string
	// 有效期 单位分钟
	AccessExpire  int64
	RefreshExpire int64
}
