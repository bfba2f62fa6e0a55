package constants

import (
	"errors"
	"net"
)

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultLimit = 10

	// 用户主页作品栏的分页大小
	ProfilePageSize = 6

	// 活动中心每一类事件拉取的最大条数
	ActivityFetchLimit = 20

	// 发现页热门视频默认展示条数
	DiscoveryTrendingLimit = 10
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

const (
	ActivityKindFollow  = "follow"
	ActivityKindLike    = "like"
	ActivityKindComment = "comment"
)

// CtxUserIDKey 鉴权中间件写入RequestContext的用户ID键
const CtxUserIDKey = "user_id"

// GetOutBoundIP 获取本机的出口IP
func GetOutBoundIP() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String(), nil
			}
		}
	}
	return "", errors.New("no outbound ip found")
}
