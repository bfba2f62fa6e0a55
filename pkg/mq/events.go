package mq

// ActivityEvent 活动事件 点赞/评论/关注触达被动方的站内信
type ActivityEvent struct {
	EventID    string `json:"event_id"`    // 事件ID
	Kind       string `json:"kind"`        // follow, like, comment
	ActorID    int64  `json:"actor_id"`    // 发起者ID
	ReceiverID int64  `json:"receiver_id"` // 接收者ID
	PostID     int64  `json:"post_id"`     // 相关帖子ID 关注事件为0
	CommentID  int64  `json:"comment_id"`  // 相关评论ID
	Excerpt    string `json:"excerpt"`     // 评论摘要
	Timestamp  int64  `json:"timestamp"`   // 时间戳
}

const (
	ActivityEventExchange = "activity_events"
	ActivityEventQueue    = "activity_event_queue"
	ActivityRoutingKey    = "activity"
)
