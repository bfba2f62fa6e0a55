package model

// Message 站内信 由活动事件消费者写入 未读数角标的数据来源
type Message struct {
	MessageId int64  `json:"message_id" gorm:"primaryKey;column:message_id;autoIncrement"`
	UserId    int64  `json:"user_id" gorm:"column:user_id;index"`
	SenderId  int64  `json:"sender_id" gorm:"column:sender_id"`
	Kind      string `json:"kind" gorm:"column:kind;size:16"`
	Content   string `json:"content" gorm:"column:content;size:512"`
	PostId    int64  `json:"post_id" gorm:"column:post_id"`
	Read      bool   `json:"read" gorm:"column:read"`
	CreatedAt string `json:"created_at" gorm:"column:created_at"`
}

func (Message) TableName() string {
	return "messages"
}
