package model

// Follow 有向关注边 (follower_id, following_id)唯一
type Follow struct {
	FollowId    int64  `json:"follow_id" gorm:"primaryKey;column:follow_id;autoIncrement"`
	FollowerId  int64  `json:"follower_id" gorm:"column:follower_id;uniqueIndex:uk_follower_following"`
	FollowingId int64  `json:"following_id" gorm:"column:following_id;uniqueIndex:uk_follower_following"`
	CreatedAt   string `json:"created_at" gorm:"column:created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
