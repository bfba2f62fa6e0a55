package model

// Post 一条发布的视频或图片
// SoundId指向音频来源的另一条Post 0表示使用原声
type Post struct {
	PostId       int64  `json:"post_id" gorm:"primaryKey;column:post_id"`
	UserId       int64  `json:"user_id" gorm:"column:user_id;index"`
	Content      string `json:"content" gorm:"column:content;size:1024"`
	MediaUrl     string `json:"media_url" gorm:"column:media_url;size:256"`
	MediaType    string `json:"media_type" gorm:"column:media_type;size:16"`
	ThumbnailUrl string `json:"thumbnail_url" gorm:"column:thumbnail_url;size:256"`
	SoundId      int64  `json:"sound_id" gorm:"column:sound_id;index"`
	Views        int64  `json:"views" gorm:"column:views"`
	CreatedAt    string `json:"created_at" gorm:"column:created_at;index"`
}

func (Post) TableName() string {
	return "posts"
}

// PostInfo 帖子与作者资料的聚合视图 接口返回使用
type PostInfo struct {
	*Post
	Author *User `json:"author,omitempty"`
}
