package model

// Comment 帖子评论 ParentId为0表示一级评论
type Comment struct {
	CommentId int64  `json:"comment_id" gorm:"primaryKey;column:comment_id"`
	PostId    int64  `json:"post_id" gorm:"column:post_id;index"`
	UserId    int64  `json:"user_id" gorm:"column:user_id;index"`
	ParentId  int64  `json:"parent_id" gorm:"column:parent_id;index"`
	Content   string `json:"content" gorm:"column:content;size:512"`
	CreatedAt string `json:"created_at" gorm:"column:created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// Reaction 帖子点赞 (post_id, user_id)唯一
type Reaction struct {
	ReactionId int64  `json:"reaction_id" gorm:"primaryKey;column:reaction_id;autoIncrement"`
	PostId     int64  `json:"post_id" gorm:"column:post_id;uniqueIndex:uk_post_user"`
	UserId     int64  `json:"user_id" gorm:"column:user_id;uniqueIndex:uk_post_user"`
	CreatedAt  string `json:"created_at" gorm:"column:created_at"`
}

func (Reaction) TableName() string {
	return "reactions"
}

// CommentReaction 评论点赞 (comment_id, user_id)唯一
type CommentReaction struct {
	CommentReactionId int64  `json:"comment_reaction_id" gorm:"primaryKey;column:comment_reaction_id;autoIncrement"`
	CommentId         int64  `json:"comment_id" gorm:"column:comment_id;uniqueIndex:uk_comment_user"`
	UserId            int64  `json:"user_id" gorm:"column:user_id;uniqueIndex:uk_comment_user"`
	CreatedAt         string `json:"created_at" gorm:"column:created_at"`
}

func (CommentReaction) TableName() string {
	return "comment_reactions"
}
