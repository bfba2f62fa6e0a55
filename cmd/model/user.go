package model

// User 用户即主页资料 主键与登录主体一致
type User struct {
	UserId    int64  `json:"user_id" gorm:"primaryKey;column:user_id"`
	UserName  string `json:"user_name" gorm:"column:user_name;uniqueIndex;size:64"`
	Name      string `json:"name" gorm:"column:name;size:64"`
	Email     string `json:"email" gorm:"column:email;size:128"`
	Password  string `json:"-" gorm:"column:password;size:128"`
	AvatarUrl string `json:"avatar_url" gorm:"column:avatar_url;size:256"`
	Bio       string `json:"bio" gorm:"column:bio;size:512"`
	CreatedAt string `json:"created_at" gorm:"column:created_at"`
	UpdatedAt string `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
