package model

import "time"

// User 用户（认证主体由外部身份服务负责，这里只存最小档案）
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"type:varchar(150);uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"type:varchar(254);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"type:varchar(128);not null"` // bcrypt hash
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
