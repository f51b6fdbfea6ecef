package model

import "time"

// Post 内容主体
type Post struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Text     string `json:"text" gorm:"type:text;not null"`
	AuthorID uint   `json:"author_id" gorm:"index:idx_post_author;not null"`
	Author   User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	// group 可空；社区删除时置空而不是级联删帖
	GroupID *uint  `json:"group_id" gorm:"index:idx_post_group"`
	Group   *Group `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	// 媒体相对路径，例如 posts/<uuid>.png；可为空
	Image     string    `json:"image" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created" gorm:"index:idx_post_created;not null"`
}

func (Post) TableName() string { return "posts" }
