package model

import "time"

// Comment 评论；随所属 Post 级联删除，不支持编辑
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	AuthorID  uint      `json:"author_id" gorm:"index:idx_comment_author;not null"`
	Author    User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	PostID    uint      `json:"post_id" gorm:"index:idx_comment_post;not null"`
	Post      Post      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created" gorm:"not null"`
}

func (Comment) TableName() string { return "comments" }
