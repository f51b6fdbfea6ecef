package model

import (
	"time"
)

// Follow 关注关系（user 关注 author）
type Follow struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	AuthorID uint `json:"author_id" gorm:"index:idx_follow_author;index:idx_follow_pair,unique;not null"`
	Author   User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	UserID   uint `json:"user_id" gorm:"not null;index:idx_follow_pair,unique"`
	User     User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	// 复合唯一键，避免重复关注
	// idx_follow_pair = (author_id, user_id)
	CreatedAt time.Time `json:"created"`
}

func (Follow) TableName() string { return "follows" }
