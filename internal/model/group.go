package model

// Group 社区（由管理员创建，slug 一经引用不可变）
type Group struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"type:varchar(200);not null"`
	Slug        string `json:"slug" gorm:"type:varchar(64);uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`
}

func (Group) TableName() string { return "groups" }
