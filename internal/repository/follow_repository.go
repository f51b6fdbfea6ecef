package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/yatube/internal/model"
)

type FollowRepository interface {
	Create(ctx context.Context, userID, authorID uint) error
	Delete(ctx context.Context, userID, authorID uint) error
	Exists(ctx context.Context, userID, authorID uint) (bool, error)
	CountFollowers(ctx context.Context, authorID uint) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) Create(ctx context.Context, userID, authorID uint) error {
	f := &model.Follow{AuthorID: authorID, UserID: userID}
	// 幂等：重复关注不报错，唯一索引 (author_id, user_id) 兜底并发
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

func (r *followRepository) Delete(ctx context.Context, userID, authorID uint) error {
	return r.db.WithContext(ctx).
		Where("author_id = ? AND user_id = ?", authorID, userID).
		Delete(&model.Follow{}).Error
}

func (r *followRepository) Exists(ctx context.Context, userID, authorID uint) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("author_id = ? AND user_id = ?", authorID, userID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, authorID uint) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("author_id = ?", authorID).
		Count(&cnt).Error
	return cnt, err
}
