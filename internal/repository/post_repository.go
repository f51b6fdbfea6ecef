package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/yatube/internal/model"
)

// PostFilter narrows a post listing. Zero value means the global feed.
type PostFilter struct {
	GroupID    uint
	AuthorID   uint
	FollowedBy uint // posts by authors the given user follows
}

type PostRepository interface {
	Create(ctx context.Context, p *model.Post) error
	GetByID(ctx context.Context, id uint) (*model.Post, error)
	Update(ctx context.Context, p *model.Post) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, f PostFilter, offset, limit int) ([]*model.Post, error)
	Count(ctx context.Context, f PostFilter) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, p *model.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*model.Post, error) {
	var p model.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) Update(ctx context.Context, p *model.Post) error {
	// created_at 不可变，只允许改正文、社区和图片
	return r.db.WithContext(ctx).Model(p).
		Select("text", "group_id", "image").
		Updates(map[string]any{"text": p.Text, "group_id": p.GroupID, "image": p.Image}).Error
}

// Delete removes the post and its comments in one transaction. The FK
// constraint also cascades, but sqlite builds may run without foreign_keys
// pragma, so the cascade is applied explicitly as well.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

func (r *postRepository) List(ctx context.Context, f PostFilter, offset, limit int) ([]*model.Post, error) {
	var res []*model.Post
	err := r.scope(ctx, f).
		Preload("Author").
		Preload("Group").
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *postRepository) Count(ctx context.Context, f PostFilter) (int64, error) {
	var cnt int64
	err := r.scope(ctx, f).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) scope(ctx context.Context, f PostFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Post{})
	if f.GroupID != 0 {
		q = q.Where("group_id = ?", f.GroupID)
	}
	if f.AuthorID != 0 {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	if f.FollowedBy != 0 {
		q = q.Where("author_id IN (?)",
			r.db.Model(&model.Follow{}).Select("author_id").Where("user_id = ?", f.FollowedBy))
	}
	return q
}
