package service

import (
	"context"
	"time"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
)

// PostInput is the mutable part of a post.
type PostInput struct {
	Text    string
	GroupID *uint
	Image   string // media-relative path; empty keeps/means no image
}

// PostDetail is the single-post view: the post, its comments (newest first)
// and the author's total post count.
type PostDetail struct {
	Post       *model.Post
	Comments   []*model.Comment
	PostsCount int64
}

type PostService interface {
	Create(ctx context.Context, authorID uint, in PostInput) (*model.Post, error)
	Get(ctx context.Context, id uint) (*model.Post, error)
	Detail(ctx context.Context, id uint) (*PostDetail, error)
	// Edit enforces ownership: only the author may change a post.
	Edit(ctx context.Context, actorID, id uint, in PostInput) (*model.Post, error)
	// Delete enforces ownership and cascades to the post's comments.
	Delete(ctx context.Context, actorID, id uint) error
	AddComment(ctx context.Context, actorID, postID uint, text string) (*model.Comment, error)
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	groupRepo   repository.GroupRepository
}

func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	groupRepo repository.GroupRepository,
) PostService {
	return &postService{postRepo: postRepo, commentRepo: commentRepo, groupRepo: groupRepo}
}

func (s *postService) Create(ctx context.Context, authorID uint, in PostInput) (*model.Post, error) {
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, asNotFound(err)
		}
	}
	p := &model.Post{
		Text:      in.Text,
		AuthorID:  authorID,
		GroupID:   in.GroupID,
		Image:     in.Image,
		CreatedAt: time.Now(),
	}
	if err := s.postRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, p.ID)
}

func (s *postService) Get(ctx context.Context, id uint) (*model.Post, error) {
	p, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return p, nil
}

func (s *postService) Detail(ctx context.Context, id uint) (*PostDetail, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	count, err := s.postRepo.Count(ctx, repository.PostFilter{AuthorID: p.AuthorID})
	if err != nil {
		return nil, err
	}
	return &PostDetail{Post: p, Comments: comments, PostsCount: count}, nil
}

func (s *postService) Edit(ctx context.Context, actorID, id uint, in PostInput) (*model.Post, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.AuthorID != actorID {
		return nil, ErrNotOwner
	}
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, asNotFound(err)
		}
	}
	p.Text = in.Text
	p.GroupID = in.GroupID
	if in.Image != "" {
		p.Image = in.Image
	}
	if err := s.postRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, p.ID)
}

func (s *postService) Delete(ctx context.Context, actorID, id uint) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.AuthorID != actorID {
		return ErrNotOwner
	}
	return s.postRepo.Delete(ctx, id)
}

func (s *postService) AddComment(ctx context.Context, actorID, postID uint, text string) (*model.Comment, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}
	c := &model.Comment{
		Text:      text,
		AuthorID:  actorID,
		PostID:    postID,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
