package service

import (
	"context"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/pkg/paginator"
)

// Feed is one page of an ordered post listing (newest first).
type Feed struct {
	Page  paginator.Page
	Posts []*model.Post
}

// ProfileFeed is the author feed plus the viewer-dependent extras the
// profile page shows.
type ProfileFeed struct {
	Feed
	Author     *model.User
	PostsCount int64
	// Following reports whether the viewer follows this author; always
	// false for anonymous viewers.
	Following bool
}

// GroupFeed carries the resolved group alongside its posts.
type GroupFeed struct {
	Feed
	Group *model.Group
}

type FeedService interface {
	Global(ctx context.Context, page string) (*Feed, error)
	Group(ctx context.Context, slug, page string) (*GroupFeed, error)
	Profile(ctx context.Context, username, page string, viewerID *uint) (*ProfileFeed, error)
	Following(ctx context.Context, userID uint, page string) (*Feed, error)
}

type feedService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	groupRepo  repository.GroupRepository
	followRepo repository.FollowRepository
	pageSize   int
}

func NewFeedService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	followRepo repository.FollowRepository,
	pageSize int,
) FeedService {
	if pageSize < 1 {
		pageSize = 10
	}
	return &feedService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		followRepo: followRepo,
		pageSize:   pageSize,
	}
}

func (s *feedService) assemble(ctx context.Context, f repository.PostFilter, page string) (*Feed, error) {
	count, err := s.postRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	pg := paginator.Resolve(page, s.pageSize, count)
	posts, err := s.postRepo.List(ctx, f, pg.Offset(), pg.PageSize)
	if err != nil {
		return nil, err
	}
	return &Feed{Page: pg, Posts: posts}, nil
}

func (s *feedService) Global(ctx context.Context, page string) (*Feed, error) {
	return s.assemble(ctx, repository.PostFilter{}, page)
}

func (s *feedService) Group(ctx context.Context, slug, page string) (*GroupFeed, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, asNotFound(err)
	}
	feed, err := s.assemble(ctx, repository.PostFilter{GroupID: group.ID}, page)
	if err != nil {
		return nil, err
	}
	return &GroupFeed{Feed: *feed, Group: group}, nil
}

func (s *feedService) Profile(ctx context.Context, username, page string, viewerID *uint) (*ProfileFeed, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, asNotFound(err)
	}
	feed, err := s.assemble(ctx, repository.PostFilter{AuthorID: author.ID}, page)
	if err != nil {
		return nil, err
	}
	following := false
	if viewerID != nil {
		following, err = s.followRepo.Exists(ctx, *viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}
	return &ProfileFeed{
		Feed:       *feed,
		Author:     author,
		PostsCount: feed.Page.Count,
		Following:  following,
	}, nil
}

// Following returns posts by followed authors; a user with no follows gets
// an empty first page, never an error.
func (s *feedService) Following(ctx context.Context, userID uint, page string) (*Feed, error) {
	return s.assemble(ctx, repository.PostFilter{FollowedBy: userID}, page)
}
