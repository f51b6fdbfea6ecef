package service

import (
	"context"

	"github.com/d60-Lab/yatube/internal/repository"
)

// RelationshipService 关注关系服务
type RelationshipService interface {
	// Follow is idempotent and silently ignores self-follow: after any number
	// of calls there is at most one edge, and never a (u, u) edge.
	Follow(ctx context.Context, userID, authorID uint) error
	// Unfollow deletes the edge when present; a missing edge is not an error.
	Unfollow(ctx context.Context, userID, authorID uint) error
	Follows(ctx context.Context, userID, authorID uint) (bool, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
}

func NewRelationshipService(followRepo repository.FollowRepository) RelationshipService {
	return &relationshipService{followRepo: followRepo}
}

func (s *relationshipService) Follow(ctx context.Context, userID, authorID uint) error {
	if userID == authorID {
		return nil
	}
	return s.followRepo.Create(ctx, userID, authorID)
}

func (s *relationshipService) Unfollow(ctx context.Context, userID, authorID uint) error {
	return s.followRepo.Delete(ctx, userID, authorID)
}

func (s *relationshipService) Follows(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.followRepo.Exists(ctx, userID, authorID)
}
