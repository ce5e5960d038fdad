// Package service implements business logic on top of the repositories.
package service

import (
	"context"

	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/repository"
)

// GraphService is the validation boundary for follow/like edge mutations.
// It rejects edges whose endpoints do not exist and self-follows before they
// reach the store; the store re-checks structural invariants on its own
// because validation and storage may observe different states under
// concurrent writes.
type GraphService struct {
	graphRepo repository.GraphRepository
	userRepo  repository.UserRepository
	postRepo  repository.PostRepository
}

// NewGraphService returns a new GraphService.
func NewGraphService(
	graphRepo repository.GraphRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
) *GraphService {
	return &GraphService{
		graphRepo: graphRepo,
		userRepo:  userRepo,
		postRepo:  postRepo,
	}
}

// Follow creates a follow edge from follower to followed. Duplicate requests
// are conflicts, never silent no-ops; callers must unfollow first if they
// want a fresh edge.
func (s *GraphService) Follow(ctx context.Context, followerID, followedID uint) (*models.Follow, error) {
	if followerID == followedID {
		return nil, models.NewSelfFollowError()
	}

	for _, id := range []uint{followerID, followedID} {
		exists, err := s.userRepo.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, models.NewReferentialIntegrityError("Follow endpoint user does not exist")
		}
	}

	return s.graphRepo.Follow(ctx, followerID, followedID)
}

// Unfollow removes the caller's own outgoing edge to the followed user.
func (s *GraphService) Unfollow(ctx context.Context, followerID, followedID uint) error {
	return s.graphRepo.Unfollow(ctx, followerID, followedID)
}

// Like creates a like edge. A user may like any post, including their own.
func (s *GraphService) Like(ctx context.Context, userID, postID uint) (*models.Like, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewReferentialIntegrityError("Liking user does not exist")
	}

	exists, err = s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewReferentialIntegrityError("Liked post does not exist")
	}

	return s.graphRepo.Like(ctx, userID, postID)
}

// Unlike removes the caller's own like from a post.
func (s *GraphService) Unlike(ctx context.Context, userID, postID uint) error {
	return s.graphRepo.Unlike(ctx, userID, postID)
}

// FollowCounts returns follower and following totals for a user, computed as
// aggregate queries rather than by materializing edge lists.
func (s *GraphService) FollowCounts(ctx context.Context, userID uint) (followers, following int64, err error) {
	followers, err = s.graphRepo.FollowerCount(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	following, err = s.graphRepo.FollowingCount(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}
