package service

import (
	"context"

	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/repository"
)

// Profile is a user's public profile including social counts.
type Profile struct {
	User           models.UserSummary `json:"user"`
	FollowerCount  int64              `json:"follower_count"`
	FollowingCount int64              `json:"following_count"`
}

// UserService provides user profile business logic.
type UserService struct {
	userRepo  repository.UserRepository
	graphRepo repository.GraphRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, graphRepo repository.GraphRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		graphRepo: graphRepo,
	}
}

// GetProfile returns a user's identity plus follower/following counts.
// Counts are aggregate queries; the edge lists themselves are never
// materialized for this.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, err := s.graphRepo.FollowerCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.graphRepo.FollowingCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:           user.Summary(),
		FollowerCount:  followers,
		FollowingCount: following,
	}, nil
}
