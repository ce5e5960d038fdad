// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"

	"gorm.io/gorm"
)

// PostLiker is one row of the batched likers lookup: a post id paired with
// the identity of a user who liked it. Join-table fields stay internal.
type PostLiker struct {
	PostID   uint
	UserID   uint
	Username string
}

// GraphRepository is the authoritative store of follow and like edges.
// All mutations are single-edge writes; duplicate detection happens inside
// the INSERT itself so concurrent writers cannot race past it.
type GraphRepository interface {
	Follow(ctx context.Context, followerID, followedID uint) (*models.Follow, error)
	Unfollow(ctx context.Context, followerID, followedID uint) error
	Like(ctx context.Context, userID, postID uint) (*models.Like, error)
	Unlike(ctx context.Context, userID, postID uint) error
	FollowingIDs(ctx context.Context, userID uint) ([]uint, error)
	FollowerCount(ctx context.Context, userID uint) (int64, error)
	FollowingCount(ctx context.Context, userID uint) (int64, error)
	LikersForPosts(ctx context.Context, postIDs []uint) ([]PostLiker, error)
}

type graphRepository struct {
	db *gorm.DB
}

// NewGraphRepository creates a new graph repository
func NewGraphRepository(db *gorm.DB) GraphRepository {
	return &graphRepository{db: db}
}

func (r *graphRepository) Follow(ctx context.Context, followerID, followedID uint) (*models.Follow, error) {
	// The service layer rejects self-follows too; this check stands on its
	// own because validation and storage may observe different states under
	// concurrent writes.
	if followerID == followedID {
		return nil, models.NewSelfFollowError()
	}

	// INSERT ... ON CONFLICT DO NOTHING is atomic: of two concurrent
	// followers exactly one insert lands, the other sees zero rows.
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO follows (follower_id, followed_id)
		 VALUES (?, ?)
		 ON CONFLICT (follower_id, followed_id) DO NOTHING`,
		followerID, followedID,
	)
	if result.Error != nil {
		return nil, models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, models.NewDuplicateEdgeError()
	}

	var edge models.Follow
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(&edge).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &edge, nil
}

func (r *graphRepository) Unfollow(ctx context.Context, followerID, followedID uint) error {
	// Scoped to both columns: a user can only remove their own outgoing edge.
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewEdgeNotFoundError()
	}
	return nil
}

func (r *graphRepository) Like(ctx context.Context, userID, postID uint) (*models.Like, error) {
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID,
	)
	if result.Error != nil {
		return nil, models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, models.NewDuplicateLikeError()
	}

	var edge models.Like
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&edge).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &edge, nil
}

func (r *graphRepository) Unlike(ctx context.Context, userID, postID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewLikeNotFoundError()
	}
	return nil
}

func (r *graphRepository) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followed_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *graphRepository) FollowerCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("followed_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *graphRepository) FollowingCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *graphRepository) LikersForPosts(ctx context.Context, postIDs []uint) ([]PostLiker, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var rows []PostLiker
	err := r.db.WithContext(ctx).
		Table("likes").
		Select("likes.post_id AS post_id, users.id AS user_id, users.username AS username").
		Joins("JOIN users ON users.id = likes.user_id AND users.deleted_at IS NULL").
		Where("likes.post_id IN ?", postIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return rows, nil
}
