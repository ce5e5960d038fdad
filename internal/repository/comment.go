package repository

import (
	"context"
	"errors"
	"time"

	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"

	"gorm.io/gorm"
)

// CommentRow is one row of the batched comments lookup for feed enrichment:
// the comment plus its author's identity, resolved in a single JOIN.
type CommentRow struct {
	ID          uint
	CommentText string
	PostID      uint
	CreatedAt   time.Time
	AuthorID    uint
	AuthorName  string
}

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	ListForPosts(ctx context.Context, postIDs []uint) ([]CommentRow, error)
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// ListForPosts fetches every comment belonging to any post in the id set in
// one query, author joined in. Ordered oldest first within each post.
func (r *commentRepository) ListForPosts(ctx context.Context, postIDs []uint) ([]CommentRow, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var rows []CommentRow
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id AS id, comments.comment_text AS comment_text, comments.post_id AS post_id, comments.created_at AS created_at, users.id AS author_id, users.username AS author_name").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id IN ? AND comments.deleted_at IS NULL", postIDs).
		Order("comments.created_at ASC, comments.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return rows, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
