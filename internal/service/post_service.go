package service

import (
	"context"

	"github.com/paulmayer-fullstacker/underworld-wizards/internal/cache"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/repository"
)

// PostService provides post CRUD business logic.
type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
}

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	UserID     uint
	Title      string
	Content    string
	CategoryID *uint
}

// UpdatePostInput carries the fields for a post update.
type UpdatePostInput struct {
	UserID     uint
	PostID     uint
	Title      string
	Content    string
	CategoryID *uint
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
	}
}

const (
	maxTitleLen   = 300
	maxContentLen = 50000
)

// CreatePost validates input and persists a new post owned by the caller.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}
	if in.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, models.NewValidationError("Category does not exist")
		}
	}

	post := &models.Post{
		Title:      in.Title,
		Content:    in.Content,
		UserID:     in.UserID,
		CategoryID: in.CategoryID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost fetches a single post by id.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListPosts returns the most recent posts. The first page is served
// cache-aside since it is the hottest read in the system.
func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	if offset == 0 && limit <= 20 {
		var posts []*models.Post
		err := cache.Aside(ctx, cache.PostsListKey, &posts, cache.ListTTL, func() error {
			var fetchErr error
			posts, fetchErr = s.postRepo.List(ctx, limit, offset)
			return fetchErr
		})
		if err != nil {
			return nil, err
		}
		return posts, nil
	}

	return s.postRepo.List(ctx, limit, offset)
}

// GetUserPosts returns a user's posts, newest first.
func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.postRepo.GetByUserID(ctx, userID, limit, offset)
}

// SearchPosts matches posts whose title or content contains the query.
func (s *PostService) SearchPosts(ctx context.Context, query string, limit, offset int) ([]*models.Post, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.postRepo.Search(ctx, query, limit, offset)
}

// UpdatePost applies a partial update; only the author may mutate a post.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own posts")
	}

	if in.Title != "" {
		if len(in.Title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 300 characters)")
		}
		post.Title = in.Title
	}
	if in.Content != "" {
		if len(in.Content) > maxContentLen {
			return nil, models.NewValidationError("Content too long (max 50000 characters)")
		}
		post.Content = in.Content
	}
	if in.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, models.NewValidationError("Category does not exist")
		}
		post.CategoryID = in.CategoryID
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and, via the repository transaction, its
// comments and likes. Only the author may delete.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}
