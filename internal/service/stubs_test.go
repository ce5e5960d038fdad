package service

import (
	"context"
	"errors"
	"testing"

	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByIDsFn      func(context.Context, []uint) ([]models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	existsFn        func(context.Context, uint) (bool, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByIDsFn:      func(_ context.Context, _ []uint) ([]models.User, error) { return nil, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		existsFn:        func(_ context.Context, _ uint) (bool, error) { return true, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn          func(context.Context, *models.Post) error
	getByIDFn         func(context.Context, uint) (*models.Post, error)
	getByUserIDFn     func(context.Context, uint, int, int) ([]*models.Post, error)
	listByAuthorIDsFn func(context.Context, []uint) ([]*models.Post, error)
	listFn            func(context.Context, int, int) ([]*models.Post, error)
	searchFn          func(context.Context, string, int, int) ([]*models.Post, error)
	existsFn          func(context.Context, uint) (bool, error)
	updateFn          func(context.Context, *models.Post) error
	deleteFn          func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*models.Post, error) {
	return s.listByAuthorIDsFn(ctx, authorIDs)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) Search(ctx context.Context, query string, limit, offset int) ([]*models.Post, error) {
	return s.searchFn(ctx, query, limit, offset)
}
func (s *postRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:          func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:         func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		getByUserIDFn:     func(_ context.Context, _ uint, _, _ int) ([]*models.Post, error) { return nil, nil },
		listByAuthorIDsFn: func(_ context.Context, _ []uint) ([]*models.Post, error) { return nil, nil },
		listFn:            func(_ context.Context, _, _ int) ([]*models.Post, error) { return nil, nil },
		searchFn:          func(_ context.Context, _ string, _, _ int) ([]*models.Post, error) { return nil, nil },
		existsFn:          func(_ context.Context, _ uint) (bool, error) { return true, nil },
		updateFn:          func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:          func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn       func(context.Context, *models.Comment) error
	getByIDFn      func(context.Context, uint) (*models.Comment, error)
	listByPostFn   func(context.Context, uint) ([]*models.Comment, error)
	listForPostsFn func(context.Context, []uint) ([]repository.CommentRow, error)
	deleteFn       func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) ListForPosts(ctx context.Context, postIDs []uint) ([]repository.CommentRow, error) {
	return s.listForPostsFn(ctx, postIDs)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:       func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:      func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn:   func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		listForPostsFn: func(_ context.Context, _ []uint) ([]repository.CommentRow, error) { return nil, nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	createFn   func(context.Context, *models.Category) error
	getByIDFn  func(context.Context, uint) (*models.Category, error)
	getByIDsFn func(context.Context, []uint) ([]models.Category, error)
	listFn     func(context.Context) ([]models.Category, error)
}

func (s *categoryRepoStub) Create(ctx context.Context, category *models.Category) error {
	return s.createFn(ctx, category)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]models.Category, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		createFn:   func(_ context.Context, _ *models.Category) error { return nil },
		getByIDFn:  func(_ context.Context, id uint) (*models.Category, error) { return &models.Category{ID: id}, nil },
		getByIDsFn: func(_ context.Context, _ []uint) ([]models.Category, error) { return nil, nil },
		listFn:     func(_ context.Context) ([]models.Category, error) { return nil, nil },
	}
}

// graphRepoStub is a stub for repository.GraphRepository.
type graphRepoStub struct {
	followFn         func(context.Context, uint, uint) (*models.Follow, error)
	unfollowFn       func(context.Context, uint, uint) error
	likeFn           func(context.Context, uint, uint) (*models.Like, error)
	unlikeFn         func(context.Context, uint, uint) error
	followingIDsFn   func(context.Context, uint) ([]uint, error)
	followerCountFn  func(context.Context, uint) (int64, error)
	followingCountFn func(context.Context, uint) (int64, error)
	likersForPostsFn func(context.Context, []uint) ([]repository.PostLiker, error)
}

func (s *graphRepoStub) Follow(ctx context.Context, followerID, followedID uint) (*models.Follow, error) {
	return s.followFn(ctx, followerID, followedID)
}
func (s *graphRepoStub) Unfollow(ctx context.Context, followerID, followedID uint) error {
	return s.unfollowFn(ctx, followerID, followedID)
}
func (s *graphRepoStub) Like(ctx context.Context, userID, postID uint) (*models.Like, error) {
	return s.likeFn(ctx, userID, postID)
}
func (s *graphRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *graphRepoStub) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, userID)
}
func (s *graphRepoStub) FollowerCount(ctx context.Context, userID uint) (int64, error) {
	return s.followerCountFn(ctx, userID)
}
func (s *graphRepoStub) FollowingCount(ctx context.Context, userID uint) (int64, error) {
	return s.followingCountFn(ctx, userID)
}
func (s *graphRepoStub) LikersForPosts(ctx context.Context, postIDs []uint) ([]repository.PostLiker, error) {
	return s.likersForPostsFn(ctx, postIDs)
}

func noopGraphRepo() *graphRepoStub {
	return &graphRepoStub{
		followFn: func(_ context.Context, followerID, followedID uint) (*models.Follow, error) {
			return &models.Follow{ID: 1, FollowerID: followerID, FollowedID: followedID}, nil
		},
		unfollowFn: func(_ context.Context, _, _ uint) error { return nil },
		likeFn: func(_ context.Context, userID, postID uint) (*models.Like, error) {
			return &models.Like{ID: 1, UserID: userID, PostID: postID}, nil
		},
		unlikeFn:         func(_ context.Context, _, _ uint) error { return nil },
		followingIDsFn:   func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		followerCountFn:  func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		followingCountFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		likersForPostsFn: func(_ context.Context, _ []uint) ([]repository.PostLiker, error) { return nil, nil },
	}
}

// assertErrorCode asserts that err is an AppError carrying the given code.
func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
