package service

import (
	"context"
	"testing"

	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_CreateComment_EmptyText(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopPostRepo())

	comment, err := svc.CreateComment(context.Background(), 1, 10, "   ")
	assert.Nil(t, comment)
	assertErrorCode(t, err, models.CodeValidation)
}

func TestCommentService_CreateComment_MissingPost(t *testing.T) {
	posts := noopPostRepo()
	posts.existsFn = func(_ context.Context, _ uint) (bool, error) { return false, nil }
	svc := NewCommentService(noopCommentRepo(), posts)

	comment, err := svc.CreateComment(context.Background(), 1, 10, "hello")
	assert.Nil(t, comment)
	assertErrorCode(t, err, models.CodeNotFound)
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	comments := noopCommentRepo()
	comments.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 100
		return nil
	}
	svc := NewCommentService(comments, noopPostRepo())

	comment, err := svc.CreateComment(context.Background(), 1, 10, "hello")
	require.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, uint(100), comment.ID)
	assert.Equal(t, uint(10), comment.PostID)
	assert.Equal(t, uint(1), comment.UserID)
}

func TestCommentService_DeleteComment_NotOwner(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 2}, nil
	}
	svc := NewCommentService(comments, noopPostRepo())

	err := svc.DeleteComment(context.Background(), 1, 100)
	assertErrorCode(t, err, models.CodeUnauthorized)
}
