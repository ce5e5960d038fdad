package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	comment := &models.Comment{CommentText: "nice", PostID: 10, UserID: 1}
	err := repo.Create(context.Background(), comment)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), comment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListByPost(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "comment_text", "post_id", "user_id"}).
		AddRow(1, "first", 10, 1).
		AddRow(2, "second", 10, 2)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE post_id = $1 AND "comments"."deleted_at" IS NULL ORDER BY created_at ASC, id ASC`)).
		WithArgs(10).
		WillReturnRows(rows)

	comments, err := repo.ListByPost(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].CommentText)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListForPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("Author joined in one query", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCommentRepository(db)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "comment_text", "post_id", "created_at", "author_id", "author_name"}).
			AddRow(1, "first", 10, now, 1, "alice").
			AddRow(2, "second", 10, now.Add(time.Minute), 2, "bob").
			AddRow(3, "other", 11, now, 1, "alice")
		mock.ExpectQuery(`SELECT comments.id AS id`).
			WithArgs(10, 11).
			WillReturnRows(rows)

		got, err := repo.ListForPosts(ctx, []uint{10, 11})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "bob", got[1].AuthorName)
		assert.Equal(t, uint(10), got[1].PostID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty post set skips the query", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCommentRepository(db)

		got, err := repo.ListForPosts(ctx, nil)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "comments" SET "deleted_at"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
