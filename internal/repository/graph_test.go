package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/paulmayer-fullstacker/underworld-wizards/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphRepository_Follow(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGraphRepository(db)

		mock.ExpectExec(`INSERT INTO follows`).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))

		rows := sqlmock.NewRows([]string{"id", "follower_id", "followed_id"}).
			AddRow(5, 1, 2)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "follows" WHERE follower_id = $1 AND followed_id = $2`)).
			WithArgs(1, 2, 1).
			WillReturnRows(rows)

		edge, err := repo.Follow(ctx, 1, 2)
		require.NoError(t, err)
		require.NotNil(t, edge)
		assert.Equal(t, uint(5), edge.ID)
		assert.Equal(t, uint(1), edge.FollowerID)
		assert.Equal(t, uint(2), edge.FollowedID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate edge is a conflict", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGraphRepository(db)

		// ON CONFLICT DO NOTHING: the insert lands zero rows.
		mock.ExpectExec(`INSERT INTO follows`).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))

		edge, err := repo.Follow(ctx, 1, 2)
		assert.Nil(t, edge)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeDuplicateEdge, appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Self follow never reaches the database", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGraphRepository(db)

		edge, err := repo.Follow(ctx, 7, 7)
		assert.Nil(t, edge)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeSelfFollow, appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGraphRepository_Unfollow(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGraphRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "follows" WHERE follower_id = $1 AND followed_id = $2`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Unfollow(ctx, 1, 2)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing edge is not found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGraphRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "follows" WHERE follower_id = $1 AND followed_id = $2`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Unfollow(ctx, 1, 2)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeEdgeNotFound, appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGraphRepository_Like(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGraphRepository(db)

		mock.ExpectExec(`INSERT INTO likes`).
			WithArgs(1, 10).
			WillReturnResult(sqlmock.NewResult(0, 1))

		rows := sqlmock.NewRows([]string{"id", "user_id", "post_id"}).
			AddRow(3, 1, 10)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "likes" WHERE user_id = $1 AND post_id = $2`)).
			WithArgs(1, 10, 1).
			WillReturnRows(rows)

		like, err := repo.Like(ctx, 1, 10)
		require.NoError(t, err)
		require.NotNil(t, like)
		assert.Equal(t, uint(10), like.PostID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate like is a conflict", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGraphRepository(db)

		mock.ExpectExec(`INSERT INTO likes`).
			WithArgs(1, 10).
			WillReturnResult(sqlmock.NewResult(0, 0))

		like, err := repo.Like(ctx, 1, 10)
		assert.Nil(t, like)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeDuplicateLike, appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGraphRepository_Unlike_MissingLike(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGraphRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes" WHERE user_id = $1 AND post_id = $2`)).
		WithArgs(1, 10).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Unlike(context.Background(), 1, 10)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeLikeNotFound, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGraphRepository_FollowingIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGraphRepository(db)

	rows := sqlmock.NewRows([]string{"followed_id"}).
		AddRow(2).
		AddRow(3)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "followed_id" FROM "follows" WHERE follower_id = $1`)).
		WithArgs(1).
		WillReturnRows(rows)

	ids, err := repo.FollowingIDs(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGraphRepository_Counts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGraphRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "follows" WHERE followed_id = $1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	followers, err := repo.FollowerCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), followers)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "follows" WHERE follower_id = $1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	following, err := repo.FollowingCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), following)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGraphRepository_LikersForPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("Batched join", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGraphRepository(db)

		rows := sqlmock.NewRows([]string{"post_id", "user_id", "username"}).
			AddRow(10, 1, "alice").
			AddRow(10, 2, "bob").
			AddRow(11, 1, "alice")
		mock.ExpectQuery(`SELECT likes.post_id AS post_id`).
			WithArgs(10, 11).
			WillReturnRows(rows)

		likers, err := repo.LikersForPosts(ctx, []uint{10, 11})
		require.NoError(t, err)
		require.Len(t, likers, 3)
		assert.Equal(t, PostLiker{PostID: 10, UserID: 2, Username: "bob"}, likers[1])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty post set skips the query", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGraphRepository(db)

		likers, err := repo.LikersForPosts(ctx, nil)
		assert.NoError(t, err)
		assert.Nil(t, likers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
