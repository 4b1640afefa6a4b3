package repository

import (
	"testing"
	"time"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentListByPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := testContext()

	author := createTestUser(t, db, "author")
	reader := createTestUser(t, db, "reader")
	post := createTestPost(t, db, author.ID, "discuss", nil)
	other := createTestPost(t, db, author.ID, "quiet", nil)

	first := &models.Comment{Text: "first", AuthorID: reader.ID, PostID: post.ID}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, db.Model(first).UpdateColumn("created_at", time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)).Error)

	second := &models.Comment{Text: "second", AuthorID: author.ID, PostID: post.ID}
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, db.Model(second).UpdateColumn("created_at", time.Date(2025, 5, 1, 11, 0, 0, 0, time.UTC)).Error)

	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)
	assert.Equal(t, "first", comments[1].Text)
	assert.Equal(t, "reader", comments[1].Author.Username)

	comments, err = repo.ListByPost(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := testContext()

	author := createTestUser(t, db, "author")
	post := createTestPost(t, db, author.ID, "post", nil)
	comment := &models.Comment{Text: "hello", AuthorID: author.ID, PostID: post.ID}
	require.NoError(t, repo.Create(ctx, comment))

	got, err := repo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Text)
	assert.Equal(t, "author", got.Author.Username)
	assert.Equal(t, post.ID, got.Post.ID)

	_, err = repo.GetByID(ctx, 9999)
	assert.True(t, models.IsNotFound(err))
}

func TestCommentDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := testContext()

	author := createTestUser(t, db, "author")
	post := createTestPost(t, db, author.ID, "post", nil)
	comment := &models.Comment{Text: "gone soon", AuthorID: author.ID, PostID: post.ID}
	require.NoError(t, repo.Create(ctx, comment))

	require.NoError(t, repo.Delete(ctx, comment.ID))

	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
