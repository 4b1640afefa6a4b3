package repository

import (
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupGetBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := testContext()

	createTestGroup(t, db, "travel")

	group, err := repo.GetBySlug(ctx, "travel")
	require.NoError(t, err)
	assert.Equal(t, "Group travel", group.Title)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.True(t, models.IsNotFound(err))
}

func TestGroupListOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := testContext()

	require.NoError(t, db.Create(&models.Group{Title: "Zebras", Slug: "zebras"}).Error)
	require.NoError(t, db.Create(&models.Group{Title: "Apples", Slug: "apples"}).Error)
	require.NoError(t, db.Create(&models.Group{Title: "Mangos", Slug: "mangos"}).Error)

	groups, err := repo.List(ctx, 12, 0)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Apples", groups[0].Title)
	assert.Equal(t, "Mangos", groups[1].Title)
	assert.Equal(t, "Zebras", groups[2].Title)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestGroupDeleteKeepsPosts(t *testing.T) {
	db := setupTestDB(t)
	groups := NewGroupRepository(db)
	posts := NewPostRepository(db)
	ctx := testContext()

	author := createTestUser(t, db, "author")
	group := createTestGroup(t, db, "doomed")
	post := createTestPost(t, db, author.ID, "survives", &group.ID)

	require.NoError(t, groups.Delete(ctx, group.ID))

	_, err := groups.GetBySlug(ctx, "doomed")
	assert.True(t, models.IsNotFound(err))

	got, err := posts.GetByID(ctx, post.ID, 0)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID, "post loses the group reference but survives")
	assert.Equal(t, "survives", got.Text)
}

func TestGroupDeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)

	err := repo.Delete(testContext(), 404)
	assert.True(t, models.IsNotFound(err))
}
