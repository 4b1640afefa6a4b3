package repository

import (
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := testContext()

	user := &models.User{Username: "fresh", Email: "fresh@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultStatus, got.Status)
}

func TestUserGetByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := testContext()

	createTestUser(t, db, "leo")

	user, err := repo.GetByUsername(ctx, "leo")
	require.NoError(t, err)
	assert.Equal(t, "leo@example.com", user.Email)

	_, err = repo.GetByUsername(ctx, "ghost")
	assert.True(t, models.IsNotFound(err))
}

func TestUserGetByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := testContext()

	createTestUser(t, db, "leo")

	user, err := repo.GetByEmail(ctx, "leo@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "leo", user.Username)

	// Absence is reported as nil, nil so signup checks can branch on it.
	user, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserListOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := testContext()

	require.NoError(t, db.Create(&models.User{Username: "zz", Email: "zz@example.com", Password: "x", FirstName: "Zoe"}).Error)
	require.NoError(t, db.Create(&models.User{Username: "aa", Email: "aa@example.com", Password: "x", FirstName: "Adam"}).Error)
	require.NoError(t, db.Create(&models.User{Username: "mm", Email: "mm@example.com", Password: "x", FirstName: "Adam"}).Error)

	users, err := repo.List(ctx, 12, 0)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "aa", users[0].Username)
	assert.Equal(t, "mm", users[1].Username)
	assert.Equal(t, "zz", users[2].Username)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestUserUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := testContext()

	user := createTestUser(t, db, "editable")
	user.Status = "Writing again"
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Writing again", got.Status)
}
