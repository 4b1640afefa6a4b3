package service

import (
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowAndUnfollow(t *testing.T) {
	f := newServiceFixture(t)
	ctx := testContext()
	reader := f.user(t, "reader")
	f.user(t, "author")

	require.NoError(t, f.social.Follow(ctx, reader.ID, "author"))

	following, err := f.social.IsFollowing(ctx, reader.ID, "author")
	require.NoError(t, err)
	assert.True(t, following)

	require.NoError(t, f.social.Unfollow(ctx, reader.ID, "author"))

	following, err = f.social.IsFollowing(ctx, reader.ID, "author")
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowSelfIsNoOp(t *testing.T) {
	f := newServiceFixture(t)
	ctx := testContext()
	user := f.user(t, "narcissus")

	require.NoError(t, f.social.Follow(ctx, user.ID, "narcissus"))

	var rows int64
	require.NoError(t, f.db.Model(&models.Follow{}).Count(&rows).Error)
	assert.Equal(t, int64(0), rows)
}

func TestFollowUnknownAuthor(t *testing.T) {
	f := newServiceFixture(t)
	reader := f.user(t, "reader")

	err := f.social.Follow(testContext(), reader.ID, "ghost")
	assert.True(t, models.IsNotFound(err))
}

func TestToggleLikeReportsState(t *testing.T) {
	f := newServiceFixture(t)
	ctx := testContext()
	author := f.user(t, "author")
	fan := f.user(t, "fan")
	other := f.user(t, "other")
	post := f.post(t, author.ID, "likeable")

	liked, count, err := f.social.ToggleLike(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	liked, count, err = f.social.ToggleLike(ctx, other.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(2), count)

	liked, count, err = f.social.ToggleLike(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(1), count)
}

func TestToggleLikeMissingPost(t *testing.T) {
	f := newServiceFixture(t)
	fan := f.user(t, "fan")

	_, _, err := f.social.ToggleLike(testContext(), fan.ID, 9999)
	assert.True(t, models.IsNotFound(err))
}
