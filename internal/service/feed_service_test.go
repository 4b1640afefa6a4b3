package service

import (
	"fmt"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalFeedPagination(t *testing.T) {
	f := newServiceFixture(t)
	ctx := testContext()
	author := f.user(t, "author")
	for i := 0; i < 15; i++ {
		f.post(t, author.ID, fmt.Sprintf("post %d", i))
	}

	page, err := f.feed.GlobalFeed(ctx, 0, 1)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 10)
	assert.Equal(t, int64(15), page.TotalCount)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.TotalPages)

	page, err = f.feed.GlobalFeed(ctx, 0, 2)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 5)
	assert.Equal(t, 2, page.Page)

	// A page request past the end lands on the last page.
	page, err = f.feed.GlobalFeed(ctx, 0, 99)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 5)
	assert.Equal(t, 2, page.Page)
}

func TestGlobalFeedEmpty(t *testing.T) {
	f := newServiceFixture(t)

	page, err := f.feed.GlobalFeed(testContext(), 0, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
}

func TestGroupFeed(t *testing.T) {
	f := newServiceFixture(t)
	ctx := testContext()
	author := f.user(t, "author")
	group := f.group(t, "cats")
	post := &models.Post{Text: "cat content", AuthorID: author.ID, GroupID: &group.ID}
	require.NoError(t, f.db.Create(post).Error)
	f.post(t, author.ID, "ungrouped")

	page, err := f.feed.GroupFeed(ctx, 0, "cats", 1)
	require.NoError(t, err)
	assert.Equal(t, "cats", page.Group.Slug)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "cat content", page.Posts[0].Text)

	_, err = f.feed.GroupFeed(ctx, 0, "missing", 1)
	assert.True(t, models.IsNotFound(err))
}

func TestProfileFeed(t *testing.T) {
	f := newServiceFixture(t)
	ctx := testContext()
	author := f.user(t, "author")
	reader := f.user(t, "reader")
	f.post(t, author.ID, "by author")
	f.post(t, reader.ID, "by reader")

	page, err := f.feed.ProfileFeed(ctx, reader.ID, "author", 1)
	require.NoError(t, err)
	assert.Equal(t, "author", page.Author.Username)
	assert.False(t, page.Following)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "by author", page.Posts[0].Text)

	require.NoError(t, f.social.Follow(ctx, reader.ID, "author"))

	page, err = f.feed.ProfileFeed(ctx, reader.ID, "author", 1)
	require.NoError(t, err)
	assert.True(t, page.Following)

	// Viewing your own profile never reports following.
	page, err = f.feed.ProfileFeed(ctx, author.ID, "author", 1)
	require.NoError(t, err)
	assert.False(t, page.Following)

	_, err = f.feed.ProfileFeed(ctx, 0, "ghost", 1)
	assert.True(t, models.IsNotFound(err))
}

func TestFollowingFeed(t *testing.T) {
	f := newServiceFixture(t)
	ctx := testContext()
	reader := f.user(t, "reader")
	followed := f.user(t, "followed")
	stranger := f.user(t, "stranger")
	f.post(t, followed.ID, "wanted")
	f.post(t, stranger.ID, "unwanted")

	// Anonymous viewers cannot have a following feed.
	_, err := f.feed.FollowingFeed(ctx, 0, 1)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeUnauth, appErr.Code)

	// An empty follow set is an empty page, not an error.
	page, err := f.feed.FollowingFeed(ctx, reader.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, int64(0), page.TotalCount)

	require.NoError(t, f.social.Follow(ctx, reader.ID, "followed"))

	page, err = f.feed.FollowingFeed(ctx, reader.ID, 1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "wanted", page.Posts[0].Text)
}

func TestGroupDirectory(t *testing.T) {
	f := newServiceFixture(t)
	f.group(t, "alpha")
	f.group(t, "beta")

	page, err := f.feed.GroupDirectory(testContext(), 1)
	require.NoError(t, err)
	assert.Len(t, page.Groups, 2)
	assert.Equal(t, int64(2), page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
}

func TestAuthorDirectory(t *testing.T) {
	f := newServiceFixture(t)
	f.user(t, "writer1")
	f.user(t, "writer2")
	f.user(t, "writer3")

	page, err := f.feed.AuthorDirectory(testContext(), 1)
	require.NoError(t, err)
	assert.Len(t, page.Authors, 3)
	assert.Equal(t, int64(3), page.TotalCount)
}
