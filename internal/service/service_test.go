package service

import (
	"context"
	"fmt"
	"testing"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/models"
	"quill/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// serviceFixture wires the full service layer over an in-memory database.
type serviceFixture struct {
	db       *gorm.DB
	users    *UserService
	posts    *PostService
	comments *CommentService
	social   *SocialService
	feed     *FeedService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	socialRepo := repository.NewSocialRepository(db)

	cfg := &config.Config{PostsPerPage: 10, GroupsPerPage: 12, AuthorsPerPage: 12}

	return &serviceFixture{
		db:       db,
		users:    NewUserService(userRepo),
		posts:    NewPostService(postRepo, groupRepo, commentRepo),
		comments: NewCommentService(commentRepo, postRepo),
		social:   NewSocialService(socialRepo, userRepo, postRepo),
		feed:     NewFeedService(postRepo, groupRepo, userRepo, socialRepo, cfg),
	}
}

func (f *serviceFixture) user(t *testing.T, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "hashed",
	}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func (f *serviceFixture) group(t *testing.T, slug string) *models.Group {
	t.Helper()

	group := &models.Group{Title: "Group " + slug, Slug: slug}
	require.NoError(t, f.db.Create(group).Error)
	return group
}

func (f *serviceFixture) post(t *testing.T, authorID uint, text string) *models.Post {
	t.Helper()

	post := &models.Post{Text: text, AuthorID: authorID}
	require.NoError(t, f.db.Create(post).Error)
	return post
}

func testContext() context.Context {
	return context.Background()
}
