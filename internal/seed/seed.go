// Package seed populates a development database with plausible content.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"math/rand"

	"quill/internal/models"
	"quill/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed fixtures.yml
var fixturesYAML []byte

type groupFixture struct {
	Title       string `yaml:"title"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

type fixtures struct {
	Groups []groupFixture `yaml:"groups"`
}

// Options controls how much data Run generates.
type Options struct {
	Users        int
	PostsPerUser int
	Password     string
}

// DefaultOptions seeds a small but usable development dataset.
func DefaultOptions() Options {
	return Options{
		Users:        8,
		PostsPerUser: 5,
		Password:     "seedpassword",
	}
}

// Run fills the database with the fixture groups plus generated users, posts,
// comments, follows, and likes. It is idempotent on groups (slug conflict
// skips) but always adds fresh users.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	var fx fixtures
	if err := yaml.Unmarshal(fixturesYAML, &fx); err != nil {
		return fmt.Errorf("parsing group fixtures: %w", err)
	}

	groups := make([]*models.Group, 0, len(fx.Groups))
	for _, gf := range fx.Groups {
		group := &models.Group{Title: gf.Title, Slug: gf.Slug, Description: gf.Description}
		var existing models.Group
		err := db.WithContext(ctx).Where("slug = ?", gf.Slug).First(&existing).Error
		if err == nil {
			groups = append(groups, &existing)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.WithContext(ctx).Create(group).Error; err != nil {
			return err
		}
		groups = append(groups, group)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.MinCost)
	if err != nil {
		return err
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user := &models.User{
			Username:  fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:     gofakeit.Email(),
			Password:  string(hashed),
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Status:    gofakeit.Sentence(6),
		}
		if err := db.WithContext(ctx).Create(user).Error; err != nil {
			return err
		}
		users = append(users, user)
	}

	var posts []*models.Post
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post := &models.Post{
				Text:     gofakeit.Paragraph(1, 3, 12, " "),
				AuthorID: user.ID,
			}
			// Roughly two thirds of posts land in a group.
			if len(groups) > 0 && rand.Intn(3) != 0 {
				post.GroupID = &groups[rand.Intn(len(groups))].ID
			}
			if err := db.WithContext(ctx).Create(post).Error; err != nil {
				return err
			}
			posts = append(posts, post)
		}
	}

	social := repository.NewSocialRepository(db)
	for _, user := range users {
		for _, other := range users {
			if other.ID == user.ID || rand.Intn(3) != 0 {
				continue
			}
			if err := social.Follow(ctx, user.ID, other.ID); err != nil {
				return err
			}
		}
		for _, post := range posts {
			if post.AuthorID == user.ID || rand.Intn(4) != 0 {
				continue
			}
			if _, err := social.ToggleLike(ctx, user.ID, post.ID); err != nil {
				return err
			}
		}
	}

	for _, post := range posts {
		for i := 0; i < rand.Intn(4); i++ {
			comment := &models.Comment{
				Text:     gofakeit.Sentence(10),
				AuthorID: users[rand.Intn(len(users))].ID,
				PostID:   post.ID,
			}
			if err := db.WithContext(ctx).Create(comment).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
