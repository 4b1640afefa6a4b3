// Package service implements the application's business logic over the repositories.
package service

import (
	"context"

	"quill/internal/cache"
	"quill/internal/config"
	"quill/internal/models"
	"quill/internal/observability"
	"quill/internal/pagination"
	"quill/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// PostPage is one feed page of posts plus pagination totals.
type PostPage struct {
	Posts      []*models.Post `json:"posts"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

// ProfilePage is an author's feed page plus the author and the viewer's
// follow state toward them.
type ProfilePage struct {
	Author    *models.User `json:"author"`
	Following bool         `json:"following"`
	PostPage
}

// GroupFeedPage is a group's feed page plus the group itself.
type GroupFeedPage struct {
	Group *models.Group `json:"group"`
	PostPage
}

// GroupPage is one page of the group directory.
type GroupPage struct {
	Groups     []models.Group `json:"groups"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

// AuthorPage is one page of the author directory.
type AuthorPage struct {
	Authors    []models.User `json:"authors"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
}

// FeedService composes the paginated feeds. The viewer is always explicit:
// 0 means anonymous, anything else scopes the liked annotation and the
// following feed to that user.
type FeedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	socialRepo repository.SocialRepository
	cfg        *config.Config
}

// NewFeedService returns a new FeedService.
func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	socialRepo repository.SocialRepository,
	cfg *config.Config,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		socialRepo: socialRepo,
		cfg:        cfg,
	}
}

// GlobalFeed returns all posts most-recent-first. Anonymous pages are served
// through the response cache; pages seen by a logged-in viewer carry their
// liked flags and are computed fresh.
func (s *FeedService) GlobalFeed(ctx context.Context, viewerID uint, page int) (*PostPage, error) {
	span, ctx := observability.NewSpan(ctx, "feed.global")
	defer span.End()
	span.AddAttributes(attribute.Int("page", page))
	observability.FeedQueries.WithLabelValues("global").Inc()

	result := &PostPage{}
	fetch := func() error {
		total, err := s.postRepo.Count(ctx)
		if err != nil {
			return err
		}
		w := pagination.Resolve(total, page, s.cfg.PostsPerPage)
		posts, err := s.postRepo.List(ctx, w.Limit, w.Offset, viewerID)
		if err != nil {
			return err
		}
		*result = PostPage{Posts: posts, TotalCount: total, Page: w.Page, TotalPages: w.TotalPages}
		return nil
	}

	if viewerID == 0 {
		if err := cache.Aside(ctx, cache.GlobalFeedKey(page), result, cache.FeedTTL, fetch); err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := fetch(); err != nil {
		return nil, err
	}
	return result, nil
}

// GroupFeed returns the posts filed under the group identified by slug.
// An unresolvable slug is a NotFound the request layer maps to a 404.
func (s *FeedService) GroupFeed(ctx context.Context, viewerID uint, slug string, page int) (*GroupFeedPage, error) {
	span, ctx := observability.NewSpan(ctx, "feed.group")
	defer span.End()
	span.AddAttributes(attribute.String("slug", slug), attribute.Int("page", page))
	observability.FeedQueries.WithLabelValues("group").Inc()

	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	result := &GroupFeedPage{Group: group}
	fetch := func() error {
		total, err := s.postRepo.CountByGroup(ctx, group.ID)
		if err != nil {
			return err
		}
		w := pagination.Resolve(total, page, s.cfg.PostsPerPage)
		posts, err := s.postRepo.ListByGroup(ctx, group.ID, w.Limit, w.Offset, viewerID)
		if err != nil {
			return err
		}
		result.PostPage = PostPage{Posts: posts, TotalCount: total, Page: w.Page, TotalPages: w.TotalPages}
		return nil
	}

	if viewerID == 0 {
		if err := cache.Aside(ctx, cache.GroupFeedKey(slug, page), result, cache.FeedTTL, fetch); err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := fetch(); err != nil {
		return nil, err
	}
	return result, nil
}

// ProfileFeed returns the author's posts plus whether the viewer follows them.
func (s *FeedService) ProfileFeed(ctx context.Context, viewerID uint, username string, page int) (*ProfilePage, error) {
	observability.FeedQueries.WithLabelValues("profile").Inc()

	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != 0 && viewerID != author.ID {
		following, err = s.socialRepo.IsFollowing(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	total, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	w := pagination.Resolve(total, page, s.cfg.PostsPerPage)
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, w.Limit, w.Offset, viewerID)
	if err != nil {
		return nil, err
	}

	return &ProfilePage{
		Author:    author,
		Following: following,
		PostPage:  PostPage{Posts: posts, TotalCount: total, Page: w.Page, TotalPages: w.TotalPages},
	}, nil
}

// FollowingFeed returns posts by authors the viewer follows. It requires an
// authenticated viewer; an empty follow set yields an empty page, not an error.
func (s *FeedService) FollowingFeed(ctx context.Context, viewerID uint, page int) (*PostPage, error) {
	if viewerID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required for the following feed")
	}
	observability.FeedQueries.WithLabelValues("following").Inc()

	total, err := s.postRepo.CountFollowing(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	w := pagination.Resolve(total, page, s.cfg.PostsPerPage)
	posts, err := s.postRepo.ListFollowing(ctx, viewerID, w.Limit, w.Offset)
	if err != nil {
		return nil, err
	}

	return &PostPage{Posts: posts, TotalCount: total, Page: w.Page, TotalPages: w.TotalPages}, nil
}

// GroupDirectory lists all groups ordered by title.
func (s *FeedService) GroupDirectory(ctx context.Context, page int) (*GroupPage, error) {
	total, err := s.groupRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	w := pagination.Resolve(total, page, s.cfg.GroupsPerPage)
	groups, err := s.groupRepo.List(ctx, w.Limit, w.Offset)
	if err != nil {
		return nil, err
	}

	return &GroupPage{Groups: groups, TotalCount: total, Page: w.Page, TotalPages: w.TotalPages}, nil
}

// AuthorDirectory lists all users ordered by first name.
func (s *FeedService) AuthorDirectory(ctx context.Context, page int) (*AuthorPage, error) {
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	w := pagination.Resolve(total, page, s.cfg.AuthorsPerPage)
	authors, err := s.userRepo.List(ctx, w.Limit, w.Offset)
	if err != nil {
		return nil, err
	}

	return &AuthorPage{Authors: authors, TotalCount: total, Page: w.Page, TotalPages: w.TotalPages}, nil
}
