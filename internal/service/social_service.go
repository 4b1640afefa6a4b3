package service

import (
	"context"

	"quill/internal/cache"
	"quill/internal/observability"
	"quill/internal/repository"
)

// SocialService owns the follow and like edges.
type SocialService struct {
	socialRepo repository.SocialRepository
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
}

// NewSocialService returns a new SocialService.
func NewSocialService(
	socialRepo repository.SocialRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
) *SocialService {
	return &SocialService{
		socialRepo: socialRepo,
		userRepo:   userRepo,
		postRepo:   postRepo,
	}
}

// Follow creates the edge from the viewer to the author named by username.
// Following yourself, or someone you already follow, is a silent no-op.
func (s *SocialService) Follow(ctx context.Context, viewerID uint, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author.ID == viewerID {
		return nil
	}
	if err := s.socialRepo.Follow(ctx, viewerID, author.ID); err != nil {
		return err
	}
	observability.FollowChanges.WithLabelValues("follow").Inc()
	return nil
}

// Unfollow removes the edge. A missing edge is a no-op.
func (s *SocialService) Unfollow(ctx context.Context, viewerID uint, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := s.socialRepo.Unfollow(ctx, viewerID, author.ID); err != nil {
		return err
	}
	observability.FollowChanges.WithLabelValues("unfollow").Inc()
	return nil
}

// IsFollowing reports whether the viewer follows the author.
func (s *SocialService) IsFollowing(ctx context.Context, viewerID uint, username string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return s.socialRepo.IsFollowing(ctx, viewerID, author.ID)
}

// ToggleLike flips the viewer's like on the post and returns the new state
// along with the post's updated like count.
func (s *SocialService) ToggleLike(ctx context.Context, viewerID, postID uint) (bool, int64, error) {
	span, ctx := observability.NewSpan(ctx, "social.toggle_like")
	defer span.End()

	if _, err := s.postRepo.GetByID(ctx, postID, viewerID); err != nil {
		span.SetError(err)
		return false, 0, err
	}

	liked, err := s.socialRepo.ToggleLike(ctx, viewerID, postID)
	if err != nil {
		return false, 0, err
	}

	if liked {
		observability.LikeToggles.WithLabelValues("liked").Inc()
	} else {
		observability.LikeToggles.WithLabelValues("unliked").Inc()
	}
	cache.InvalidateFeeds(ctx)

	count, err := s.socialRepo.CountLikes(ctx, postID)
	if err != nil {
		return liked, 0, err
	}
	return liked, count, nil
}

// IsLiked reports whether the viewer has liked the post.
func (s *SocialService) IsLiked(ctx context.Context, viewerID, postID uint) (bool, error) {
	return s.socialRepo.IsLiked(ctx, viewerID, postID)
}
