package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"
)

// PostService owns post creation, edits, and deletion, including the
// author-only ownership rules.
type PostService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	commentRepo repository.CommentRepository
}

// NewPostService returns a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	commentRepo repository.CommentRepository,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
	}
}

// resolveGroupID maps an optional slug onto a group ID, failing with NotFound
// for a slug that doesn't resolve.
func (s *PostService) resolveGroupID(ctx context.Context, slug string) (*uint, error) {
	if slug == "" {
		return nil, nil
	}
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &group.ID, nil
}

// CreatePost validates the input and stores a new post owned by authorID.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, in validation.PostInput) (*models.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	groupID, err := s.resolveGroupID(ctx, in.GroupSlug)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     in.Text,
		AuthorID: authorID,
		GroupID:  groupID,
		ImageURL: in.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, authorID)
}

// GetPost returns the post with its comments, annotated for the viewer.
func (s *PostService) GetPost(ctx context.Context, viewerID, postID uint) (*models.Post, []*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID, viewerID)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

// EditPost applies the input to the post when the requester is its author.
// Anyone else gets a Forbidden and the post is untouched.
func (s *PostService) EditPost(ctx context.Context, requesterID, postID uint, in validation.PostInput) (*models.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID, requesterID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != requesterID {
		return nil, models.NewForbiddenError("Only the author can edit this post")
	}

	groupID, err := s.resolveGroupID(ctx, in.GroupSlug)
	if err != nil {
		return nil, err
	}

	post.Text = in.Text
	post.GroupID = groupID
	post.ImageURL = in.ImageURL
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID, requesterID)
}

// DeletePost removes the post when the requester is its author. The delete
// cascades to the post's comments and likes.
func (s *PostService) DeletePost(ctx context.Context, requesterID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, requesterID)
	if err != nil {
		return err
	}
	if post.AuthorID != requesterID {
		return models.NewForbiddenError("Only the author can delete this post")
	}
	return s.postRepo.Delete(ctx, postID)
}
