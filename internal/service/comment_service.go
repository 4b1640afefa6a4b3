package service

import (
	"context"
	"log/slog"

	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"
)

// CommentService owns comment creation and the two-party delete rule.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment validates and attaches a comment by authorID to the post.
func (s *CommentService) AddComment(ctx context.Context, authorID, postID uint, in validation.CommentInput) (*models.Comment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(ctx, postID, authorID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:     in.Text,
		AuthorID: authorID,
		PostID:   postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// DeleteComment removes the comment when the requester wrote it or owns the
// post it sits on. Anyone else's attempt is a silent no-op.
func (s *CommentService) DeleteComment(ctx context.Context, requesterID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if requesterID != comment.AuthorID && requesterID != comment.Post.AuthorID {
		middleware.Logger.InfoContext(ctx, "Ignoring unauthorized comment delete",
			slog.Any("comment_id", commentID),
			slog.Any("requester_id", requesterID),
		)
		return nil
	}

	return s.commentRepo.Delete(ctx, commentID)
}
