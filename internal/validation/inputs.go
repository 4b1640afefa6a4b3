// Package validation checks mutation inputs before they reach the services.
// Each mutation has a typed input struct; failures come back as a field → message
// map wrapped in a VALIDATION_ERROR AppError, so the core never sees bad data.
package validation

import (
	"net/mail"
	"strings"

	"quill/internal/models"
)

const (
	maxPostTextLen = 50000
	maxCommentLen  = 5000
	maxStatusLen   = 200
	maxNameLen     = 150
	minUsernameLen = 3
	maxUsernameLen = 150
	minPasswordLen = 8
)

// PostInput carries the author-editable fields of a post.
type PostInput struct {
	Text      string `json:"text"`
	GroupSlug string `json:"group_slug,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
}

// Validate returns nil or a field-level VALIDATION_ERROR.
func (in PostInput) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Text) == "" {
		fields["text"] = "Text is required"
	}
	if len(in.Text) > maxPostTextLen {
		fields["text"] = "Text too long"
	}
	if len(fields) > 0 {
		return models.NewFieldValidationError(fields)
	}
	return nil
}

// CommentInput carries the text of a new comment.
type CommentInput struct {
	Text string `json:"text"`
}

func (in CommentInput) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Text) == "" {
		fields["text"] = "Text is required"
	}
	if len(in.Text) > maxCommentLen {
		fields["text"] = "Text too long"
	}
	if len(fields) > 0 {
		return models.NewFieldValidationError(fields)
	}
	return nil
}

// StatusInput carries a profile status edit.
type StatusInput struct {
	Status string `json:"status"`
}

func (in StatusInput) Validate() error {
	if len(in.Status) > maxStatusLen {
		return models.NewFieldValidationError(map[string]string{
			"status": "Status too long",
		})
	}
	return nil
}

// ProfileInput carries the editable identity fields.
type ProfileInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar,omitempty"`
}

func (in ProfileInput) Validate() error {
	fields := map[string]string{}
	if l := len(in.Username); l < minUsernameLen || l > maxUsernameLen {
		fields["username"] = "Username must be between 3 and 150 characters"
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		fields["email"] = "Invalid email address"
	}
	if len(in.FirstName) > maxNameLen {
		fields["first_name"] = "First name too long"
	}
	if len(in.LastName) > maxNameLen {
		fields["last_name"] = "Last name too long"
	}
	if len(fields) > 0 {
		return models.NewFieldValidationError(fields)
	}
	return nil
}

// SignupInput carries new-account credentials.
type SignupInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func (in SignupInput) Validate() error {
	fields := map[string]string{}
	if l := len(in.Username); l < minUsernameLen || l > maxUsernameLen {
		fields["username"] = "Username must be between 3 and 150 characters"
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		fields["email"] = "Invalid email address"
	}
	if len(in.Password) < minPasswordLen {
		fields["password"] = "Password must be at least 8 characters"
	}
	if len(fields) > 0 {
		return models.NewFieldValidationError(fields)
	}
	return nil
}
