package server

import (
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikeResponse reports the new like state after a toggle.
type LikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// ToggleLike handles POST /api/posts/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	liked, count, err := s.socialService.ToggleLike(c.UserContext(), requireUserID(c), postID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(LikeResponse{Liked: liked, LikesCount: count})
}

// Follow handles POST /api/profiles/:username/follow
func (s *Server) Follow(c *fiber.Ctx) error {
	if err := s.socialService.Follow(c.UserContext(), requireUserID(c), c.Params("username")); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Unfollow handles DELETE /api/profiles/:username/follow
func (s *Server) Unfollow(c *fiber.Ctx) error {
	if err := s.socialService.Unfollow(c.UserContext(), requireUserID(c), c.Params("username")); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
