package server

import (
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GlobalFeed handles GET /api/posts?page=N
func (s *Server) GlobalFeed(c *fiber.Ctx) error {
	page, err := s.feedService.GlobalFeed(c.UserContext(), viewerID(c), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(page)
}

// GroupFeed handles GET /api/groups/:slug?page=N
func (s *Server) GroupFeed(c *fiber.Ctx) error {
	page, err := s.feedService.GroupFeed(c.UserContext(), viewerID(c), c.Params("slug"), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(page)
}

// ProfileFeed handles GET /api/profiles/:username?page=N
func (s *Server) ProfileFeed(c *fiber.Ctx) error {
	page, err := s.feedService.ProfileFeed(c.UserContext(), viewerID(c), c.Params("username"), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(page)
}

// FollowingFeed handles GET /api/feed?page=N
func (s *Server) FollowingFeed(c *fiber.Ctx) error {
	page, err := s.feedService.FollowingFeed(c.UserContext(), requireUserID(c), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(page)
}

// GroupDirectory handles GET /api/groups?page=N
func (s *Server) GroupDirectory(c *fiber.Ctx) error {
	page, err := s.feedService.GroupDirectory(c.UserContext(), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(page)
}

// AuthorDirectory handles GET /api/authors?page=N
func (s *Server) AuthorDirectory(c *fiber.Ctx) error {
	page, err := s.feedService.AuthorDirectory(c.UserContext(), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(page)
}
