package server

import (
	"quill/internal/models"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile handles PUT /api/profiles/:username
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var in validation.ProfileInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), requireUserID(c), c.Params("username"), in)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(user)
}

// UpdateStatus handles PUT /api/profiles/:username/status
func (s *Server) UpdateStatus(c *fiber.Ctx) error {
	var in validation.StatusInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateStatus(c.UserContext(), requireUserID(c), c.Params("username"), in)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(user)
}
