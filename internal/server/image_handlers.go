package server

import (
	"os"
	"path/filepath"

	"quill/internal/models"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// mediaDir is where uploaded post and avatar images land.
const mediaDir = "media"

// UploadImage handles POST /api/images. The raw body must be a decodable
// image; anything else is rejected before touching disk. The returned URL is
// what callers put into a post's or profile's image field.
func (s *Server) UploadImage(c *fiber.Ctx) error {
	data := c.Body()

	format, err := validation.SniffImage(data)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	name := uuid.NewString() + "." + format
	path := filepath.Join(mediaDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url":    "/media/" + name,
		"format": format,
	})
}
