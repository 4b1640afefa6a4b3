package validation

import (
	"bytes"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"quill/internal/models"
)

// maxImageBytes caps uploads at 10 MiB.
const maxImageBytes = 10 << 20

// SniffImage verifies that data is a decodable PNG, JPEG, GIF, or WebP image
// and returns the detected format. Anything else is a VALIDATION_ERROR.
func SniffImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", models.NewFieldValidationError(map[string]string{
			"image": "Image file is empty",
		})
	}
	if len(data) > maxImageBytes {
		return "", models.NewFieldValidationError(map[string]string{
			"image": "Image too large (max 10 MiB)",
		})
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", models.NewFieldValidationError(map[string]string{
			"image": "File is not a supported image",
		})
	}
	return format, nil
}
