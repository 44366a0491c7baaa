package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var errMissingStores = errors.New("api: profile, onboarding and tracking stores are required")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func redirectJSON(c *fiber.Ctx, path string) error {
	return c.JSON(fiber.Map{"ok": true, "redirect": path})
}

// localizedMessage resolves a catalog key for the request language, falling
// back to the given literal when the key is unknown.
func (handler *Handler) localizedMessage(c *fiber.Ctx, key string, fallback string) string {
	if handler.i18n == nil {
		return fallback
	}
	translated := handler.i18n.Translate(currentLanguage(c), key)
	if translated == key {
		return fallback
	}
	return translated
}
