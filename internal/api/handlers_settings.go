package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pregbuddy/pregbuddy/internal/models"
	"github.com/pregbuddy/pregbuddy/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile := handler.profiles.Profile()
	now := time.Now().In(handler.location)

	var dueDate time.Time
	if profile.DueDate != nil {
		dueDate = *profile.DueDate
	}

	return c.JSON(fiber.Map{
		"profile":      profile,
		"is_onboarded": handler.profiles.IsOnboarded(),
		"progress":     services.DeriveProgress(dueDate, now),
		"languages":    models.SupportedLanguages(),
	})
}

func (handler *Handler) UpdateLanguageSettings(c *fiber.Ctx) error {
	input := languageSettingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid settings input")
	}

	language := models.Language(input.Language)
	if !models.IsValidLanguage(language) {
		return apiError(c, fiber.StatusBadRequest, "unsupported language")
	}

	handler.profiles.Update(services.ProfilePatch{Language: &language})
	handler.setLanguageCookie(c, languageCodeFor(language))

	return c.JSON(fiber.Map{
		"ok":      true,
		"message": handler.localizedMessage(c, "settings.language_updated", "Language updated"),
	})
}

// ResetProfile ends the session state explicitly: profile and draft go back
// to their session-start defaults and the onboarding gate closes again.
func (handler *Handler) ResetProfile(c *fiber.Ctx) error {
	handler.profiles.Reset()
	handler.onboarding.Reset()
	handler.logger.Info("profile reset", zap.String("reason", "settings"))

	return c.JSON(fiber.Map{
		"ok":       true,
		"redirect": "/onboarding",
		"message":  handler.localizedMessage(c, "settings.reset_done", "Profile reset, onboarding required"),
	})
}

// SetLanguage switches the interface language without touching the profile
// preference.
func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	if handler.i18n == nil {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	language := handler.i18n.NormalizeLanguage(c.Params("lang"))
	handler.setLanguageCookie(c, language)
	return c.JSON(fiber.Map{"ok": true, "language": language})
}
