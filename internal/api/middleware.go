package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pregbuddy/pregbuddy/internal/i18n"
	"github.com/pregbuddy/pregbuddy/internal/models"
)

const (
	languageCookieName = "pregbuddy_lang"
	contextLanguageKey = "current_language"
)

// languageCodes maps profile languages onto locale codes.
var languageCodes = map[models.Language]string{
	models.LanguageEnglish: i18n.LangEN,
	models.LanguageHindi:   i18n.LangHI,
	models.LanguageTamil:   i18n.LangTA,
	models.LanguageTelugu:  i18n.LangTE,
	models.LanguageBengali: i18n.LangBN,
	models.LanguageMarathi: i18n.LangMR,
}

func languageCodeFor(language models.Language) string {
	if code, ok := languageCodes[language]; ok {
		return code
	}
	return i18n.LangEN
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}

// LanguageMiddleware resolves the request language: explicit cookie first,
// then the stored profile preference, then the Accept-Language header.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	if handler.i18n == nil {
		return c.Next()
	}

	language := ""
	if cookieLanguage := c.Cookies(languageCookieName); cookieLanguage != "" {
		language = handler.i18n.NormalizeLanguage(cookieLanguage)
	} else if handler.profiles.IsOnboarded() {
		language = languageCodeFor(handler.profiles.Profile().Language)
	} else {
		language = handler.i18n.DetectFromAcceptLanguage(c.Get("Accept-Language"))
	}

	c.Locals(contextLanguageKey, language)
	return c.Next()
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    language,
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: "Lax",
	})
}

// OnboardingRequired gates the application surface: until the profile store
// reports a committed onboarding, every request is pointed back at the
// wizard.
func (handler *Handler) OnboardingRequired(c *fiber.Ctx) error {
	if !handler.profiles.IsOnboarded() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":    "onboarding required",
			"redirect": "/onboarding",
		})
	}
	return c.Next()
}

// NotOnboardedOnly is the inverse gate for the wizard endpoints: a session
// that already committed a profile is sent to the dashboard instead.
func (handler *Handler) NotOnboardedOnly(c *fiber.Ctx) error {
	if handler.profiles.IsOnboarded() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":    "already onboarded",
			"redirect": "/dashboard",
		})
	}
	return c.Next()
}
