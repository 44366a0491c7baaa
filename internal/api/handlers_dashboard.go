package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pregbuddy/pregbuddy/internal/services"
)

// Dashboard derives progress fresh on every call; nothing time-dependent is
// cached between requests.
func (handler *Handler) Dashboard(c *fiber.Ctx) error {
	profile := handler.profiles.Profile()
	now := time.Now().In(handler.location)

	var dueDate time.Time
	if profile.DueDate != nil {
		dueDate = *profile.DueDate
	}
	progress := services.DeriveProgress(dueDate, now)

	name := profile.Name
	if name == "" {
		name = handler.localizedMessage(c, "dashboard.default_name", "Mom")
	}

	response := fiber.Map{
		"greeting":     handler.i18nFormat(c, "dashboard.greeting", "Hi, %s! 👋", name),
		"subtitle":     handler.localizedMessage(c, "dashboard.subtitle", "Here's your pregnancy update for today"),
		"current_week": profile.CurrentWeek,
		"progress":     progress,
		"tip":          handler.tips.Current(),
	}

	if milestone, ok := services.NearestMilestone(profile.CurrentWeek, handler.milestones); ok {
		response["milestone"] = milestone
	}
	if profile.IsTrialActive {
		response["trial_banner"] = handler.i18nFormat(c, "dashboard.trial_banner",
			"Trial: %d days left - Enjoy full access to all features", profile.TrialDaysLeft)
	}

	return c.JSON(response)
}

// NextTip switches the tip of the day to a different one on demand.
func (handler *Handler) NextTip(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"tip": handler.tips.NewTip()})
}

func (handler *Handler) i18nFormat(c *fiber.Ctx, key string, fallback string, args ...any) string {
	if handler.i18n == nil {
		return fmt.Sprintf(fallback, args...)
	}
	translated := handler.i18n.Translate(currentLanguage(c), key)
	if translated == key {
		translated = fallback
	}
	return fmt.Sprintf(translated, args...)
}
