package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ExportJSON downloads a snapshot of the session: the profile and every
// tracking reading. There is no history to export; each metric carries only
// its latest value.
func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	now := time.Now().In(handler.location)

	payload := fiber.Map{
		"exported_at":  now.Format(time.RFC3339),
		"profile":      handler.profiles.Profile(),
		"is_onboarded": handler.profiles.IsOnboarded(),
		"tracking":     handler.tracking.Entries(now),
	}

	serialized, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	filename := fmt.Sprintf("pregbuddy-export-%s.json", now.Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(serialized)
}
