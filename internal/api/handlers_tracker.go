package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pregbuddy/pregbuddy/internal/models"
	"github.com/pregbuddy/pregbuddy/internal/services"
)

func (handler *Handler) GetTracking(c *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	return c.JSON(fiber.Map{"entries": handler.tracking.Entries(now)})
}

func (handler *Handler) GetMetric(c *fiber.Ctx) error {
	metric := models.Metric(c.Params("metric"))
	now := time.Now().In(handler.location)

	entry, err := handler.tracking.ReadMetric(metric, now)
	if err != nil {
		if errors.Is(err, services.ErrMetricNotFound) {
			return apiError(c, fiber.StatusNotFound, "unknown metric")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to read metric")
	}
	return c.JSON(entry)
}

func (handler *Handler) UpdateMetric(c *fiber.Ctx) error {
	metric := models.Metric(c.Params("metric"))

	input := trackingWriteInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid tracking input")
	}

	now := time.Now().In(handler.location)
	entry, err := handler.tracking.WriteMetric(metric, input.Value, now)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMetricNotFound):
			return apiError(c, fiber.StatusNotFound, "unknown metric")
		case errors.Is(err, services.ErrInvalidValue):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update metric")
		}
	}

	handler.logger.Info("tracking metric updated",
		zap.String("metric", string(metric)),
		zap.String("value", entry.Value),
	)

	return c.JSON(fiber.Map{
		"ok":      true,
		"entry":   entry,
		"message": handler.localizedMessage(c, "tracker.updated", "Tracking updated"),
	})
}

func (handler *Handler) GetSymptomGuide(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"symptoms": handler.symptoms})
}
