package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pregbuddy/pregbuddy/internal/models"
)

func (handler *Handler) ChatIntro(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"greeting":   models.ChatGreeting,
		"disclaimer": models.ChatDisclaimer,
	})
}

func (handler *Handler) Chat(c *fiber.Ctx) error {
	input := chatInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid chat input")
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return apiError(c, fiber.StatusBadRequest, "message is required")
	}

	reply, topic := handler.chat.Reply(message)
	handler.logger.Debug("chat reply picked", zap.String("topic", topic))

	response := fiber.Map{
		"reply":      reply,
		"disclaimer": models.ChatDisclaimer,
	}
	if topic != "" {
		response["topic"] = topic
	}
	return c.JSON(response)
}
