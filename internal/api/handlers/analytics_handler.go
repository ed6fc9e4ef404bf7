package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/domcreator/dashboard/internal/service"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: service}
}

func (h *AnalyticsHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.s.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to build analytics summary",
		})
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}
