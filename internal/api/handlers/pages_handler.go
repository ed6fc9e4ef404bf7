package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/domcreator/dashboard/internal/models"
	"github.com/domcreator/dashboard/internal/service"
	"github.com/domcreator/dashboard/internal/transfer"
)

// PageHandler serves the server-rendered dashboard pages.
type PageHandler struct {
	posts     service.PostService
	analytics service.AnalyticsService
}

func NewPageHandler(posts service.PostService, analytics service.AnalyticsService) *PageHandler {
	return &PageHandler{posts: posts, analytics: analytics}
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	return c.Redirect("/scheduler")
}

func (h *PageHandler) Scheduler(c *fiber.Ctx) error {
	posts, err := h.posts.List(c.Context())
	if err != nil {
		slog.Error(err.Error())
		return fiber.ErrInternalServerError
	}

	return c.Render("scheduler", fiber.Map{
		"Title":           "Scheduler",
		"Posts":           posts,
		"Platforms":       models.Platforms,
		"PlatformDetails": models.PlatformDetails,
	})
}

func (h *PageHandler) Analytics(c *fiber.Ctx) error {
	summary, err := h.analytics.Summary(c.Context())
	if err != nil {
		slog.Error(err.Error())
		return fiber.ErrInternalServerError
	}

	// Keep the cards in display order rather than map order.
	cards := make([]*transfer.PlatformAnalytics, 0, len(models.Platforms))
	for _, platform := range models.Platforms {
		cards = append(cards, summary[platform])
	}

	return c.Render("analytics", fiber.Map{
		"Title": "Analytics",
		"Cards": cards,
	})
}
