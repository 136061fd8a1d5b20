package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/policyvault/policy-service/internal/helper/utils"
	"github.com/policyvault/policy-service/internal/services"
)

type AnalyticsHandler struct {
	svc services.AnalyticsService
}

func NewAnalyticsHandler(svc services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) SetupRoutes(app *fiber.App) {
	app.Get("/analytics", h.Report)
}

func (h *AnalyticsHandler) Report(ctx *fiber.Ctx) error {
	report, err := h.svc.Report(ownerID(ctx))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to generate analytics")
	}
	return ctx.Status(fiber.StatusOK).JSON(report)
}
