package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/policyvault/policy-service/internal/dto"
	"github.com/policyvault/policy-service/internal/helper/utils"
	"github.com/policyvault/policy-service/internal/repository"
	"github.com/policyvault/policy-service/internal/services"
)

type NomineeHandler struct {
	svc services.NomineeService
}

func NewNomineeHandler(svc services.NomineeService) *NomineeHandler {
	return &NomineeHandler{svc: svc}
}

func (h *NomineeHandler) SetupRoutes(app *fiber.App) {
	app.Get("/nominees", h.List)
	app.Get("/policies/:policyId/nominees", h.ListForPolicy)
	app.Post("/nominees", h.Create)
	app.Put("/nominees/:id", h.Update)
	app.Patch("/nominees/:id/verify", h.Verify)
	app.Delete("/nominees/:id", h.Delete)
}

func (h *NomineeHandler) List(ctx *fiber.Ctx) error {
	nominees, err := h.svc.List(ownerID(ctx))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to fetch nominees")
	}
	return ctx.Status(fiber.StatusOK).JSON(nominees)
}

func (h *NomineeHandler) ListForPolicy(ctx *fiber.Ctx) error {
	nominees, err := h.svc.ListForPolicy(ctx.Params("policyId"), ownerID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Policy not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to fetch nominees")
	}
	return ctx.Status(fiber.StatusOK).JSON(nominees)
}

func (h *NomineeHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.NomineeCreateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	nominee, err := h.svc.Create(ownerID(ctx), requestBody)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPolicyRef):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Invalid policy ID format. Please select a valid policy.")
		case errors.Is(err, repository.ErrNotFound):
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Policy not found or does not belong to you")
		default:
			return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to create nominee")
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Nominee added successfully",
		"nominee": nominee,
	})
}

func (h *NomineeHandler) Update(ctx *fiber.Ctx) error {
	var requestBody dto.NomineeUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	nominee, err := h.svc.Update(ctx.Params("id"), ownerID(ctx), requestBody)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Nominee not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to update nominee")
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Nominee updated successfully",
		"nominee": nominee,
	})
}

func (h *NomineeHandler) Verify(ctx *fiber.Ctx) error {
	nominee, err := h.svc.Verify(ctx.Params("id"), ownerID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Nominee not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to verify nominee")
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Nominee verified successfully",
		"nominee": nominee,
	})
}

func (h *NomineeHandler) Delete(ctx *fiber.Ctx) error {
	if err := h.svc.Delete(ctx.Params("id"), ownerID(ctx)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Nominee not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to delete nominee")
	}

	return utils.ResponseMessage(ctx, fiber.StatusOK, "Nominee deleted successfully")
}
