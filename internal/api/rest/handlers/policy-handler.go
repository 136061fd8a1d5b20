package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/policyvault/policy-service/internal/api/rest/middleware"
	"github.com/policyvault/policy-service/internal/dto"
	"github.com/policyvault/policy-service/internal/helper/utils"
	"github.com/policyvault/policy-service/internal/repository"
	"github.com/policyvault/policy-service/internal/services"
)

func ownerID(ctx *fiber.Ctx) string {
	return middleware.OwnerID(ctx)
}

type PolicyHandler struct {
	svc services.PolicyService
}

func NewPolicyHandler(svc services.PolicyService) *PolicyHandler {
	return &PolicyHandler{svc: svc}
}

func (h *PolicyHandler) SetupRoutes(app *fiber.App) {
	app.Get("/policies", h.List)
	app.Get("/policies/:id", h.Get)
	app.Post("/policies", h.Create)
	app.Put("/policies/:id", h.Update)
	app.Delete("/policies/:id", h.Delete)
}

func (h *PolicyHandler) List(ctx *fiber.Ctx) error {
	policies, err := h.svc.List(ownerID(ctx))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to fetch policies")
	}
	return ctx.Status(fiber.StatusOK).JSON(policies)
}

func (h *PolicyHandler) Get(ctx *fiber.Ctx) error {
	policy, err := h.svc.Get(ctx.Params("id"), ownerID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Policy not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to fetch policy")
	}
	return ctx.Status(fiber.StatusOK).JSON(policy)
}

func (h *PolicyHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.PolicyCreateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	policy, err := h.svc.Create(ownerID(ctx), requestBody)
	if err != nil {
		// Field-level problems surface as a plain store failure.
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to create policy")
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Policy created successfully",
		"policy":  policy,
	})
}

func (h *PolicyHandler) Update(ctx *fiber.Ctx) error {
	var requestBody dto.PolicyUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	policy, err := h.svc.Update(ctx.Params("id"), ownerID(ctx), requestBody)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Policy not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to update policy")
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Policy updated successfully",
		"policy":  policy,
	})
}

func (h *PolicyHandler) Delete(ctx *fiber.Ctx) error {
	if err := h.svc.Delete(ctx.Params("id"), ownerID(ctx)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Policy not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to delete policy")
	}

	return utils.ResponseMessage(ctx, fiber.StatusOK, "Policy and associated nominees deleted successfully")
}
