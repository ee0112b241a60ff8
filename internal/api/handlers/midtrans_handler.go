package handlers

import (
	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/internal/api/presenters"
	"Experience-Club-Backend/pkg/midtrans"

	"github.com/gofiber/fiber/v2"
)

type (
	MidtransHandler interface {
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	midtransHandler struct {
		midtransService midtrans.MidtransService
	}
)

func NewMidtransHandler(midtransService midtrans.MidtransService) MidtransHandler {
	return &midtransHandler{midtransService: midtransService}
}

func (h *midtransHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.midtransService.HandleNotification(c.Context(), payload); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, "notification processed")
}
