package presenters

import (
	"errors"

	"Experience-Club-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

type Meta struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type Response struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Meta: Meta{
			Success: true,
			Message: message,
		},
		Data: data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	meta := Meta{
		Success: false,
		Message: message,
	}
	if err != nil {
		meta.Error = err.Error()
	}
	return c.Status(code).JSON(Response{Meta: meta})
}

// StatusCode maps service sentinel errors onto HTTP statuses so handlers stay
// free of per-error switch statements.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrBrandNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrCurrencyNotFound),
		errors.Is(err, domain.ErrCartItemNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrProgressNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrUnauthorizedOrder),
		errors.Is(err, domain.ErrSignatureInvalid):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrCredentialsInvalid):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusBadRequest
	}
}
