package handlers

import (
	"strconv"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/internal/api/presenters"
	"Experience-Club-Backend/pkg/coin"

	"github.com/gofiber/fiber/v2"
)

type (
	CoinHandler interface {
		GetUserCoins(c *fiber.Ctx) error
		GetCoinTransactionHistory(c *fiber.Ctx) error
	}

	coinHandler struct {
		coinService coin.CoinService
	}
)

func NewCoinHandler(coinService coin.CoinService) CoinHandler {
	return &coinHandler{coinService: coinService}
}

func (h *coinHandler) GetUserCoins(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.coinService.GetUserCoins(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetUserCoins, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserCoins)
}

func (h *coinHandler) GetCoinTransactionHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	transactions, count, err := h.coinService.GetCoinTransactionHistory(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetCoinHistory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetCoinHistory)
}
