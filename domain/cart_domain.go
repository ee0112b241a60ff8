package domain

import (
	"errors"
)

var (
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessAddCartItem    = "item added to cart"
	MessageSuccessUpdateCartItem = "cart item updated"
	MessageSuccessRemoveCartItem = "item removed from cart"
	MessageSuccessClearCart      = "cart cleared"

	MessageFailedGetCart        = "failed to retrieve cart"
	MessageFailedAddCartItem    = "failed to add item to cart"
	MessageFailedUpdateCartItem = "failed to update cart item"
	MessageFailedRemoveCartItem = "failed to remove item from cart"
	MessageFailedClearCart      = "failed to clear cart"

	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type (
	AddCartItemRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"required,min=1"`
	}

	UpdateCartItemRequest struct {
		Quantity int `json:"quantity" validate:"required,min=1"`
	}

	CartItemResponse struct {
		ProductID   string  `json:"product_id"`
		ProductName string  `json:"product_name"`
		Slug        string  `json:"slug"`
		ImageURL    string  `json:"image_url,omitempty"`
		Price       float64 `json:"price"`
		Quantity    int     `json:"quantity"`
		LineTotal   float64 `json:"line_total"`
	}

	CartResponse struct {
		Items     []CartItemResponse `json:"items"`
		Subtotal  float64            `json:"subtotal"`
		ItemCount int                `json:"item_count"`
	}
)
