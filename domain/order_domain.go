package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateOrder       = "order created successfully"
	MessageSuccessGetOrders         = "orders retrieved successfully"
	MessageSuccessGetOrder          = "order retrieved successfully"
	MessageSuccessUpdateOrderStatus = "order status updated successfully"

	MessageFailedCreateOrder       = "failed to create order"
	MessageFailedGetOrders         = "failed to retrieve orders"
	MessageFailedGetOrder          = "failed to retrieve order"
	MessageFailedUpdateOrderStatus = "failed to update order status"

	ErrOrderNotFound          = errors.New("order not found")
	ErrCartEmpty              = errors.New("cart is empty")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrInvalidOrderStatus     = errors.New("invalid order status")
	ErrInvalidTransition      = errors.New("order status transition not allowed")
	ErrUnauthorizedOrder      = errors.New("unauthorized access to order")
	ErrInsufficientCoins      = errors.New("insufficient coins")
	ErrPaymentGatewayRejected = errors.New("payment gateway rejected transaction")
	ErrSignatureInvalid       = errors.New("invalid notification signature")
)

const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"

	PaymentMethodCoins        = "COINS"
	PaymentMethodCash         = "CASH"
	PaymentMethodPix          = "PIX"
	PaymentMethodCreditCard   = "CREDIT_CARD"
	PaymentMethodDebitCard    = "DEBIT_CARD"
	PaymentMethodBankTransfer = "BANK_TRANSFER"
	PaymentMethodPaypal       = "PAYPAL"
	PaymentMethodOther        = "OTHER"
)

// orderTransitions is the full transition matrix. CANCELLED is reachable from
// PENDING and PAID only; SHIPPED and DELIVERED are past the fulfilment point.
var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:      {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCoins, PaymentMethodCash, PaymentMethodPix,
		PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodBankTransfer, PaymentMethodPaypal, PaymentMethodOther:
		return true
	}
	return false
}

type (
	CreateOrderRequest struct {
		ShippingAddress string `json:"shipping_address" validate:"required"`
		ShippingCity    string `json:"shipping_city" validate:"required"`
		ShippingCountry string `json:"shipping_country" validate:"required"`
		Phone           string `json:"phone" validate:"required"`
		PaymentMethod   string `json:"payment_method" validate:"required,oneof=COINS CASH PIX CREDIT_CARD DEBIT_CARD BANK_TRANSFER PAYPAL OTHER"`
	}

	CreateOrderResponse struct {
		OrderID    string  `json:"order_id"`
		Status     string  `json:"status"`
		Total      float64 `json:"total"`
		InvoiceURL string  `json:"invoice_url,omitempty"`
	}

	OrderItemResponse struct {
		ProductID   string  `json:"product_id,omitempty"`
		ProductName string  `json:"product_name"`
		Price       float64 `json:"price"`
		Quantity    int     `json:"quantity"`
		LineTotal   float64 `json:"line_total"`
	}

	OrderResponse struct {
		ID              string              `json:"id"`
		Status          string              `json:"status"`
		PaymentMethod   string              `json:"payment_method"`
		ShippingAddress string              `json:"shipping_address"`
		ShippingCity    string              `json:"shipping_city"`
		ShippingCountry string              `json:"shipping_country"`
		Phone           string              `json:"phone"`
		Items           []OrderItemResponse `json:"items"`
		Subtotal        float64             `json:"subtotal"`
		ShippingCost    float64             `json:"shipping_cost"`
		Tax             float64             `json:"tax"`
		Total           float64             `json:"total"`
		PaidAt          *time.Time          `json:"paid_at,omitempty"`
		CancelledAt     *time.Time          `json:"cancelled_at,omitempty"`
		CreatedAt       time.Time           `json:"created_at"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=PENDING PAID SHIPPED DELIVERED CANCELLED"`
	}
)
