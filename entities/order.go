package entities

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Status          string     `json:"status"`         // PENDING, PAID, SHIPPED, DELIVERED, CANCELLED
	PaymentMethod   string     `json:"payment_method"` // COINS, CASH, PIX, CREDIT_CARD, DEBIT_CARD, BANK_TRANSFER, PAYPAL, OTHER
	PaymentRef      string     `json:"payment_ref,omitempty"`
	ShippingAddress string     `json:"shipping_address"`
	ShippingCity    string     `json:"shipping_city"`
	ShippingCountry string     `json:"shipping_country"`
	Phone           string     `json:"phone"`
	Subtotal        float64    `json:"subtotal"`
	ShippingCost    float64    `json:"shipping_cost"`
	Tax             float64    `json:"tax"`
	Total           float64    `json:"total"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`

	User  *User        `gorm:"foreignKey:UserID"`
	Items []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

// OrderItem captures name and price at purchase time. ProductID is nullable so
// catalog deletions never dangle a historical order row.
type OrderItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID     uuid.UUID  `json:"order_id"`
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	ProductName string     `json:"product_name"`
	Price       float64    `json:"price"`
	Quantity    int        `json:"quantity"`

	Order   *Order   `gorm:"foreignKey:OrderID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
