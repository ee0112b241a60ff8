package entities

import (
	"github.com/google/uuid"
)

type Cart struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"uniqueIndex" json:"user_id"`

	User  *User       `gorm:"foreignKey:UserID"`
	Items []*CartItem `gorm:"foreignKey:CartID"`
	Timestamp
}

type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CartID    uuid.UUID `gorm:"uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID uuid.UUID `gorm:"uniqueIndex:idx_cart_product" json:"product_id"`
	Quantity  int       `json:"quantity"`

	Cart    *Cart    `gorm:"foreignKey:CartID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
