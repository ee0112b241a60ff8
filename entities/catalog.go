package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Brand struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Slug     string    `gorm:"uniqueIndex" json:"slug"`
	LogoURL  string    `json:"logo_url,omitempty"`
	IsActive bool      `json:"is_active"`

	Products []*Product `gorm:"foreignKey:BrandID"`
	Timestamp
}

type Category struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Slug     string    `gorm:"uniqueIndex" json:"slug"`
	IsActive bool      `json:"is_active"`

	Products []*Product `gorm:"foreignKey:CategoryID"`
	Timestamp
}

type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string     `json:"name"`
	Slug        string     `gorm:"uniqueIndex" json:"slug"`
	Description string     `gorm:"type:text" json:"description"`
	Price       float64    `json:"price"`
	PriceSale   *float64   `json:"price_sale,omitempty"`
	Stock       int        `json:"stock"`
	StockStatus string     `json:"stock_status"` // InStock, LowStock, OutOfStock
	BrandID     *uuid.UUID `json:"brand_id,omitempty"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Tags        string     `json:"tags,omitempty"` // comma separated

	Brand        *Brand                `gorm:"foreignKey:BrandID"`
	Category     *Category             `gorm:"foreignKey:CategoryID"`
	Images       []*ProductImage       `gorm:"foreignKey:ProductID"`
	Translations []*ProductTranslation `gorm:"foreignKey:ProductID"`
	DeletedAt    gorm.DeletedAt        `gorm:"index" json:"-"`
	Timestamp
}

type ProductImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	ImageURL  string    `json:"image_url"`
	Position  int       `json:"position"`

	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}

type ProductTranslation struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProductID   uuid.UUID `gorm:"uniqueIndex:idx_product_locale" json:"product_id"`
	Locale      string    `gorm:"uniqueIndex:idx_product_locale" json:"locale"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description"`

	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}

type Currency struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Code   string    `gorm:"uniqueIndex" json:"code"` // ISO 4217, e.g. USD
	Name   string    `json:"name"`
	Symbol string    `json:"symbol"`
	// Rate converts a base-currency price into this currency.
	Rate     float64 `json:"rate"`
	IsActive bool    `json:"is_active"`

	Timestamp
}
