package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`     // user, admin
	Language string    `json:"language"` // preferred display locale, e.g. "en", "pt-BR"
	Currency string    `json:"currency"` // preferred display currency code, e.g. "USD"

	Timestamp
}
