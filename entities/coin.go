package entities

import (
	"github.com/google/uuid"
)

// CoinTransaction is an append-only ledger row; Balance carries the running
// balance after this transaction so reads never need to sum the ledger.
type CoinTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Amount      int       `json:"amount"`
	Type        string    `json:"type"` // Reward, Use, Refund
	Feature     string    `json:"feature,omitempty"`
	Description string    `json:"description"`
	Balance     int       `json:"balance"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
