package entities

import (
	"time"

	"github.com/google/uuid"
)

type GameTask struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                 string    `json:"name"`
	Description          string    `gorm:"type:text" json:"description"`
	CoinReward           int       `json:"coin_reward"`
	TaskType             string    `json:"task_type"`
	DelayHours           int       `json:"delay_hours"`
	OrderIndex           int       `json:"order_index"`
	IsActive             bool      `json:"is_active"`
	VerificationRequired bool      `json:"verification_required"`
	ImageURL             string    `json:"image_url,omitempty"`

	Progress []*UserTaskProgress `gorm:"foreignKey:TaskID"`
	Timestamp
}

type UserTaskProgress struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID  `gorm:"uniqueIndex:idx_user_task" json:"user_id"`
	TaskID      uuid.UUID  `gorm:"uniqueIndex:idx_user_task" json:"task_id"`
	Status      string     `json:"status"` // PendingVerification, Completed, Rejected
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	User *User     `gorm:"foreignKey:UserID"`
	Task *GameTask `gorm:"foreignKey:TaskID"`
	Timestamp
}
