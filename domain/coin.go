package domain

import (
	"time"
)

var (
	MessageSuccessGetUserCoins   = "user coins retrieved successfully"
	MessageSuccessGetCoinHistory = "coin transaction history retrieved successfully"

	MessageFailedGetUserCoins   = "failed to retrieve user coins"
	MessageFailedGetCoinHistory = "failed to retrieve coin transaction history"
)

const (
	CoinTypeReward = "Reward"
	CoinTypeUse    = "Use"
	CoinTypeRefund = "Refund"
)

type (
	UserCoins struct {
		Balance       int `json:"balance"`
		TotalRewarded int `json:"total_rewarded"`
		TotalUsed     int `json:"total_used"`
		TotalRefunded int `json:"total_refunded"`
	}

	CoinTransaction struct {
		ID          string    `json:"id"`
		UserID      string    `json:"user_id"`
		Amount      int       `json:"amount"`
		Type        string    `json:"type"`
		Feature     string    `json:"feature,omitempty"`
		Description string    `json:"description"`
		Balance     int       `json:"balance"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
