package coin

import (
	"context"
	"errors"

	"Experience-Club-Backend/entities"

	"gorm.io/gorm"
)

type (
	CoinRepository interface {
		GetUserBalance(ctx context.Context, userID string) (int, error)
		GetUserCoinStats(ctx context.Context, userID string) (map[string]int, error)
		CreateCoinTransaction(ctx context.Context, tx *entities.CoinTransaction) error
		GetUserCoinTransactions(ctx context.Context, userID string, page, limit int) ([]*entities.CoinTransaction, int64, error)
	}

	coinRepository struct {
		db *gorm.DB
	}
)

func NewCoinRepository(db *gorm.DB) CoinRepository {
	return &coinRepository{db: db}
}

func (r *coinRepository) GetUserBalance(ctx context.Context, userID string) (int, error) {
	// The latest ledger row carries the running balance.
	var latestTx entities.CoinTransaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&latestTx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil // no transactions yet
		}
		return 0, err
	}

	return latestTx.Balance, nil
}

func (r *coinRepository) GetUserCoinStats(ctx context.Context, userID string) (map[string]int, error) {
	sumByType := func(txType string) (int, error) {
		var total int
		query := r.db.WithContext(ctx).
			Model(&entities.CoinTransaction{}).
			Where("user_id = ? AND type = ?", userID, txType).
			Select("COALESCE(SUM(amount), 0) as total")
		if err := query.Row().Scan(&total); err != nil {
			return 0, err
		}
		return total, nil
	}

	totalRewarded, err := sumByType("Reward")
	if err != nil {
		return nil, err
	}

	totalUsed, err := sumByType("Use")
	if err != nil {
		return nil, err
	}
	totalUsed = -totalUsed // debits are stored negative

	totalRefunded, err := sumByType("Refund")
	if err != nil {
		return nil, err
	}

	balance, err := r.GetUserBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return map[string]int{
		"balance":        balance,
		"total_rewarded": totalRewarded,
		"total_used":     totalUsed,
		"total_refunded": totalRefunded,
	}, nil
}

func (r *coinRepository) CreateCoinTransaction(ctx context.Context, tx *entities.CoinTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *coinRepository) GetUserCoinTransactions(ctx context.Context, userID string, page, limit int) ([]*entities.CoinTransaction, int64, error) {
	var transactions []*entities.CoinTransaction
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.CoinTransaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, count, nil
}
