package coin

import (
	"context"

	"Experience-Club-Backend/domain"
)

// Ledger rows are written by the checkout and game completion transactions;
// the service only exposes the read side.
type (
	CoinService interface {
		GetUserCoins(ctx context.Context, userID string) (*domain.UserCoins, error)
		GetCoinTransactionHistory(ctx context.Context, userID string, page, limit int) ([]*domain.CoinTransaction, int64, error)
	}

	coinService struct {
		coinRepository CoinRepository
	}
)

func NewCoinService(coinRepository CoinRepository) CoinService {
	return &coinService{coinRepository: coinRepository}
}

func (s *coinService) GetUserCoins(ctx context.Context, userID string) (*domain.UserCoins, error) {
	stats, err := s.coinRepository.GetUserCoinStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.UserCoins{
		Balance:       stats["balance"],
		TotalRewarded: stats["total_rewarded"],
		TotalUsed:     stats["total_used"],
		TotalRefunded: stats["total_refunded"],
	}, nil
}

func (s *coinService) GetCoinTransactionHistory(ctx context.Context, userID string, page, limit int) ([]*domain.CoinTransaction, int64, error) {
	transactions, count, err := s.coinRepository.GetUserCoinTransactions(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.CoinTransaction, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, &domain.CoinTransaction{
			ID:          tx.ID.String(),
			UserID:      tx.UserID.String(),
			Amount:      tx.Amount,
			Type:        tx.Type,
			Feature:     tx.Feature,
			Description: tx.Description,
			Balance:     tx.Balance,
			CreatedAt:   tx.CreatedAt,
		})
	}

	return result, count, nil
}
