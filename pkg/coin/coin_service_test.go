package coin

import (
	"context"
	"sync"
	"testing"
	"time"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCoinRepository struct {
	m   sync.RWMutex
	txs []*entities.CoinTransaction
}

func (m *mockCoinRepository) GetUserBalance(context.Context, string) (int, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if len(m.txs) == 0 {
		return 0, nil
	}
	return m.txs[len(m.txs)-1].Balance, nil
}

func (m *mockCoinRepository) GetUserCoinStats(context.Context, string) (map[string]int, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	stats := map[string]int{}
	for _, tx := range m.txs {
		switch tx.Type {
		case domain.CoinTypeReward:
			stats["total_rewarded"] += tx.Amount
		case domain.CoinTypeUse:
			stats["total_used"] += -tx.Amount
		case domain.CoinTypeRefund:
			stats["total_refunded"] += tx.Amount
		}
	}
	if len(m.txs) > 0 {
		stats["balance"] = m.txs[len(m.txs)-1].Balance
	}
	return stats, nil
}

func (m *mockCoinRepository) CreateCoinTransaction(_ context.Context, tx *entities.CoinTransaction) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.txs = append(m.txs, tx)
	return nil
}

func (m *mockCoinRepository) GetUserCoinTransactions(context.Context, string, int, int) ([]*entities.CoinTransaction, int64, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.txs, int64(len(m.txs)), nil
}

// ledgerRow builds an entry the way the checkout and game transactions write
// them: amount signed, running balance carried on the row.
func ledgerRow(userID uuid.UUID, amount int, txType string, balance int) *entities.CoinTransaction {
	tx := &entities.CoinTransaction{
		ID:      uuid.New(),
		UserID:  userID,
		Amount:  amount,
		Type:    txType,
		Balance: balance,
	}
	tx.CreatedAt = time.Now()
	return tx
}

func TestGetUserCoins_Stats(t *testing.T) {
	userID := uuid.New()
	repo := &mockCoinRepository{txs: []*entities.CoinTransaction{
		ledgerRow(userID, 200, domain.CoinTypeReward, 200),
		ledgerRow(userID, -80, domain.CoinTypeUse, 120),
		ledgerRow(userID, 80, domain.CoinTypeRefund, 200),
	}}
	svc := NewCoinService(repo)

	coins, err := svc.GetUserCoins(context.Background(), userID.String())
	require.NoError(t, err)

	assert.Equal(t, 200, coins.Balance)
	assert.Equal(t, 200, coins.TotalRewarded)
	assert.Equal(t, 80, coins.TotalUsed)
	assert.Equal(t, 80, coins.TotalRefunded)
}

func TestGetUserCoins_EmptyLedger(t *testing.T) {
	svc := NewCoinService(&mockCoinRepository{})

	coins, err := svc.GetUserCoins(context.Background(), uuid.NewString())
	require.NoError(t, err)

	assert.Zero(t, coins.Balance)
	assert.Zero(t, coins.TotalRewarded)
}

func TestGetCoinTransactionHistory(t *testing.T) {
	userID := uuid.New()
	repo := &mockCoinRepository{txs: []*entities.CoinTransaction{
		ledgerRow(userID, 100, domain.CoinTypeReward, 100),
		ledgerRow(userID, -40, domain.CoinTypeUse, 60),
	}}
	svc := NewCoinService(repo)

	history, count, err := svc.GetCoinTransactionHistory(context.Background(), userID.String(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(2), count)
	require.Len(t, history, 2)
	assert.Equal(t, 100, history[0].Amount)
	assert.Equal(t, -40, history[1].Amount)
	assert.Equal(t, 60, history[1].Balance)
	assert.Equal(t, userID.String(), history[1].UserID)
}
