package midtrans

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"sync"
	"testing"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockMidtransRepository struct {
	m      sync.RWMutex
	orders map[string]*entities.Order
	paid   []string
}

func newMockMidtransRepository(orders ...*entities.Order) *mockMidtransRepository {
	repo := &mockMidtransRepository{orders: map[string]*entities.Order{}}
	for _, o := range orders {
		repo.orders[o.ID.String()] = o
	}
	return repo
}

func (m *mockMidtransRepository) GetOrderByID(_ context.Context, id string) (*entities.Order, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (m *mockMidtransRepository) MarkOrderPaid(_ context.Context, id, paymentRef string) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.paid = append(m.paid, id)
	return nil
}

// signNotification mirrors the gateway's signature scheme: sha512 over
// order_id + status_code + gross_amount + server key. The test server key is
// empty because no config file is loaded.
func signNotification(orderID, statusCode, grossAmount string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount))
	return hex.EncodeToString(sum[:])
}

func settlementPayload(orderID string) map[string]interface{} {
	return map[string]interface{}{
		"order_id":           orderID,
		"transaction_status": "settlement",
		"transaction_id":     uuid.NewString(),
		"status_code":        "200",
		"gross_amount":       "45000.00",
		"signature_key":      signNotification(orderID, "200", "45000.00"),
	}
}

func TestHandleNotification_SettlementMarksPaid(t *testing.T) {
	order := &entities.Order{ID: uuid.New(), Status: domain.OrderStatusPending}
	repo := newMockMidtransRepository(order)
	svc := NewMidtransService(repo)

	err := svc.HandleNotification(context.Background(), settlementPayload(order.ID.String()))
	require.NoError(t, err)

	require.Len(t, repo.paid, 1)
	assert.Equal(t, order.ID.String(), repo.paid[0])
}

func TestHandleNotification_BadSignatureRejected(t *testing.T) {
	order := &entities.Order{ID: uuid.New(), Status: domain.OrderStatusPending}
	repo := newMockMidtransRepository(order)
	svc := NewMidtransService(repo)

	payload := settlementPayload(order.ID.String())
	payload["signature_key"] = signNotification(uuid.NewString(), "200", "45000.00")

	err := svc.HandleNotification(context.Background(), payload)
	assert.ErrorIs(t, err, domain.ErrSignatureInvalid)
	assert.Empty(t, repo.paid)
}

func TestHandleNotification_ForgedStatusRejected(t *testing.T) {
	order := &entities.Order{ID: uuid.New(), Status: domain.OrderStatusPending}
	repo := newMockMidtransRepository(order)
	svc := NewMidtransService(repo)

	// A signature computed for one status_code does not validate a payload
	// claiming another.
	payload := settlementPayload(order.ID.String())
	payload["signature_key"] = signNotification(order.ID.String(), "201", "45000.00")

	err := svc.HandleNotification(context.Background(), payload)
	assert.ErrorIs(t, err, domain.ErrSignatureInvalid)
	assert.Empty(t, repo.paid)
}

func TestHandleNotification_NonSettlementLeavesOrder(t *testing.T) {
	order := &entities.Order{ID: uuid.New(), Status: domain.OrderStatusPending}
	repo := newMockMidtransRepository(order)
	svc := NewMidtransService(repo)

	payload := settlementPayload(order.ID.String())
	payload["transaction_status"] = "expire"
	payload["signature_key"] = signNotification(order.ID.String(), "200", "45000.00")

	err := svc.HandleNotification(context.Background(), payload)
	require.NoError(t, err)
	assert.Empty(t, repo.paid)
}

func TestHandleNotification_UnknownOrder(t *testing.T) {
	repo := newMockMidtransRepository()
	svc := NewMidtransService(repo)

	err := svc.HandleNotification(context.Background(), settlementPayload(uuid.NewString()))
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.Empty(t, repo.paid)
}
