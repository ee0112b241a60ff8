package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrder(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{OrderStatusPending, OrderStatusPaid, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusPaid, OrderStatusShipped, true},
		{OrderStatusPaid, OrderStatusCancelled, true},
		{OrderStatusPaid, OrderStatusDelivered, false},
		{OrderStatusPaid, OrderStatusPending, false},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPaid, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransitionOrder(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	assert.True(t, IsValidPaymentMethod(PaymentMethodCoins))
	assert.True(t, IsValidPaymentMethod(PaymentMethodPix))
	assert.False(t, IsValidPaymentMethod("CHEQUE"))
	assert.False(t, IsValidPaymentMethod(""))
}

func TestIsValidTaskType(t *testing.T) {
	assert.True(t, IsValidTaskType("DAILY_LOGIN"))
	assert.True(t, IsValidTaskType("CUSTOM"))
	assert.False(t, IsValidTaskType("daily_login"))
	assert.False(t, IsValidTaskType("NOT_A_TYPE"))
}
