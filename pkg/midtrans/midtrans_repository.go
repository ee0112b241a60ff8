package midtrans

import (
	"context"
	"time"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/entities"

	"gorm.io/gorm"
)

type (
	MidtransRepository interface {
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		MarkOrderPaid(ctx context.Context, id, paymentRef string) error
	}

	midtransRepository struct {
		db *gorm.DB
	}
)

func NewMidtransRepository(db *gorm.DB) MidtransRepository {
	return &midtransRepository{db: db}
}

func (r *midtransRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *midtransRepository) MarkOrderPaid(ctx context.Context, id, paymentRef string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ? AND status = ?", id, domain.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":      domain.OrderStatusPaid,
			"payment_ref": paymentRef,
			"paid_at":     &now,
		}).Error
}
