package order

import (
	"context"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		// Checkout persists the order with its items, decrements stock,
		// empties the cart and appends the coin debit (when paying with
		// coins) in one database transaction.
		Checkout(ctx context.Context, order *entities.Order, cartID uuid.UUID, debit *entities.CoinTransaction) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrdersByUser(ctx context.Context, userID string, page, limit int) ([]*entities.Order, int64, error)
		GetAllOrders(ctx context.Context, status string, page, limit int) ([]*entities.Order, int64, error)
		UpdateOrder(ctx context.Context, order *entities.Order) error
		// CancelOrder flips the order to CANCELLED, restores stock and
		// appends the coin refund (when one is due) atomically.
		CancelOrder(ctx context.Context, order *entities.Order, refund *entities.CoinTransaction) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Checkout(ctx context.Context, order *entities.Order, cartID uuid.UUID, debit *entities.CoinTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range order.Items {
			if item.ProductID == nil {
				continue
			}
			res := tx.Model(&entities.Product{}).
				Where("id = ? AND stock >= ?", *item.ProductID, item.Quantity).
				UpdateColumns(map[string]interface{}{
					"stock": gorm.Expr("stock - ?", item.Quantity),
					"stock_status": gorm.Expr(
						"CASE WHEN stock - ? <= 0 THEN ? WHEN stock - ? <= ? THEN ? ELSE ? END",
						item.Quantity, domain.StockStatusOutOfStock,
						item.Quantity, domain.LowStockThreshold, domain.StockStatusLowStock,
						domain.StockStatusInStock,
					),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return domain.ErrInsufficientStock
			}
		}

		if err := tx.Where("cart_id = ?", cartID).Delete(&entities.CartItem{}).Error; err != nil {
			return err
		}

		if debit != nil {
			if err := tx.Create(debit).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("User").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrdersByUser(ctx context.Context, userID string, page, limit int) ([]*entities.Order, int64, error) {
	var orders []*entities.Order
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, count, nil
}

func (r *orderRepository) GetAllOrders(ctx context.Context, status string, page, limit int) ([]*entities.Order, int64, error) {
	var orders []*entities.Order
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Order{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, count, nil
}

func (r *orderRepository) UpdateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) CancelOrder(ctx context.Context, order *entities.Order, refund *entities.CoinTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(order).Error; err != nil {
			return err
		}

		for _, item := range order.Items {
			if item.ProductID == nil {
				continue
			}
			if err := tx.Model(&entities.Product{}).
				Where("id = ?", *item.ProductID).
				UpdateColumns(map[string]interface{}{
					"stock": gorm.Expr("stock + ?", item.Quantity),
					"stock_status": gorm.Expr(
						"CASE WHEN stock + ? <= 0 THEN ? WHEN stock + ? <= ? THEN ? ELSE ? END",
						item.Quantity, domain.StockStatusOutOfStock,
						item.Quantity, domain.LowStockThreshold, domain.StockStatusLowStock,
						domain.StockStatusInStock,
					),
				}).Error; err != nil {
				return err
			}
		}

		if refund != nil {
			if err := tx.Create(refund).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
