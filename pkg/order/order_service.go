package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/entities"
	"Experience-Club-Backend/internal/utils"
	"Experience-Club-Backend/internal/utils/cache"
	"Experience-Club-Backend/internal/utils/mailing"
	"Experience-Club-Backend/pkg/cart"
	"Experience-Club-Backend/pkg/coin"
	"Experience-Club-Backend/pkg/midtrans"
	"Experience-Club-Backend/pkg/product"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (domain.CreateOrderResponse, error)
		GetMyOrders(ctx context.Context, userID string, page, limit int) ([]domain.OrderResponse, int64, error)
		GetByID(ctx context.Context, orderID, userID, role string) (domain.OrderResponse, error)
		GetAllOrders(ctx context.Context, status string, page, limit int) ([]domain.OrderResponse, int64, error)
		UpdateOrderStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest) error
	}

	orderService struct {
		orderRepository OrderRepository
		cartRepository  cart.CartRepository
		coinRepository  coin.CoinRepository
		midtransService midtrans.MidtransService
		catalogCache    cache.CatalogCache
		shippingCost    float64
		taxRate         float64
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	cartRepository cart.CartRepository,
	coinRepository coin.CoinRepository,
	midtransService midtrans.MidtransService,
	catalogCache cache.CatalogCache,
) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		cartRepository:  cartRepository,
		coinRepository:  coinRepository,
		midtransService: midtransService,
		catalogCache:    catalogCache,
		shippingCost:    parseConfigFloat("SHIPPING_COST"),
		taxRate:         parseConfigFloat("TAX_RATE"),
	}
}

func parseConfigFloat(key string) float64 {
	v, err := strconv.ParseFloat(utils.GetConfig(key), 64)
	if err != nil {
		return 0
	}
	return v
}

func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (domain.CreateOrderResponse, error) {
	if !domain.IsValidPaymentMethod(req.PaymentMethod) {
		return domain.CreateOrderResponse{}, domain.ErrInvalidPaymentMethod
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreateOrderResponse{}, domain.ErrParseUUID
	}

	userCart, err := s.cartRepository.GetOrCreateCart(ctx, userUUID)
	if err != nil {
		return domain.CreateOrderResponse{}, err
	}
	if len(userCart.Items) == 0 {
		return domain.CreateOrderResponse{}, domain.ErrCartEmpty
	}

	orderID := uuid.New()
	var subtotal float64
	items := make([]*entities.OrderItem, 0, len(userCart.Items))
	for _, cartItem := range userCart.Items {
		if cartItem.Product == nil {
			continue
		}
		price := product.EffectivePrice(cartItem.Product)
		productID := cartItem.ProductID
		items = append(items, &entities.OrderItem{
			ID:          uuid.New(),
			OrderID:     orderID,
			ProductID:   &productID,
			ProductName: cartItem.Product.Name,
			Price:       price,
			Quantity:    cartItem.Quantity,
		})
		subtotal += price * float64(cartItem.Quantity)
	}

	tax := subtotal * s.taxRate
	total := subtotal + s.shippingCost + tax

	order := &entities.Order{
		ID:              orderID,
		UserID:          userUUID,
		Status:          domain.OrderStatusPending,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingCountry: req.ShippingCountry,
		Phone:           req.Phone,
		Subtotal:        subtotal,
		ShippingCost:    s.shippingCost,
		Tax:             tax,
		Total:           total,
		Items:           items,
	}

	var debit *entities.CoinTransaction
	if req.PaymentMethod == domain.PaymentMethodCoins {
		cost := int(total)
		balance, err := s.coinRepository.GetUserBalance(ctx, userID)
		if err != nil {
			return domain.CreateOrderResponse{}, err
		}
		if balance < cost {
			return domain.CreateOrderResponse{}, domain.ErrInsufficientCoins
		}

		now := time.Now()
		order.Status = domain.OrderStatusPaid
		order.PaidAt = &now

		debit = &entities.CoinTransaction{
			ID:          uuid.New(),
			UserID:      userUUID,
			Amount:      -cost,
			Type:        domain.CoinTypeUse,
			Feature:     "Order",
			Description: fmt.Sprintf("Paid order %s with %d coins", orderID.String(), cost),
			Balance:     balance - cost,
		}
		debit.CreatedAt = now
		debit.UpdatedAt = now
	}

	if err := s.orderRepository.Checkout(ctx, order, userCart.ID, debit); err != nil {
		return domain.CreateOrderResponse{}, err
	}

	// Checkout moved stock, so the cached landing page is stale.
	s.invalidateListing()

	response := domain.CreateOrderResponse{
		OrderID: orderID.String(),
		Status:  order.Status,
		Total:   total,
	}

	var email string
	if userCart.User != nil {
		email = userCart.User.Email
	}

	switch req.PaymentMethod {
	case domain.PaymentMethodCreditCard, domain.PaymentMethodDebitCard, domain.PaymentMethodBankTransfer:
		invoiceURL, err := s.midtransService.CreateOrderTransaction(ctx, order, email)
		if err != nil {
			log.Errorf("payment gateway error for order %s: %v", orderID.String(), err)
		} else {
			response.InvoiceURL = invoiceURL
		}
	}

	if email != "" {
		go func(email, id string, total float64) {
			if err := mailing.SendOrderConfirmation(email, id, total); err != nil {
				log.Errorf("order confirmation mail error: %v", err)
			}
		}(email, orderID.String(), total)
	}

	return response, nil
}

func (s *orderService) GetMyOrders(ctx context.Context, userID string, page, limit int) ([]domain.OrderResponse, int64, error) {
	orders, count, err := s.orderRepository.GetOrdersByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, toOrderResponse(o))
	}
	return result, count, nil
}

func (s *orderService) GetByID(ctx context.Context, orderID, userID, role string) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}

	if order.UserID.String() != userID && role != domain.RoleAdmin {
		return domain.OrderResponse{}, domain.ErrUnauthorizedOrder
	}

	return toOrderResponse(order), nil
}

func (s *orderService) GetAllOrders(ctx context.Context, status string, page, limit int) ([]domain.OrderResponse, int64, error) {
	orders, count, err := s.orderRepository.GetAllOrders(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, toOrderResponse(o))
	}
	return result, count, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest) error {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}

	if !domain.CanTransitionOrder(order.Status, req.Status) {
		return domain.ErrInvalidTransition
	}

	now := time.Now()
	wasPaid := order.PaidAt != nil
	order.Status = req.Status

	switch req.Status {
	case domain.OrderStatusPaid:
		order.PaidAt = &now
	case domain.OrderStatusCancelled:
		order.CancelledAt = &now

		var refund *entities.CoinTransaction
		if order.PaymentMethod == domain.PaymentMethodCoins && wasPaid {
			amount := int(order.Total)
			balance, err := s.coinRepository.GetUserBalance(ctx, order.UserID.String())
			if err != nil {
				return err
			}
			refund = &entities.CoinTransaction{
				ID:          uuid.New(),
				UserID:      order.UserID,
				Amount:      amount,
				Type:        domain.CoinTypeRefund,
				Feature:     "Order",
				Description: fmt.Sprintf("Refund for cancelled order %s", order.ID.String()),
				Balance:     balance + amount,
			}
			refund.CreatedAt = now
			refund.UpdatedAt = now
		}

		if err := s.orderRepository.CancelOrder(ctx, order, refund); err != nil {
			return err
		}

		// Cancelling restocks the items.
		s.invalidateListing()
		return nil
	}

	return s.orderRepository.UpdateOrder(ctx, order)
}

func (s *orderService) invalidateListing() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.catalogCache.Delete(ctx, cache.DefaultListingKey); err != nil {
		log.Errorf("catalog cache invalidate error: %v", err)
	}
}

func toOrderResponse(o *entities.Order) domain.OrderResponse {
	items := make([]domain.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		itemResponse := domain.OrderItemResponse{
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			LineTotal:   item.Price * float64(item.Quantity),
		}
		if item.ProductID != nil {
			itemResponse.ProductID = item.ProductID.String()
		}
		items = append(items, itemResponse)
	}

	return domain.OrderResponse{
		ID:              o.ID.String(),
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		ShippingAddress: o.ShippingAddress,
		ShippingCity:    o.ShippingCity,
		ShippingCountry: o.ShippingCountry,
		Phone:           o.Phone,
		Items:           items,
		Subtotal:        o.Subtotal,
		ShippingCost:    o.ShippingCost,
		Tax:             o.Tax,
		Total:           o.Total,
		PaidAt:          o.PaidAt,
		CancelledAt:     o.CancelledAt,
		CreatedAt:       o.CreatedAt,
	}
}
