package cart

import (
	"context"
	"errors"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/entities"
	"Experience-Club-Backend/pkg/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CartService interface {
		GetCart(ctx context.Context, userID string) (domain.CartResponse, error)
		AddItem(ctx context.Context, req domain.AddCartItemRequest, userID string) error
		UpdateQuantity(ctx context.Context, productID string, req domain.UpdateCartItemRequest, userID string) error
		RemoveItem(ctx context.Context, productID string, userID string) error
		Clear(ctx context.Context, userID string) error
	}

	cartService struct {
		cartRepository    CartRepository
		productRepository product.ProductRepository
	}
)

func NewCartService(cartRepository CartRepository, productRepository product.ProductRepository) CartService {
	return &cartService{
		cartRepository:    cartRepository,
		productRepository: productRepository,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID string) (domain.CartResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CartResponse{}, domain.ErrParseUUID
	}

	cart, err := s.cartRepository.GetOrCreateCart(ctx, userUUID)
	if err != nil {
		return domain.CartResponse{}, err
	}

	return buildCartResponse(cart), nil
}

func (s *cartService) AddItem(ctx context.Context, req domain.AddCartItemRequest, userID string) error {
	if req.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	p, err := s.productRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	cart, err := s.cartRepository.GetOrCreateCart(ctx, userUUID)
	if err != nil {
		return err
	}

	// One row per (cart, product): adding an already carted product bumps
	// its quantity instead.
	existing, err := s.cartRepository.GetCartItem(ctx, cart.ID, p.ID)
	if err == nil {
		newQuantity := existing.Quantity + req.Quantity
		if newQuantity > p.Stock {
			return domain.ErrInsufficientStock
		}
		existing.Quantity = newQuantity
		return s.cartRepository.UpdateCartItem(ctx, existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if req.Quantity > p.Stock {
		return domain.ErrInsufficientStock
	}

	item := &entities.CartItem{
		ID:        uuid.New(),
		CartID:    cart.ID,
		ProductID: p.ID,
		Quantity:  req.Quantity,
	}
	return s.cartRepository.CreateCartItem(ctx, item)
}

func (s *cartService) UpdateQuantity(ctx context.Context, productID string, req domain.UpdateCartItemRequest, userID string) error {
	if req.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return domain.ErrParseUUID
	}

	cart, err := s.cartRepository.GetOrCreateCart(ctx, userUUID)
	if err != nil {
		return err
	}

	item, err := s.cartRepository.GetCartItem(ctx, cart.ID, productUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}

	p, err := s.productRepository.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}
	if req.Quantity > p.Stock {
		return domain.ErrInsufficientStock
	}

	item.Quantity = req.Quantity
	return s.cartRepository.UpdateCartItem(ctx, item)
}

func (s *cartService) RemoveItem(ctx context.Context, productID string, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return domain.ErrParseUUID
	}

	cart, err := s.cartRepository.GetOrCreateCart(ctx, userUUID)
	if err != nil {
		return err
	}

	if _, err := s.cartRepository.GetCartItem(ctx, cart.ID, productUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}

	return s.cartRepository.DeleteCartItem(ctx, cart.ID, productUUID)
}

func (s *cartService) Clear(ctx context.Context, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	cart, err := s.cartRepository.GetOrCreateCart(ctx, userUUID)
	if err != nil {
		return err
	}

	return s.cartRepository.ClearCart(ctx, cart.ID)
}

// buildCartResponse derives subtotal and item count; neither is ever stored.
func buildCartResponse(cart *entities.Cart) domain.CartResponse {
	response := domain.CartResponse{
		Items: make([]domain.CartItemResponse, 0, len(cart.Items)),
	}

	for _, item := range cart.Items {
		if item.Product == nil {
			continue
		}

		price := product.EffectivePrice(item.Product)
		lineTotal := price * float64(item.Quantity)

		itemResponse := domain.CartItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.Product.Name,
			Slug:        item.Product.Slug,
			Price:       price,
			Quantity:    item.Quantity,
			LineTotal:   lineTotal,
		}
		if len(item.Product.Images) > 0 {
			itemResponse.ImageURL = item.Product.Images[0].ImageURL
		}

		response.Items = append(response.Items, itemResponse)
		response.Subtotal += lineTotal
		response.ItemCount += item.Quantity
	}

	return response
}
