package cart

import (
	"context"
	"sync"
	"testing"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockCartRepository struct {
	m     sync.RWMutex
	cart  *entities.Cart
	items map[uuid.UUID]*entities.CartItem
	err   error
}

func newMockCartRepository(userID uuid.UUID) *mockCartRepository {
	return &mockCartRepository{
		cart: &entities.Cart{
			ID:     uuid.New(),
			UserID: userID,
		},
		items: map[uuid.UUID]*entities.CartItem{},
	}
}

func (m *mockCartRepository) GetOrCreateCart(context.Context, uuid.UUID) (*entities.Cart, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	cart := *m.cart
	cart.Items = nil
	for _, item := range m.items {
		cart.Items = append(cart.Items, item)
	}
	return &cart, nil
}

func (m *mockCartRepository) GetCartItem(_ context.Context, _ uuid.UUID, productID uuid.UUID) (*entities.CartItem, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	item, ok := m.items[productID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (m *mockCartRepository) CreateCartItem(_ context.Context, item *entities.CartItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.items[item.ProductID] = item
	return m.err
}

func (m *mockCartRepository) UpdateCartItem(_ context.Context, item *entities.CartItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.items[item.ProductID] = item
	return m.err
}

func (m *mockCartRepository) DeleteCartItem(_ context.Context, _ uuid.UUID, productID uuid.UUID) error {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.items, productID)
	return m.err
}

func (m *mockCartRepository) ClearCart(context.Context, uuid.UUID) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.items = map[uuid.UUID]*entities.CartItem{}
	return m.err
}

type mockProductRepository struct {
	m        sync.RWMutex
	products map[string]*entities.Product
}

func newMockProductRepository(products ...*entities.Product) *mockProductRepository {
	repo := &mockProductRepository{products: map[string]*entities.Product{}}
	for _, p := range products {
		repo.products[p.ID.String()] = p
	}
	return repo
}

func (m *mockProductRepository) GetProductByID(_ context.Context, id string) (*entities.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (m *mockProductRepository) CreateProduct(context.Context, *entities.Product) error { return nil }
func (m *mockProductRepository) GetProductBySlug(context.Context, string) (*entities.Product, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockProductRepository) GetProducts(context.Context, domain.ProductFilter) ([]*entities.Product, int64, error) {
	return nil, 0, nil
}
func (m *mockProductRepository) UpdateProduct(context.Context, *entities.Product) error { return nil }
func (m *mockProductRepository) DeleteProduct(context.Context, string) error            { return nil }
func (m *mockProductRepository) UpdateProductColumn(context.Context, string, string, string) error {
	return nil
}
func (m *mockProductRepository) DeleteProductsByColumn(context.Context, string, string) error {
	return nil
}
func (m *mockProductRepository) AddProductImage(context.Context, *entities.ProductImage) error {
	return nil
}
func (m *mockProductRepository) UpsertTranslation(context.Context, *entities.ProductTranslation) error {
	return nil
}
func (m *mockProductRepository) CreateBrand(context.Context, *entities.Brand) error { return nil }
func (m *mockProductRepository) GetBrands(context.Context) ([]*entities.Brand, error) {
	return nil, nil
}
func (m *mockProductRepository) GetBrandByID(context.Context, string) (*entities.Brand, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockProductRepository) UpdateBrand(context.Context, *entities.Brand) error { return nil }
func (m *mockProductRepository) DeleteBrand(context.Context, string) error          { return nil }
func (m *mockProductRepository) CreateCategory(context.Context, *entities.Category) error {
	return nil
}
func (m *mockProductRepository) GetCategories(context.Context) ([]*entities.Category, error) {
	return nil, nil
}
func (m *mockProductRepository) GetCategoryByID(context.Context, string) (*entities.Category, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockProductRepository) UpdateCategory(context.Context, *entities.Category) error {
	return nil
}
func (m *mockProductRepository) DeleteCategory(context.Context, string) error { return nil }
func (m *mockProductRepository) GetCurrencies(context.Context) ([]*entities.Currency, error) {
	return nil, nil
}
func (m *mockProductRepository) GetCurrencyByCode(context.Context, string) (*entities.Currency, error) {
	return nil, gorm.ErrRecordNotFound
}

func testProduct(price float64, stock int) *entities.Product {
	return &entities.Product{
		ID:          uuid.New(),
		Name:        "Test Product",
		Slug:        "test-product",
		Price:       price,
		Stock:       stock,
		StockStatus: domain.StockStatusInStock,
	}
}

func TestAddItem_NewProduct(t *testing.T) {
	userID := uuid.New()
	p := testProduct(10, 100)
	cartRepo := newMockCartRepository(userID)
	productRepo := newMockProductRepository(p)
	svc := NewCartService(cartRepo, productRepo)

	err := svc.AddItem(context.Background(), domain.AddCartItemRequest{
		ProductID: p.ID.String(),
		Quantity:  2,
	}, userID.String())
	require.NoError(t, err)

	item, err := cartRepo.GetCartItem(context.Background(), cartRepo.cart.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
}

func TestAddItem_ExistingProductBumpsQuantity(t *testing.T) {
	userID := uuid.New()
	p := testProduct(10, 100)
	cartRepo := newMockCartRepository(userID)
	productRepo := newMockProductRepository(p)
	svc := NewCartService(cartRepo, productRepo)

	req := domain.AddCartItemRequest{ProductID: p.ID.String(), Quantity: 2}
	require.NoError(t, svc.AddItem(context.Background(), req, userID.String()))
	require.NoError(t, svc.AddItem(context.Background(), req, userID.String()))

	// still a single row, quantity summed
	assert.Len(t, cartRepo.items, 1)
	item, err := cartRepo.GetCartItem(context.Background(), cartRepo.cart.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)
}

func TestAddItem_InvalidQuantity(t *testing.T) {
	userID := uuid.New()
	p := testProduct(10, 100)
	svc := NewCartService(newMockCartRepository(userID), newMockProductRepository(p))

	err := svc.AddItem(context.Background(), domain.AddCartItemRequest{
		ProductID: p.ID.String(),
		Quantity:  0,
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	userID := uuid.New()
	svc := NewCartService(newMockCartRepository(userID), newMockProductRepository())

	err := svc.AddItem(context.Background(), domain.AddCartItemRequest{
		ProductID: uuid.NewString(),
		Quantity:  1,
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAddItem_ExceedsStock(t *testing.T) {
	userID := uuid.New()
	p := testProduct(10, 3)
	cartRepo := newMockCartRepository(userID)
	svc := NewCartService(cartRepo, newMockProductRepository(p))

	err := svc.AddItem(context.Background(), domain.AddCartItemRequest{
		ProductID: p.ID.String(),
		Quantity:  5,
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// bumping over the limit fails too
	require.NoError(t, svc.AddItem(context.Background(), domain.AddCartItemRequest{
		ProductID: p.ID.String(),
		Quantity:  2,
	}, userID.String()))
	err = svc.AddItem(context.Background(), domain.AddCartItemRequest{
		ProductID: p.ID.String(),
		Quantity:  2,
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestUpdateQuantity_MissingItem(t *testing.T) {
	userID := uuid.New()
	p := testProduct(10, 100)
	svc := NewCartService(newMockCartRepository(userID), newMockProductRepository(p))

	err := svc.UpdateQuantity(context.Background(), p.ID.String(), domain.UpdateCartItemRequest{Quantity: 1}, userID.String())
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestGetCart_DerivesSubtotalAndCount(t *testing.T) {
	userID := uuid.New()
	sale := 8.0
	p1 := testProduct(10, 100)
	p1.PriceSale = &sale
	p2 := testProduct(25, 100)

	cartRepo := newMockCartRepository(userID)
	svc := NewCartService(cartRepo, newMockProductRepository(p1, p2))

	cartRepo.items[p1.ID] = &entities.CartItem{
		ID: uuid.New(), CartID: cartRepo.cart.ID, ProductID: p1.ID, Quantity: 2, Product: p1,
	}
	cartRepo.items[p2.ID] = &entities.CartItem{
		ID: uuid.New(), CartID: cartRepo.cart.ID, ProductID: p2.ID, Quantity: 1, Product: p2,
	}

	res, err := svc.GetCart(context.Background(), userID.String())
	require.NoError(t, err)

	// sale price wins for p1: 2*8 + 1*25
	assert.InDelta(t, 41.0, res.Subtotal, 0.001)
	assert.Equal(t, 3, res.ItemCount)
	assert.Len(t, res.Items, 2)
}

func TestRemoveItem(t *testing.T) {
	userID := uuid.New()
	p := testProduct(10, 100)
	cartRepo := newMockCartRepository(userID)
	svc := NewCartService(cartRepo, newMockProductRepository(p))

	require.NoError(t, svc.AddItem(context.Background(), domain.AddCartItemRequest{
		ProductID: p.ID.String(), Quantity: 1,
	}, userID.String()))

	require.NoError(t, svc.RemoveItem(context.Background(), p.ID.String(), userID.String()))
	assert.Empty(t, cartRepo.items)

	err := svc.RemoveItem(context.Background(), p.ID.String(), userID.String())
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}
