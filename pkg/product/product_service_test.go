package product

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"sync"
	"testing"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/entities"
	"Experience-Club-Backend/internal/utils/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockProductRepository struct {
	m          sync.RWMutex
	products   map[string]*entities.Product
	currencies map[string]*entities.Currency
	listCalls  int
}

func newMockProductRepository(products ...*entities.Product) *mockProductRepository {
	repo := &mockProductRepository{
		products:   map[string]*entities.Product{},
		currencies: map[string]*entities.Currency{},
	}
	for _, p := range products {
		repo.products[p.ID.String()] = p
	}
	return repo
}

func (m *mockProductRepository) CreateProduct(_ context.Context, p *entities.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.products[p.ID.String()] = p
	return nil
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

func (m *mockProductRepository) GetProductBySlug(_ context.Context, slug string) (*entities.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	for _, p := range m.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepository) GetProducts(context.Context, domain.ProductFilter) ([]*entities.Product, int64, error) {
	m.m.Lock()
	m.listCalls++
	m.m.Unlock()

	m.m.RLock()
	defer m.m.RUnlock()
	var result []*entities.Product
	for _, p := range m.products {
		result = append(result, p)
	}
	return result, int64(len(result)), nil
}

func (m *mockProductRepository) UpdateProduct(_ context.Context, p *entities.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.products[p.ID.String()] = p
	return nil
}

func (m *mockProductRepository) DeleteProduct(_ context.Context, id string) error {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.products, id)
	return nil
}

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

func (m *mockProductRepository) GetCurrencyByCode(_ context.Context, code string) (*entities.Currency, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	currency, ok := m.currencies[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return currency, nil
}

type mockCatalogCache struct {
	m    sync.RWMutex
	data map[string][]byte
}

func newMockCatalogCache() *mockCatalogCache {
	return &mockCatalogCache{data: map[string][]byte{}}
}

func (m *mockCatalogCache) Get(_ context.Context, key string) ([]byte, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return v, nil
}

func (m *mockCatalogCache) Set(_ context.Context, key string, value []byte) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockCatalogCache) Delete(_ context.Context, key string) error {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.data, key)
	return nil
}

type mockS3 struct{}

func (m *mockS3) UploadFile(string, *multipart.FileHeader, string, ...string) (string, error) {
	return "https://bucket.s3.amazonaws.com/products/test.png", nil
}
func (m *mockS3) DeleteFile(string) error { return nil }
func (m *mockS3) GetPublicLinkKey(key string) string {
	return "https://bucket.s3.amazonaws.com/" + key
}
func (m *mockS3) GetObjectKeyFromLink(link string) string { return link }

func catalogProduct(slug string, price float64) *entities.Product {
	return &entities.Product{
		ID:          uuid.New(),
		Name:        "Widget",
		Slug:        slug,
		Price:       price,
		Stock:       10,
		StockStatus: domain.StockStatusInStock,
	}
}

func defaultFilter() domain.ProductFilter {
	return domain.ProductFilter{Page: 1, Limit: 20}
}

func TestGetProducts_DefaultListingServedFromCache(t *testing.T) {
	repo := newMockProductRepository(catalogProduct("widget", 10))
	catalogCache := newMockCatalogCache()
	svc := NewProductService(repo, catalogCache, &mockS3{})

	cachedPayload, err := json.Marshal(map[string]interface{}{
		"products": []domain.ProductResponse{{ID: uuid.NewString(), Name: "Cached", Currency: "USD"}},
		"count":    1,
	})
	require.NoError(t, err)
	require.NoError(t, catalogCache.Set(context.Background(), cache.DefaultListingKey, cachedPayload))

	products, count, err := svc.GetProducts(context.Background(), defaultFilter(), "", "")
	require.NoError(t, err)

	assert.Equal(t, int64(1), count)
	require.Len(t, products, 1)
	assert.Equal(t, "Cached", products[0].Name)
	assert.Zero(t, repo.listCalls)
}

func TestGetProducts_FilteredQueryBypassesCache(t *testing.T) {
	repo := newMockProductRepository(catalogProduct("widget", 10))
	catalogCache := newMockCatalogCache()
	svc := NewProductService(repo, catalogCache, &mockS3{})

	_, _, err := svc.GetProducts(context.Background(), domain.ProductFilter{
		Search: "widget", Page: 1, Limit: 20,
	}, "", "")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls)
	_, ok := catalogCache.data[cache.DefaultListingKey]
	assert.False(t, ok)
}

func TestGetProducts_InvalidPriceRange(t *testing.T) {
	svc := NewProductService(newMockProductRepository(), newMockCatalogCache(), &mockS3{})

	_, _, err := svc.GetProducts(context.Background(), domain.ProductFilter{
		MinPrice: 100, MaxPrice: 50, Page: 1, Limit: 20,
	}, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidPriceRange)
}

func TestGetProductBySlug_CurrencyConversionAndTranslation(t *testing.T) {
	p := catalogProduct("widget", 10)
	p.Translations = []*entities.ProductTranslation{
		{ID: uuid.New(), ProductID: p.ID, Locale: "pt-BR", Name: "Aparelho", Description: "Um aparelho"},
	}
	repo := newMockProductRepository(p)
	repo.currencies["EUR"] = &entities.Currency{
		ID: uuid.New(), Code: "EUR", Rate: 0.9, IsActive: true,
	}
	svc := NewProductService(repo, newMockCatalogCache(), &mockS3{})

	res, err := svc.GetProductBySlug(context.Background(), "widget", "EUR", "pt-BR")
	require.NoError(t, err)

	assert.Equal(t, "EUR", res.Currency)
	assert.InDelta(t, 9.0, res.Price, 0.001)
	assert.Equal(t, "Aparelho", res.Name)
	assert.Equal(t, "Um aparelho", res.Description)
}

func TestGetProductBySlug_UnknownCurrency(t *testing.T) {
	p := catalogProduct("widget", 10)
	svc := NewProductService(newMockProductRepository(p), newMockCatalogCache(), &mockS3{})

	_, err := svc.GetProductBySlug(context.Background(), "widget", "XXX", "")
	assert.ErrorIs(t, err, domain.ErrCurrencyNotFound)
}

func TestCreateProduct_DuplicateSlug(t *testing.T) {
	p := catalogProduct("widget", 10)
	svc := NewProductService(newMockProductRepository(p), newMockCatalogCache(), &mockS3{})

	_, err := svc.CreateProduct(context.Background(), domain.CreateProductRequest{
		Name:  "Another Widget",
		Slug:  "widget",
		Price: 5,
	})
	assert.ErrorIs(t, err, domain.ErrSlugAlreadyExists)
}

func TestAdjustStock_NegativeResult(t *testing.T) {
	p := catalogProduct("widget", 10)
	p.Stock = 3
	svc := NewProductService(newMockProductRepository(p), newMockCatalogCache(), &mockS3{})

	err := svc.AdjustStock(context.Background(), p.ID.String(), -5)
	assert.ErrorIs(t, err, domain.ErrInvalidStock)
}

func TestAdjustStock_RecomputesStatus(t *testing.T) {
	p := catalogProduct("widget", 10)
	p.Stock = 10
	repo := newMockProductRepository(p)
	svc := NewProductService(repo, newMockCatalogCache(), &mockS3{})

	require.NoError(t, svc.AdjustStock(context.Background(), p.ID.String(), -7))
	assert.Equal(t, 3, p.Stock)
	assert.Equal(t, domain.StockStatusLowStock, p.StockStatus)

	require.NoError(t, svc.AdjustStock(context.Background(), p.ID.String(), -3))
	assert.Equal(t, domain.StockStatusOutOfStock, p.StockStatus)
}

func TestDetermineStockStatus(t *testing.T) {
	assert.Equal(t, domain.StockStatusOutOfStock, determineStockStatus(0))
	assert.Equal(t, domain.StockStatusLowStock, determineStockStatus(5))
	assert.Equal(t, domain.StockStatusInStock, determineStockStatus(6))
}

func TestEffectivePrice(t *testing.T) {
	p := catalogProduct("widget", 10)
	assert.InDelta(t, 10.0, EffectivePrice(p), 0.001)

	sale := 8.0
	p.PriceSale = &sale
	assert.InDelta(t, 8.0, EffectivePrice(p), 0.001)
}
