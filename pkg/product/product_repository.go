package product

import (
	"context"
	"fmt"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/entities"

	"gorm.io/gorm"
)

// allowedColumns guards the generic by-column endpoints; anything else is
// rejected before touching SQL.
var allowedColumns = map[string]bool{
	"name":         true,
	"description":  true,
	"price":        true,
	"price_sale":   true,
	"stock":        true,
	"stock_status": true,
	"tags":         true,
}

var allowedSortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"created_at": "created_at",
}

type (
	ProductRepository interface {
		CreateProduct(ctx context.Context, product *entities.Product) error
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		GetProductBySlug(ctx context.Context, slug string) (*entities.Product, error)
		GetProducts(ctx context.Context, filter domain.ProductFilter) ([]*entities.Product, int64, error)
		UpdateProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, id string) error
		UpdateProductColumn(ctx context.Context, id, column, value string) error
		DeleteProductsByColumn(ctx context.Context, column, value string) error
		AddProductImage(ctx context.Context, image *entities.ProductImage) error
		UpsertTranslation(ctx context.Context, translation *entities.ProductTranslation) error

		CreateBrand(ctx context.Context, brand *entities.Brand) error
		GetBrands(ctx context.Context) ([]*entities.Brand, error)
		GetBrandByID(ctx context.Context, id string) (*entities.Brand, error)
		UpdateBrand(ctx context.Context, brand *entities.Brand) error
		DeleteBrand(ctx context.Context, id string) error
		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id string) error

		GetCurrencies(ctx context.Context) ([]*entities.Currency, error)
		GetCurrencyByCode(ctx context.Context, code string) (*entities.Currency, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Preload("Images").
		Preload("Translations").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetProductBySlug(ctx context.Context, slug string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Preload("Images").
		Preload("Translations").
		Where("slug = ?", slug).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetProducts(ctx context.Context, filter domain.ProductFilter) ([]*entities.Product, int64, error) {
	var products []*entities.Product
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Product{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.BrandID != "" {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.MinPrice > 0 {
		query = query.Where("COALESCE(price_sale, price) >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("COALESCE(price_sale, price) <= ?", filter.MaxPrice)
	}
	if filter.StockStatus != "" {
		query = query.Where("stock_status = ?", filter.StockStatus)
	}
	if filter.Tag != "" {
		query = query.Where("tags ILIKE ?", "%"+filter.Tag+"%")
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	sortColumn, ok := allowedSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	sortOrder := "asc"
	if filter.SortOrder == "desc" {
		sortOrder = "desc"
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.
		Preload("Brand").
		Preload("Category").
		Preload("Images").
		Order(fmt.Sprintf("%s %s", sortColumn, sortOrder)).
		Offset(offset).
		Limit(filter.Limit).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Product{}).Error
}

func (r *productRepository) UpdateProductColumn(ctx context.Context, id, column, value string) error {
	if !allowedColumns[column] {
		return domain.ErrInvalidColumn
	}
	return r.db.WithContext(ctx).Model(&entities.Product{}).
		Where("id = ?", id).
		Update(column, value).Error
}

func (r *productRepository) DeleteProductsByColumn(ctx context.Context, column, value string) error {
	if !allowedColumns[column] {
		return domain.ErrInvalidColumn
	}
	return r.db.WithContext(ctx).
		Where(fmt.Sprintf("%s = ?", column), value).
		Delete(&entities.Product{}).Error
}

func (r *productRepository) AddProductImage(ctx context.Context, image *entities.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *productRepository) UpsertTranslation(ctx context.Context, translation *entities.ProductTranslation) error {
	var existing entities.ProductTranslation
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND locale = ?", translation.ProductID, translation.Locale).
		First(&existing).Error
	if err == nil {
		existing.Name = translation.Name
		existing.Description = translation.Description
		return r.db.WithContext(ctx).Save(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(translation).Error
}

func (r *productRepository) CreateBrand(ctx context.Context, brand *entities.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *productRepository) GetBrands(ctx context.Context) ([]*entities.Brand, error) {
	var brands []*entities.Brand
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *productRepository) GetBrandByID(ctx context.Context, id string) (*entities.Brand, error) {
	var brand entities.Brand
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *productRepository) UpdateBrand(ctx context.Context, brand *entities.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

func (r *productRepository) DeleteBrand(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Brand{}).Error
}

func (r *productRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *productRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *productRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *productRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *productRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Category{}).Error
}

func (r *productRepository) GetCurrencies(ctx context.Context) ([]*entities.Currency, error) {
	var currencies []*entities.Currency
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("code ASC").
		Find(&currencies).Error; err != nil {
		return nil, err
	}
	return currencies, nil
}

func (r *productRepository) GetCurrencyByCode(ctx context.Context, code string) (*entities.Currency, error) {
	var currency entities.Currency
	if err := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&currency).Error; err != nil {
		return nil, err
	}
	return &currency, nil
}
