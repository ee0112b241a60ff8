package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetProducts    = "products retrieved successfully"
	MessageSuccessGetProduct     = "product retrieved successfully"
	MessageSuccessCreateProduct  = "product created successfully"
	MessageSuccessUpdateProduct  = "product updated successfully"
	MessageSuccessDeleteProduct  = "product deleted successfully"
	MessageSuccessUploadImage    = "product image uploaded successfully"
	MessageSuccessAdjustStock    = "product stock adjusted successfully"
	MessageSuccessGetBrands      = "brands retrieved successfully"
	MessageSuccessCreateBrand    = "brand created successfully"
	MessageSuccessUpdateBrand    = "brand updated successfully"
	MessageSuccessDeleteBrand    = "brand deleted successfully"
	MessageSuccessGetCategories  = "categories retrieved successfully"
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessUpdateCategory = "category updated successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"
	MessageSuccessGetCurrencies  = "currencies retrieved successfully"

	MessageFailedGetProducts    = "failed to retrieve products"
	MessageFailedGetProduct     = "failed to retrieve product"
	MessageFailedCreateProduct  = "failed to create product"
	MessageFailedUpdateProduct  = "failed to update product"
	MessageFailedDeleteProduct  = "failed to delete product"
	MessageFailedUploadImage    = "failed to upload product image"
	MessageFailedAdjustStock    = "failed to adjust product stock"
	MessageFailedGetBrands      = "failed to retrieve brands"
	MessageFailedCreateBrand    = "failed to create brand"
	MessageFailedUpdateBrand    = "failed to update brand"
	MessageFailedDeleteBrand    = "failed to delete brand"
	MessageFailedGetCategories  = "failed to retrieve categories"
	MessageFailedCreateCategory = "failed to create category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"
	MessageFailedGetCurrencies  = "failed to retrieve currencies"

	ErrProductNotFound   = errors.New("product not found")
	ErrBrandNotFound     = errors.New("brand not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCurrencyNotFound  = errors.New("currency not found")
	ErrSlugAlreadyExists = errors.New("slug already in use")
	ErrInvalidColumn     = errors.New("column not allowed")
	ErrInvalidPriceRange = errors.New("invalid price range")
	ErrInvalidStock      = errors.New("stock cannot be negative")
)

const (
	StockStatusInStock    = "InStock"
	StockStatusLowStock   = "LowStock"
	StockStatusOutOfStock = "OutOfStock"

	LowStockThreshold = 5
)

type (
	ProductFilter struct {
		Search      string
		BrandID     string
		CategoryID  string
		MinPrice    float64
		MaxPrice    float64
		StockStatus string
		Tag         string
		SortBy      string
		SortOrder   string
		Page        int
		Limit       int
	}

	CreateProductRequest struct {
		Name        string   `json:"name" validate:"required"`
		Slug        string   `json:"slug" validate:"required,lowercase"`
		Description string   `json:"description" validate:"omitempty"`
		Price       float64  `json:"price" validate:"required,gt=0"`
		PriceSale   *float64 `json:"price_sale" validate:"omitempty,gt=0"`
		Stock       int      `json:"stock" validate:"min=0"`
		BrandID     string   `json:"brand_id" validate:"omitempty,uuid"`
		CategoryID  string   `json:"category_id" validate:"omitempty,uuid"`
		Tags        []string `json:"tags" validate:"omitempty"`
	}

	UpdateProductRequest struct {
		Name        string   `json:"name" validate:"omitempty"`
		Description string   `json:"description" validate:"omitempty"`
		Price       *float64 `json:"price" validate:"omitempty,gt=0"`
		PriceSale   *float64 `json:"price_sale" validate:"omitempty,gte=0"`
		Stock       *int     `json:"stock" validate:"omitempty,min=0"`
		BrandID     string   `json:"brand_id" validate:"omitempty,uuid"`
		CategoryID  string   `json:"category_id" validate:"omitempty,uuid"`
		Tags        []string `json:"tags" validate:"omitempty"`
	}

	UpdateProductColumnRequest struct {
		Column string `json:"column" validate:"required"`
		Value  string `json:"value" validate:"required"`
	}

	DeleteByColumnRequest struct {
		Column string `json:"column" validate:"required"`
		Value  string `json:"value" validate:"required"`
	}

	UploadProductImageRequest struct {
		ProductID string                `json:"product_id" form:"product_id" validate:"required,uuid"`
		Position  int                   `json:"position" form:"position" validate:"min=0"`
		Image     *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UpsertTranslationRequest struct {
		Locale      string `json:"locale" validate:"required"`
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
	}

	AdjustStockRequest struct {
		Delta int `json:"delta" validate:"required"`
	}

	ProductResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Slug        string    `json:"slug"`
		Description string    `json:"description"`
		Price       float64   `json:"price"`
		PriceSale   *float64  `json:"price_sale,omitempty"`
		Currency    string    `json:"currency"`
		Stock       int       `json:"stock"`
		StockStatus string    `json:"stock_status"`
		BrandID     string    `json:"brand_id,omitempty"`
		BrandName   string    `json:"brand_name,omitempty"`
		CategoryID  string    `json:"category_id,omitempty"`
		Category    string    `json:"category,omitempty"`
		Tags        []string  `json:"tags,omitempty"`
		Images      []string  `json:"images,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	CreateBrandRequest struct {
		Name    string `json:"name" validate:"required"`
		Slug    string `json:"slug" validate:"required,lowercase"`
		LogoURL string `json:"logo_url" validate:"omitempty,url"`
	}

	UpdateBrandRequest struct {
		Name     *string `json:"name" validate:"omitempty"`
		Slug     *string `json:"slug" validate:"omitempty,lowercase"`
		LogoURL  *string `json:"logo_url" validate:"omitempty,url"`
		IsActive *bool   `json:"is_active" validate:"omitempty"`
	}

	BrandResponse struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Slug    string `json:"slug"`
		LogoURL string `json:"logo_url,omitempty"`
	}

	CreateCategoryRequest struct {
		Name string `json:"name" validate:"required"`
		Slug string `json:"slug" validate:"required,lowercase"`
	}

	UpdateCategoryRequest struct {
		Name     *string `json:"name" validate:"omitempty"`
		Slug     *string `json:"slug" validate:"omitempty,lowercase"`
		IsActive *bool   `json:"is_active" validate:"omitempty"`
	}

	CategoryResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}

	CurrencyResponse struct {
		Code   string  `json:"code"`
		Name   string  `json:"name"`
		Symbol string  `json:"symbol"`
		Rate   float64 `json:"rate"`
	}
)
