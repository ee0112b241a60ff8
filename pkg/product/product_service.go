package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/entities"
	"Experience-Club-Backend/internal/utils/cache"
	"Experience-Club-Backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		GetProducts(ctx context.Context, filter domain.ProductFilter, currencyCode, locale string) ([]domain.ProductResponse, int64, error)
		GetProductBySlug(ctx context.Context, slug, currencyCode, locale string) (domain.ProductResponse, error)
		CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) error
		DeleteProduct(ctx context.Context, id string) error
		UpdateProductColumn(ctx context.Context, id string, req domain.UpdateProductColumnRequest) error
		DeleteProductsByColumn(ctx context.Context, req domain.DeleteByColumnRequest) error
		UploadProductImage(ctx context.Context, req domain.UploadProductImageRequest) (string, error)
		AdjustStock(ctx context.Context, id string, delta int) error
		UpsertTranslation(ctx context.Context, id string, req domain.UpsertTranslationRequest) error

		GetBrands(ctx context.Context) ([]domain.BrandResponse, error)
		CreateBrand(ctx context.Context, req domain.CreateBrandRequest) (domain.BrandResponse, error)
		UpdateBrand(ctx context.Context, id string, req domain.UpdateBrandRequest) error
		DeleteBrand(ctx context.Context, id string) error
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) error
		DeleteCategory(ctx context.Context, id string) error
		GetCurrencies(ctx context.Context) ([]domain.CurrencyResponse, error)
	}

	productService struct {
		productRepository ProductRepository
		catalogCache      cache.CatalogCache
		s3                storage.AwsS3
		sfg               singleflight.Group // prevents cache stampede on the hot listing
	}
)

func NewProductService(productRepository ProductRepository, catalogCache cache.CatalogCache, s3 storage.AwsS3) ProductService {
	return &productService{
		productRepository: productRepository,
		catalogCache:      catalogCache,
		s3:                s3,
	}
}

// isDefaultListing reports whether the filter matches the storefront landing
// query, the only shape worth caching.
func isDefaultListing(filter domain.ProductFilter, currencyCode, locale string) bool {
	return filter.Search == "" && filter.BrandID == "" && filter.CategoryID == "" &&
		filter.MinPrice == 0 && filter.MaxPrice == 0 && filter.StockStatus == "" &&
		filter.Tag == "" && filter.SortBy == "" && filter.Page == 1 &&
		currencyCode == "" && locale == ""
}

func (s *productService) GetProducts(ctx context.Context, filter domain.ProductFilter, currencyCode, locale string) ([]domain.ProductResponse, int64, error) {
	if filter.MinPrice > 0 && filter.MaxPrice > 0 && filter.MinPrice > filter.MaxPrice {
		return nil, 0, domain.ErrInvalidPriceRange
	}

	if !isDefaultListing(filter, currencyCode, locale) {
		return s.getProductsFromDB(ctx, filter, currencyCode, locale)
	}

	type cached struct {
		Products []domain.ProductResponse `json:"products"`
		Count    int64                    `json:"count"`
	}

	v, err, _ := s.sfg.Do(cache.DefaultListingKey, func() (interface{}, error) {
		data, err := s.catalogCache.Get(ctx, cache.DefaultListingKey)
		if err == nil {
			var c cached
			if err := json.Unmarshal(data, &c); err == nil {
				return &c, nil
			}
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			log.Errorf("catalog cache get error: %v", err)
		}

		products, count, err := s.getProductsFromDB(ctx, filter, currencyCode, locale)
		if err != nil {
			return nil, err
		}

		c := &cached{Products: products, Count: count}
		if data, err := json.Marshal(c); err == nil {
			go func() {
				if err := s.catalogCache.Set(context.Background(), cache.DefaultListingKey, data); err != nil {
					log.Errorf("catalog cache set error: %v", err)
				}
			}()
		}

		return c, nil
	})
	if err != nil {
		return nil, 0, err
	}

	c := v.(*cached)
	return c.Products, c.Count, nil
}

func (s *productService) getProductsFromDB(ctx context.Context, filter domain.ProductFilter, currencyCode, locale string) ([]domain.ProductResponse, int64, error) {
	currency, err := s.resolveCurrency(ctx, currencyCode)
	if err != nil {
		return nil, 0, err
	}

	products, count, err := s.productRepository.GetProducts(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p, currency, locale))
	}

	return response, count, nil
}

func (s *productService) GetProductBySlug(ctx context.Context, slug, currencyCode, locale string) (domain.ProductResponse, error) {
	currency, err := s.resolveCurrency(ctx, currencyCode)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	product, err := s.productRepository.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product, currency, locale), nil
}

func (s *productService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error) {
	if _, err := s.productRepository.GetProductBySlug(ctx, req.Slug); err == nil {
		return domain.ProductResponse{}, domain.ErrSlugAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ProductResponse{}, err
	}

	product := &entities.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		PriceSale:   req.PriceSale,
		Stock:       req.Stock,
		StockStatus: determineStockStatus(req.Stock),
		Tags:        strings.Join(req.Tags, ","),
	}

	if req.BrandID != "" {
		brand, err := s.productRepository.GetBrandByID(ctx, req.BrandID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ProductResponse{}, domain.ErrBrandNotFound
			}
			return domain.ProductResponse{}, err
		}
		product.BrandID = &brand.ID
	}

	if req.CategoryID != "" {
		category, err := s.productRepository.GetCategoryByID(ctx, req.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ProductResponse{}, domain.ErrCategoryNotFound
			}
			return domain.ProductResponse{}, err
		}
		product.CategoryID = &category.ID
	}

	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	s.invalidateListing()
	return toProductResponse(product, nil, ""), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.PriceSale != nil {
		if *req.PriceSale == 0 {
			product.PriceSale = nil
		} else {
			product.PriceSale = req.PriceSale
		}
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
		product.StockStatus = determineStockStatus(*req.Stock)
	}
	if req.BrandID != "" {
		brandUUID, err := uuid.Parse(req.BrandID)
		if err != nil {
			return domain.ErrParseUUID
		}
		product.BrandID = &brandUUID
	}
	if req.CategoryID != "" {
		categoryUUID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return domain.ErrParseUUID
		}
		product.CategoryID = &categoryUUID
	}
	if req.Tags != nil {
		product.Tags = strings.Join(req.Tags, ",")
	}

	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return err
	}

	s.invalidateListing()
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	for _, img := range product.Images {
		objectKey := s.s3.GetObjectKeyFromLink(img.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	if err := s.productRepository.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.invalidateListing()
	return nil
}

func (s *productService) UpdateProductColumn(ctx context.Context, id string, req domain.UpdateProductColumnRequest) error {
	if _, err := s.productRepository.GetProductByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if err := s.productRepository.UpdateProductColumn(ctx, id, req.Column, req.Value); err != nil {
		return err
	}

	s.invalidateListing()
	return nil
}

func (s *productService) DeleteProductsByColumn(ctx context.Context, req domain.DeleteByColumnRequest) error {
	if err := s.productRepository.DeleteProductsByColumn(ctx, req.Column, req.Value); err != nil {
		return err
	}

	s.invalidateListing()
	return nil
}

func (s *productService) UploadProductImage(ctx context.Context, req domain.UploadProductImageRequest) (string, error) {
	product, err := s.productRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrProductNotFound
		}
		return "", err
	}

	imageID := uuid.New()
	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("product-%s-%s", product.ID.String(), imageID.String()),
		req.Image,
		"products",
		storage.AllowImage...,
	)
	if err != nil {
		return "", err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)
	image := &entities.ProductImage{
		ID:        imageID,
		ProductID: product.ID,
		ImageURL:  imageURL,
		Position:  req.Position,
	}

	if err := s.productRepository.AddProductImage(ctx, image); err != nil {
		return "", err
	}

	s.invalidateListing()
	return imageURL, nil
}

func (s *productService) AdjustStock(ctx context.Context, id string, delta int) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	newStock := product.Stock + delta
	if newStock < 0 {
		return domain.ErrInvalidStock
	}

	product.Stock = newStock
	product.StockStatus = determineStockStatus(newStock)

	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return err
	}

	s.invalidateListing()
	return nil
}

func (s *productService) UpsertTranslation(ctx context.Context, id string, req domain.UpsertTranslationRequest) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	translation := &entities.ProductTranslation{
		ID:          uuid.New(),
		ProductID:   product.ID,
		Locale:      req.Locale,
		Name:        req.Name,
		Description: req.Description,
	}

	return s.productRepository.UpsertTranslation(ctx, translation)
}

func (s *productService) GetBrands(ctx context.Context) ([]domain.BrandResponse, error) {
	brands, err := s.productRepository.GetBrands(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.BrandResponse, 0, len(brands))
	for _, b := range brands {
		result = append(result, domain.BrandResponse{
			ID:      b.ID.String(),
			Name:    b.Name,
			Slug:    b.Slug,
			LogoURL: b.LogoURL,
		})
	}
	return result, nil
}

func (s *productService) CreateBrand(ctx context.Context, req domain.CreateBrandRequest) (domain.BrandResponse, error) {
	brand := &entities.Brand{
		ID:       uuid.New(),
		Name:     req.Name,
		Slug:     req.Slug,
		LogoURL:  req.LogoURL,
		IsActive: true,
	}

	if err := s.productRepository.CreateBrand(ctx, brand); err != nil {
		return domain.BrandResponse{}, err
	}

	return domain.BrandResponse{
		ID:      brand.ID.String(),
		Name:    brand.Name,
		Slug:    brand.Slug,
		LogoURL: brand.LogoURL,
	}, nil
}

func (s *productService) UpdateBrand(ctx context.Context, id string, req domain.UpdateBrandRequest) error {
	brand, err := s.productRepository.GetBrandByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBrandNotFound
		}
		return err
	}

	if req.Name != nil {
		brand.Name = *req.Name
	}
	if req.Slug != nil {
		brand.Slug = *req.Slug
	}
	if req.LogoURL != nil {
		brand.LogoURL = *req.LogoURL
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := s.productRepository.UpdateBrand(ctx, brand); err != nil {
		return err
	}

	s.invalidateListing()
	return nil
}

func (s *productService) DeleteBrand(ctx context.Context, id string) error {
	if _, err := s.productRepository.GetBrandByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBrandNotFound
		}
		return err
	}

	if err := s.productRepository.DeleteBrand(ctx, id); err != nil {
		return err
	}

	s.invalidateListing()
	return nil
}

func (s *productService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.productRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, domain.CategoryResponse{
			ID:   c.ID.String(),
			Name: c.Name,
			Slug: c.Slug,
		})
	}
	return result, nil
}

func (s *productService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	category := &entities.Category{
		ID:       uuid.New(),
		Name:     req.Name,
		Slug:     req.Slug,
		IsActive: true,
	}

	if err := s.productRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return domain.CategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
		Slug: category.Slug,
	}, nil
}

func (s *productService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) error {
	category, err := s.productRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.productRepository.UpdateCategory(ctx, category); err != nil {
		return err
	}

	s.invalidateListing()
	return nil
}

func (s *productService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.productRepository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	if err := s.productRepository.DeleteCategory(ctx, id); err != nil {
		return err
	}

	s.invalidateListing()
	return nil
}

func (s *productService) GetCurrencies(ctx context.Context) ([]domain.CurrencyResponse, error) {
	currencies, err := s.productRepository.GetCurrencies(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CurrencyResponse, 0, len(currencies))
	for _, c := range currencies {
		result = append(result, domain.CurrencyResponse{
			Code:   c.Code,
			Name:   c.Name,
			Symbol: c.Symbol,
			Rate:   c.Rate,
		})
	}
	return result, nil
}

func (s *productService) resolveCurrency(ctx context.Context, code string) (*entities.Currency, error) {
	if code == "" {
		return nil, nil
	}

	currency, err := s.productRepository.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCurrencyNotFound
		}
		return nil, err
	}
	return currency, nil
}

func (s *productService) invalidateListing() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.catalogCache.Delete(ctx, cache.DefaultListingKey); err != nil {
		log.Errorf("catalog cache invalidate error: %v", err)
	}
}

func determineStockStatus(stock int) string {
	switch {
	case stock <= 0:
		return domain.StockStatusOutOfStock
	case stock <= domain.LowStockThreshold:
		return domain.StockStatusLowStock
	default:
		return domain.StockStatusInStock
	}
}

// EffectivePrice is the price charged at checkout: the sale price when one is
// set, the list price otherwise.
func EffectivePrice(p *entities.Product) float64 {
	if p.PriceSale != nil && *p.PriceSale > 0 {
		return *p.PriceSale
	}
	return p.Price
}

func toProductResponse(p *entities.Product, currency *entities.Currency, locale string) domain.ProductResponse {
	resp := domain.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		PriceSale:   p.PriceSale,
		Currency:    "USD",
		Stock:       p.Stock,
		StockStatus: p.StockStatus,
		CreatedAt:   p.CreatedAt,
	}

	if p.Tags != "" {
		resp.Tags = strings.Split(p.Tags, ",")
	}
	if p.Brand != nil {
		resp.BrandID = p.Brand.ID.String()
		resp.BrandName = p.Brand.Name
	} else if p.BrandID != nil {
		resp.BrandID = p.BrandID.String()
	}
	if p.Category != nil {
		resp.CategoryID = p.Category.ID.String()
		resp.Category = p.Category.Name
	} else if p.CategoryID != nil {
		resp.CategoryID = p.CategoryID.String()
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, img.ImageURL)
	}

	if locale != "" {
		for _, t := range p.Translations {
			if t.Locale == locale {
				resp.Name = t.Name
				if t.Description != "" {
					resp.Description = t.Description
				}
				break
			}
		}
	}

	if currency != nil && currency.Rate > 0 {
		resp.Currency = currency.Code
		resp.Price = p.Price * currency.Rate
		if p.PriceSale != nil {
			converted := *p.PriceSale * currency.Rate
			resp.PriceSale = &converted
		}
	}

	return resp
}
