package services

import (
	"context"
	"errors"
	"time"

	"adey-market-backend/internal/catalog"
	"adey-market-backend/internal/models"
	"adey-market-backend/internal/repositories"
	"adey-market-backend/pkg/cache"
	"adey-market-backend/pkg/messaging"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const productCacheTTL = time.Minute * 10

type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.ProductCategoryRepository
	cache        *cache.RedisCache
	publisher    EventPublisher
	kafkaBrokers []string
	logger       *logrus.Entry
}

func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.ProductCategoryRepository,
	cache *cache.RedisCache,
	publisher EventPublisher,
	kafkaBrokers []string,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		publisher:    publisher,
		kafkaBrokers: kafkaBrokers,
		logger:       logrus.WithField("service", "product"),
	}
}

// EnsureCatalogSeeded loads the launch catalog into MongoDB on first boot.
// Safe to call on every start; an already-populated catalog is untouched.
func (s *ProductService) EnsureCatalogSeeded(ctx context.Context) error {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range catalog.Products {
		if err := s.productRepo.Upsert(ctx, &catalog.Products[i]); err != nil {
			return err
		}
	}
	for i := range catalog.Categories {
		if err := s.categoryRepo.Upsert(ctx, &catalog.Categories[i]); err != nil {
			return err
		}
	}

	s.logger.WithField("products", len(catalog.Products)).Info("seeded launch catalog")
	return nil
}

type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Origin        string  `json:"origin"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
	CulturalNotes string  `json:"cultural_notes"`
	Featured      bool    `json:"featured"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	Origin        *string  `json:"origin"`
	Price         *float64 `json:"price"`
	Image         *string  `json:"image"`
	Description   *string  `json:"description"`
	CulturalNotes *string  `json:"cultural_notes"`
	Featured      *bool    `json:"featured"`
}

func (s *ProductService) GetProducts(ctx context.Context, category string, limit, offset int) ([]models.Product, error) {
	cacheKey := "products:" + category
	if offset == 0 {
		var cached []models.Product
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.List(ctx, category, limit, offset)
	if err != nil {
		return nil, err
	}

	if offset == 0 {
		if err := s.cache.Set(ctx, cacheKey, products, productCacheTTL); err != nil {
			s.logger.WithError(err).Debug("product cache write failed")
		}
	}

	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}
	return product, nil
}

func (s *ProductService) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	cacheKey := "products:featured"
	var cached []models.Product
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	products, err := s.productRepo.GetFeatured(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, products, productCacheTTL); err != nil {
		s.logger.WithError(err).Debug("product cache write failed")
	}

	return products, nil
}

func (s *ProductService) GetCategories(ctx context.Context) ([]models.ProductCategory, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Category:      req.Category,
		Origin:        req.Origin,
		Price:         req.Price,
		Image:         req.Image,
		Description:   req.Description,
		CulturalNotes: req.CulturalNotes,
		Featured:      req.Featured,
	}

	if err := s.productRepo.Upsert(ctx, product); err != nil {
		return nil, err
	}

	s.publishCatalogEvent("product_created", product)
	s.clearProductCache(ctx, product.Category)
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Origin != nil {
		product.Origin = *req.Origin
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.CulturalNotes != nil {
		product.CulturalNotes = *req.CulturalNotes
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}

	if err := s.productRepo.Upsert(ctx, product); err != nil {
		return nil, err
	}

	s.publishCatalogEvent("product_updated", product)
	s.clearProductCache(ctx, product.Category)
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return errors.New("product not found")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishCatalogEvent("product_deleted", product)
	s.clearProductCache(ctx, product.Category)
	return nil
}

func (s *ProductService) publishCatalogEvent(eventType string, product *models.Product) {
	event := messaging.CatalogEvent{
		Type:      eventType,
		ProductID: product.ID,
		Name:      product.Name,
	}
	if err := s.publisher.SendMessage("catalog_events", s.kafkaBrokers, product.ID, event); err != nil {
		s.logger.WithError(err).Warn("failed to publish catalog event")
	}
}

func (s *ProductService) clearProductCache(ctx context.Context, category string) {
	keys := []string{"products:", "products:featured"}
	if category != "" {
		keys = append(keys, "products:"+category)
	}
	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.WithError(err).Debug("product cache invalidation failed")
		}
	}
}
