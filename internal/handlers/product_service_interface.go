package handlers

import (
	"context"

	"adey-market-backend/internal/models"
	"adey-market-backend/internal/services"
)

// ProductServiceInterface defines the catalog operations the handler depends on
type ProductServiceInterface interface {
	GetProducts(ctx context.Context, category string, limit, offset int) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]models.Product, error)
	GetCategories(ctx context.Context) ([]models.ProductCategory, error)
	CreateProduct(ctx context.Context, req *services.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req *services.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
