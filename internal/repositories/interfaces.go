package repositories

import (
	"context"

	"adey-market-backend/internal/models"

	"github.com/google/uuid"
)

// UserRepository interface for PostgreSQL user operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// CustomerRepository interface for PostgreSQL business-customer operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]models.Customer, int64, error)
}

// OrderRepository interface for PostgreSQL order operations
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Order, error)
	GetByStatus(ctx context.Context, status string, limit, offset int) ([]models.Order, error)
}

// OrderItemRepository interface for PostgreSQL order line operations
type OrderItemRepository interface {
	CreateBatch(ctx context.Context, items []models.OrderItem) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
}

// PaymentRepository interface for PostgreSQL payment operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
}

// AuditLogRepository interface for PostgreSQL audit log operations
type AuditLogRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
}

// ProductRepository interface for MongoDB catalog operations
type ProductRepository interface {
	Upsert(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category string, limit, offset int) ([]models.Product, error)
	GetFeatured(ctx context.Context) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
}

// ProductCategoryRepository interface for MongoDB category operations
type ProductCategoryRepository interface {
	Upsert(ctx context.Context, category *models.ProductCategory) error
	GetAll(ctx context.Context) ([]models.ProductCategory, error)
}
