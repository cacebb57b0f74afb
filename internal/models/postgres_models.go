package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, j)
}

// Customer approval states. Cart mutations and checkout are gated on
// StatusApproved; the gate itself lives in middleware, not in the cart.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// User model - PostgreSQL (authentication identity)
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"default:customer" json:"role"` // customer, admin
	Status       string    `gorm:"default:active" json:"status"` // active, inactive, suspended
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Customer model - PostgreSQL (business customer profile + approval state)
type Customer struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User           User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FullName       string     `gorm:"not null" json:"full_name"`
	Email          string     `gorm:"not null" json:"email"`
	Phone          string     `json:"phone"`
	BusinessName   string     `gorm:"not null" json:"business_name"`
	BusinessType   string     `json:"business_type"` // restaurant, grocery, retail, other
	ApprovalStatus string     `gorm:"default:pending" json:"approval_status"`
	ApprovedAt     *time.Time `json:"approved_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Order model - PostgreSQL (critical transactional data)
type Order struct {
	ID            uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID   `gorm:"type:uuid;not null" json:"user_id"`
	User          User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status        string      `gorm:"default:pending" json:"status"`         // pending, completed, cancelled
	PaymentStatus string      `gorm:"default:pending" json:"payment_status"` // pending, paid, failed
	Subtotal      float64     `json:"subtotal"`
	TaxAmount     float64     `json:"tax_amount"`
	TotalAmount   float64     `json:"total_amount"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderItem model - PostgreSQL (one row per cart line at checkout time)
type OrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   string    `gorm:"not null" json:"product_id"` // catalog (MongoDB) reference
	ProductName string    `json:"product_name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   float64   `gorm:"not null" json:"unit_price"`
	TotalPrice  float64   `gorm:"not null" json:"total_price"`
}

// Payment model - PostgreSQL (critical financial data)
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null" json:"order_id"`
	Order         Order     `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	UserID        uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Method        string    `gorm:"not null" json:"method"`        // stripe
	Status        string    `gorm:"default:pending" json:"status"` // pending, success, failed
	TransactionID string    `gorm:"uniqueIndex" json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
	Metadata      JSONB     `gorm:"type:jsonb" json:"metadata"`
}

// AuditLog model - PostgreSQL (admin approval decisions)
type AuditLog struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EntityType  string    `gorm:"not null" json:"entity_type"`
	EntityID    string    `gorm:"not null" json:"entity_id"`
	Action      string    `gorm:"not null" json:"action"`
	PerformedBy uuid.UUID `gorm:"type:uuid;not null" json:"performed_by"`
	Timestamp   time.Time `gorm:"default:now()" json:"timestamp"`
	Metadata    JSONB     `gorm:"type:jsonb" json:"metadata"`
}
