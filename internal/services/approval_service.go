package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adey-market-backend/internal/models"
	"adey-market-backend/internal/repositories"
	"adey-market-backend/pkg/cache"
	"adey-market-backend/pkg/messaging"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const approvalCacheTTL = time.Minute * 5

// ApprovalMailer is satisfied by email.EmailService.
type ApprovalMailer interface {
	SendApprovalNotification(ctx context.Context, to, fullName string) (map[string]interface{}, error)
}

// ApprovalService manages the business-customer approval workflow: listing
// pending applications, approving/rejecting them, and answering the
// "is this user approved" question the cart and checkout routes gate on.
type ApprovalService struct {
	customerRepo repositories.CustomerRepository
	auditRepo    repositories.AuditLogRepository
	cache        *cache.RedisCache
	mailer       ApprovalMailer
	publisher    EventPublisher
	kafkaBrokers []string
	logger       *logrus.Entry
}

func NewApprovalService(
	customerRepo repositories.CustomerRepository,
	auditRepo repositories.AuditLogRepository,
	cache *cache.RedisCache,
	mailer ApprovalMailer,
	publisher EventPublisher,
	kafkaBrokers []string,
) *ApprovalService {
	return &ApprovalService{
		customerRepo: customerRepo,
		auditRepo:    auditRepo,
		cache:        cache,
		mailer:       mailer,
		publisher:    publisher,
		kafkaBrokers: kafkaBrokers,
		logger:       logrus.WithField("service", "approval"),
	}
}

type CustomerListResponse struct {
	Customers []models.Customer `json:"customers"`
	Total     int64             `json:"total"`
}

func (s *ApprovalService) ListCustomers(ctx context.Context, status string, limit, offset int) (*CustomerListResponse, error) {
	customers, total, err := s.customerRepo.ListByStatus(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	return &CustomerListResponse{Customers: customers, Total: total}, nil
}

// IsApproved reports whether the user's business profile has been approved.
// Results are cached briefly; approval decisions invalidate the cache.
func (s *ApprovalService) IsApproved(ctx context.Context, userID string) (bool, error) {
	cacheKey := "approval:" + userID

	var cached string
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached == models.ApprovalApproved, nil
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false, errors.New("invalid user ID")
	}

	customer, err := s.customerRepo.GetByUserID(ctx, userUUID)
	if err != nil {
		// No profile means not approved; not an error for the caller.
		return false, nil
	}

	if err := s.cache.Set(ctx, cacheKey, customer.ApprovalStatus, approvalCacheTTL); err != nil {
		s.logger.WithError(err).Debug("approval cache write failed")
	}

	return customer.ApprovalStatus == models.ApprovalApproved, nil
}

// Approve marks the customer approved, records the decision, notifies the
// customer by email and publishes an event. Email failure does not roll
// back the approval; it is logged and the admin can resend.
func (s *ApprovalService) Approve(ctx context.Context, customerID, adminID string) (*models.Customer, error) {
	customer, err := s.decide(ctx, customerID, adminID, models.ApprovalApproved)
	if err != nil {
		return nil, err
	}

	if _, err := s.mailer.SendApprovalNotification(ctx, customer.Email, customer.FullName); err != nil {
		s.logger.WithError(err).WithField("customer_id", customerID).Error("approval email failed")
	}

	event := messaging.CustomerEvent{
		Type:       "customer_approved",
		CustomerID: customer.ID.String(),
		Email:      customer.Email,
		FullName:   customer.FullName,
	}
	if err := s.publisher.SendMessage("customer_events", s.kafkaBrokers, customer.ID.String(), event); err != nil {
		s.logger.WithError(err).Warn("failed to publish customer event")
	}

	return customer, nil
}

func (s *ApprovalService) Reject(ctx context.Context, customerID, adminID string) (*models.Customer, error) {
	return s.decide(ctx, customerID, adminID, models.ApprovalRejected)
}

func (s *ApprovalService) decide(ctx context.Context, customerID, adminID, status string) (*models.Customer, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, errors.New("invalid customer ID")
	}

	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return nil, errors.New("invalid admin ID")
	}

	customer, err := s.customerRepo.GetByID(ctx, customerUUID)
	if err != nil {
		return nil, errors.New("customer not found")
	}

	customer.ApprovalStatus = status
	customer.UpdatedAt = time.Now()
	if status == models.ApprovalApproved {
		now := time.Now()
		customer.ApprovedAt = &now
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	entry := &models.AuditLog{
		EntityType:  "customer",
		EntityID:    customer.ID.String(),
		Action:      fmt.Sprintf("approval_%s", status),
		PerformedBy: adminUUID,
		Timestamp:   time.Now(),
		Metadata:    models.JSONB{"email": customer.Email},
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.logger.WithError(err).Warn("audit log write failed")
	}

	if err := s.cache.Delete(ctx, "approval:"+customer.UserID.String()); err != nil {
		s.logger.WithError(err).Debug("approval cache invalidation failed")
	}

	return customer, nil
}
