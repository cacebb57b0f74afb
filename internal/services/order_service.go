package services

import (
	"context"
	"errors"

	"adey-market-backend/internal/models"
	"adey-market-backend/internal/repositories"
	"adey-market-backend/pkg/messaging"

	"github.com/google/uuid"
)

type OrderService struct {
	orderRepo repositories.OrderRepository
}

func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

func (s *OrderService) GetOrdersForUser(ctx context.Context, userID string, limit, offset int) ([]models.Order, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	return s.orderRepo.GetByUserID(ctx, userUUID, limit, offset)
}

// GetOrder returns the order only if it belongs to the requesting user.
// Admins may fetch any order.
func (s *OrderService) GetOrder(ctx context.Context, orderID, userID, role string) (*models.Order, error) {
	orderUUID, err := uuid.Parse(orderID)
	if err != nil {
		return nil, errors.New("invalid order ID")
	}

	order, err := s.orderRepo.GetByID(ctx, orderUUID)
	if err != nil {
		return nil, errors.New("order not found")
	}

	if role != "admin" && order.UserID.String() != userID {
		return nil, errors.New("order not found")
	}

	return order, nil
}

func (s *OrderService) ListOrdersByStatus(ctx context.Context, status string, limit, offset int) ([]models.Order, error) {
	return s.orderRepo.GetByStatus(ctx, status, limit, offset)
}

func newOrderPlacedEvent(order *models.Order, userID string) messaging.OrderEvent {
	return messaging.OrderEvent{
		Type:        "order_placed",
		OrderID:     order.ID.String(),
		UserID:      userID,
		TotalAmount: order.TotalAmount,
		Data: map[string]interface{}{
			"status":         order.Status,
			"payment_status": order.PaymentStatus,
			"subtotal":       order.Subtotal,
			"tax_amount":     order.TaxAmount,
		},
	}
}
