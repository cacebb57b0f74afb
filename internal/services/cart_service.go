package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"adey-market-backend/internal/cart"
	"adey-market-backend/internal/models"
	"adey-market-backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EstimatedTaxRate is applied on top of the cart total at checkout.
const EstimatedTaxRate = 0.08

// SnapshotStore persists per-customer cart snapshots across sessions.
// Implemented by cart.RedisSnapshotStore.
type SnapshotStore interface {
	Save(ctx context.Context, customerID string, state cart.State) error
	Load(ctx context.Context, customerID string) (cart.State, bool, error)
	Delete(ctx context.Context, customerID string) error
}

// EventPublisher is satisfied by messaging.KafkaProducer.
type EventPublisher interface {
	SendMessage(topic string, brokers []string, key string, value interface{}) error
}

// CartService owns one cart.Store per customer session. Stores are hydrated
// from their persisted snapshot on first access, so a returning customer
// never sees an empty cart flash before their saved cart appears.
type CartService struct {
	mu     sync.Mutex
	stores map[string]*cart.Store

	snapshots     SnapshotStore
	productRepo   repositories.ProductRepository
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
	paymentRepo   repositories.PaymentRepository
	publisher     EventPublisher
	kafkaBrokers  []string
	logger        *logrus.Entry
}

func NewCartService(
	snapshots SnapshotStore,
	productRepo repositories.ProductRepository,
	orderRepo repositories.OrderRepository,
	orderItemRepo repositories.OrderItemRepository,
	paymentRepo repositories.PaymentRepository,
	publisher EventPublisher,
	kafkaBrokers []string,
) *CartService {
	return &CartService{
		stores:        make(map[string]*cart.Store),
		snapshots:     snapshots,
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		paymentRepo:   paymentRepo,
		publisher:     publisher,
		kafkaBrokers:  kafkaBrokers,
		logger:        logrus.WithField("service", "cart"),
	}
}

type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items       []cart.LineItem `json:"items"`
	TotalItems  int             `json:"total_items"`
	TotalAmount float64         `json:"total_amount"`
}

type BillSummaryResponse struct {
	Subtotal     float64 `json:"subtotal"`
	EstimatedTax float64 `json:"estimated_tax"`
	TotalAmount  float64 `json:"total_amount"`
}

type CheckoutResponse struct {
	OrderID       string  `json:"order_id"`
	PaymentID     string  `json:"payment_id"`
	Subtotal      float64 `json:"subtotal"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
}

// storeFor returns the customer's cart store, creating and hydrating it on
// first access. Corrupt or incompatible snapshots fall back to an empty
// cart; session startup never fails because of the snapshot.
func (s *CartService) storeFor(ctx context.Context, userID string) *cart.Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	if store, ok := s.stores[userID]; ok {
		return store
	}

	uid := userID
	store := cart.NewStore(cart.PersisterFunc(func(ctx context.Context, state cart.State) error {
		return s.snapshots.Save(ctx, uid, state)
	}))
	store.Subscribe(func(state cart.State) {
		s.logger.WithFields(logrus.Fields{
			"user_id":      uid,
			"total_items":  state.TotalItems,
			"total_amount": state.TotalAmount,
		}).Debug("cart updated")
	})

	state, ok, err := s.snapshots.Load(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("cart snapshot restore failed, starting empty")
	} else if ok {
		store.Restore(state)
	}

	s.stores[userID] = store
	return store
}

func (s *CartService) GetCart(ctx context.Context, userID string) *CartResponse {
	return cartResponse(s.storeFor(ctx, userID).State())
}

// AddItem resolves the product from the catalog and adds it to the cart.
// Catalog lookup is the only failure mode; the cart mutation itself cannot
// fail.
func (s *CartService) AddItem(ctx context.Context, userID string, req *AddItemRequest) (*CartResponse, error) {
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, errors.New("product not found")
	}

	store := s.storeFor(ctx, userID)
	store.AddItem(ctx, toCartProduct(product), req.Quantity)

	return cartResponse(store.State()), nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) *CartResponse {
	store := s.storeFor(ctx, userID)
	store.UpdateQuantity(ctx, productID, quantity)
	return cartResponse(store.State())
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) *CartResponse {
	store := s.storeFor(ctx, userID)
	store.RemoveItem(ctx, productID)
	return cartResponse(store.State())
}

func (s *CartService) ClearCart(ctx context.Context, userID string) {
	s.storeFor(ctx, userID).ClearCart(ctx)
}

func (s *CartService) GetBillSummary(ctx context.Context, userID string) (*BillSummaryResponse, error) {
	state := s.storeFor(ctx, userID).State()
	if len(state.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	tax := state.TotalAmount * EstimatedTaxRate
	return &BillSummaryResponse{
		Subtotal:     state.TotalAmount,
		EstimatedTax: tax,
		TotalAmount:  state.TotalAmount + tax,
	}, nil
}

// Checkout persists the current cart as an order with line items, captures
// payment, and only on full success clears the cart. Any failure along the
// way leaves the cart exactly as it was so the customer can retry.
func (s *CartService) Checkout(ctx context.Context, userID string) (*CheckoutResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	store := s.storeFor(ctx, userID)
	state := store.State()
	if len(state.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	taxAmount := state.TotalAmount * EstimatedTaxRate
	totalAmount := state.TotalAmount + taxAmount

	order := &models.Order{
		UserID:        userUUID,
		Status:        "pending",
		PaymentStatus: "pending",
		Subtotal:      state.TotalAmount,
		TaxAmount:     taxAmount,
		TotalAmount:   totalAmount,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	orderItems := make([]models.OrderItem, 0, len(state.Items))
	for _, item := range state.Items {
		orderItems = append(orderItems, models.OrderItem{
			OrderID:     order.ID,
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.Product.Price,
			TotalPrice:  item.Subtotal,
		})
	}
	if err := s.orderItemRepo.CreateBatch(ctx, orderItems); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		OrderID:       order.ID,
		UserID:        userUUID,
		Amount:        totalAmount,
		Method:        "stripe",
		Status:        "success",
		TransactionID: uuid.New().String(),
		CreatedAt:     time.Now(),
		Metadata:      models.JSONB{},
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	order.Status = "completed"
	order.PaymentStatus = "paid"
	order.UpdatedAt = time.Now()
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	event := newOrderPlacedEvent(order, userID)
	if err := s.publisher.SendMessage("order_events", s.kafkaBrokers, order.ID.String(), event); err != nil {
		s.logger.WithError(err).Warn("failed to publish order event")
	}

	// All remote steps succeeded; only now does the cart empty out.
	store.ClearCart(ctx)

	return &CheckoutResponse{
		OrderID:       order.ID.String(),
		PaymentID:     payment.ID.String(),
		Subtotal:      order.Subtotal,
		TaxAmount:     order.TaxAmount,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: payment.Method,
		Status:        order.Status,
	}, nil
}

func cartResponse(state cart.State) *CartResponse {
	items := state.Items
	if items == nil {
		items = []cart.LineItem{}
	}
	return &CartResponse{
		Items:       items,
		TotalItems:  state.TotalItems,
		TotalAmount: state.TotalAmount,
	}
}

func toCartProduct(p *models.Product) cart.Product {
	return cart.Product{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Origin:        p.Origin,
		Price:         p.Price,
		Image:         p.Image,
		Description:   p.Description,
		CulturalNotes: p.CulturalNotes,
		Featured:      p.Featured,
	}
}
