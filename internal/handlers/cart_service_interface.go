package handlers

import (
	"context"

	"adey-market-backend/internal/services"
)

// CartServiceInterface defines the cart operations the handler depends on
type CartServiceInterface interface {
	GetCart(ctx context.Context, userID string) *services.CartResponse
	AddItem(ctx context.Context, userID string, req *services.AddItemRequest) (*services.CartResponse, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) *services.CartResponse
	RemoveItem(ctx context.Context, userID, productID string) *services.CartResponse
	ClearCart(ctx context.Context, userID string)
	GetBillSummary(ctx context.Context, userID string) (*services.BillSummaryResponse, error)
	Checkout(ctx context.Context, userID string) (*services.CheckoutResponse, error)
}
