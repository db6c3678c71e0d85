package order

import (
	"context"
	"time"
)

// Repository defines the persistence operations for orders. Orders are
// append-only: there is no update or delete.
type Repository interface {
	// Create runs the checkout transaction: it resolves every cart line
	// against live stock, fills the draft's item snapshots, decrements
	// stock and persists the order. All of it succeeds or none of it does.
	// Returns ProductNotFoundError, InsufficientStockError,
	// ErrInsufficientPayment or ErrDuplicateOrderNumber on business
	// failures.
	Create(ctx context.Context, draft *Order, cart []CartItem) error

	// FindByID returns an order by its internal id
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindByNumber returns an order by its order number (bill reprint)
	FindByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// List returns the orders with orderDate in [from, to), newest first.
	// Zero times leave the corresponding bound open.
	List(ctx context.Context, from, to time.Time) ([]*Order, error)
}
