package order

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder           = errors.New("order must contain at least one item")
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")
	ErrNegativeTax          = errors.New("tax cannot be negative")
	ErrNegativeDiscount     = errors.New("discount cannot be negative")
	ErrInsufficientPayment  = errors.New("insufficient cash received")
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// ProductNotFoundError is returned when a cart line references a product
// id that does not exist (or is inactive, when the sell-inactive policy is
// disabled).
type ProductNotFoundError struct {
	ID string
}

func (e ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product not found: %s", e.ID)
}

// InsufficientStockError is returned when a cart line asks for more than
// the product has on hand. Available carries the quantity at the time the
// row was locked.
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s. Available: %d", e.ProductName, e.Available)
}

// PaymentMethod is a closed set of payment variants. Cash is the only one
// today; the type exists so card or wallet payments do not reshape the
// aggregate later.
type PaymentMethod string

const PaymentCash PaymentMethod = "cash"

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash
}

// CartItem is one requested line of a checkout: a product reference and a
// quantity. Prices are resolved server-side, never trusted from the client.
type CartItem struct {
	ProductID string
	Quantity  int
}

// CheckoutInput is everything the caller supplies to create an order.
type CheckoutInput struct {
	Items         []CartItem
	Tax           float64
	Discount      float64
	CashReceived  float64
	CustomerName  string
	CustomerPhone string
}

// Validate applies the fail-fast checks that need no storage access.
func (in CheckoutInput) Validate() error {
	if len(in.Items) == 0 {
		return ErrEmptyOrder
	}
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return fmt.Errorf("%w: product %s", ErrInvalidQuantity, it.ProductID)
		}
	}
	if in.Tax < 0 {
		return ErrNegativeTax
	}
	if in.Discount < 0 {
		return ErrNegativeDiscount
	}
	return nil
}

// Item is an immutable line of a persisted order. Name and price are
// snapshots taken at sale time and survive later catalog edits.
type Item struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"product"`
	ProductName     string  `json:"productName"`
	ProductNameUrdu string  `json:"productNameUrdu"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	Total           float64 `json:"total"`
}

// Order is the checkout aggregate. Once persisted it is never mutated;
// there is no update or delete path.
type Order struct {
	ID            string        `json:"id"`
	OrderNumber   string        `json:"orderNumber"`
	Items         []Item        `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CashReceived  float64       `json:"cashReceived"`
	Change        float64       `json:"change"`
	CustomerName  string        `json:"customerName,omitempty"`
	CustomerPhone string        `json:"customerPhone,omitempty"`
	OrderDate     time.Time     `json:"orderDate"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// NewOrder validates the input and builds an order draft with a generated
// order number. Items are added as the repository resolves them against
// live stock, then Finalize closes the arithmetic.
func NewOrder(in CheckoutInput) (*Order, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Order{
		ID:            uuid.New().String(),
		OrderNumber:   GenerateOrderNumber(),
		Tax:           round2(in.Tax),
		Discount:      round2(in.Discount),
		PaymentMethod: PaymentCash,
		CashReceived:  round2(in.CashReceived),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		OrderDate:     now,
		CreatedAt:     now,
	}, nil
}

// AddItem appends a resolved line snapshot. The line total is the unit
// price times the quantity, rounded to currency precision.
func (o *Order) AddItem(productID, name, nameUrdu string, price float64, quantity int) {
	o.Items = append(o.Items, Item{
		ID:              uuid.New().String(),
		ProductID:       productID,
		ProductName:     name,
		ProductNameUrdu: nameUrdu,
		Quantity:        quantity,
		Price:           price,
		Total:           round2(price * float64(quantity)),
	})
}

// Finalize computes subtotal, total and change from the resolved items and
// gates on payment sufficiency. It must succeed before any stock change is
// committed.
func (o *Order) Finalize() error {
	var subtotal float64
	for _, it := range o.Items {
		subtotal += it.Total
	}
	o.Subtotal = round2(subtotal)
	o.Total = round2(o.Subtotal + o.Tax - o.Discount)
	o.Change = round2(o.CashReceived - o.Total)
	if o.Change < 0 {
		return ErrInsufficientPayment
	}
	return nil
}

// GenerateOrderNumber builds a human-readable identifier: a fixed prefix,
// the current millisecond timestamp and a zero-padded 3-digit random
// suffix. Uniqueness is ultimately enforced by the database index.
func GenerateOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%03d", time.Now().UnixMilli(), rand.Intn(1000))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
