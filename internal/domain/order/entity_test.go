package order

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutInputValidate(t *testing.T) {
	valid := CheckoutInput{
		Items:        []CartItem{{ProductID: "p1", Quantity: 1}},
		CashReceived: 100,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		input CheckoutInput
		want  error
	}{
		{
			name:  "empty cart",
			input: CheckoutInput{CashReceived: 100},
			want:  ErrEmptyOrder,
		},
		{
			name: "zero quantity",
			input: CheckoutInput{
				Items:        []CartItem{{ProductID: "p1", Quantity: 0}},
				CashReceived: 100,
			},
			want: ErrInvalidQuantity,
		},
		{
			name: "negative quantity",
			input: CheckoutInput{
				Items:        []CartItem{{ProductID: "p1", Quantity: -2}},
				CashReceived: 100,
			},
			want: ErrInvalidQuantity,
		},
		{
			name: "negative tax",
			input: CheckoutInput{
				Items:        []CartItem{{ProductID: "p1", Quantity: 1}},
				Tax:          -1,
				CashReceived: 100,
			},
			want: ErrNegativeTax,
		},
		{
			name: "negative discount",
			input: CheckoutInput{
				Items:        []CartItem{{ProductID: "p1", Quantity: 1}},
				Discount:     -5,
				CashReceived: 100,
			},
			want: ErrNegativeDiscount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.input.Validate(), tt.want)
		})
	}
}

func TestNewOrderRejectsInvalidInput(t *testing.T) {
	_, err := NewOrder(CheckoutInput{})
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestFinalizeArithmetic(t *testing.T) {
	o, err := NewOrder(CheckoutInput{
		Items:        []CartItem{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}},
		Tax:          20,
		Discount:     20,
		CashReceived: 250,
	})
	require.NoError(t, err)

	o.AddItem("p1", "Sugar", "چینی", 50, 2)
	o.AddItem("p2", "Flour", "آٹا", 100, 1)

	require.NoError(t, o.Finalize())

	assert.Equal(t, 200.0, o.Subtotal)
	assert.Equal(t, 200.0, o.Total)
	assert.Equal(t, 50.0, o.Change)
	assert.Equal(t, 100.0, o.Items[0].Total)
	assert.Equal(t, 100.0, o.Items[1].Total)
}

func TestFinalizeExactPayment(t *testing.T) {
	o, err := NewOrder(CheckoutInput{
		Items:        []CartItem{{ProductID: "p1", Quantity: 1}},
		CashReceived: 75.5,
	})
	require.NoError(t, err)

	o.AddItem("p1", "Tea", "چائے", 75.5, 1)

	require.NoError(t, o.Finalize())
	assert.Equal(t, 75.5, o.Total)
	assert.Equal(t, 0.0, o.Change)
}

func TestFinalizeInsufficientPayment(t *testing.T) {
	o, err := NewOrder(CheckoutInput{
		Items:        []CartItem{{ProductID: "p1", Quantity: 1}},
		CashReceived: 150,
	})
	require.NoError(t, err)

	o.AddItem("p1", "Rice", "چاول", 200, 1)

	assert.ErrorIs(t, o.Finalize(), ErrInsufficientPayment)
}

func TestLineTotalRounding(t *testing.T) {
	o, err := NewOrder(CheckoutInput{
		Items:        []CartItem{{ProductID: "p1", Quantity: 3}},
		CashReceived: 1,
	})
	require.NoError(t, err)

	o.AddItem("p1", "Candy", "", 0.1, 3)

	require.NoError(t, o.Finalize())
	assert.Equal(t, 0.3, o.Items[0].Total)
	assert.Equal(t, 0.3, o.Subtotal)
	assert.Equal(t, 0.7, o.Change)
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d+-\d{3}$`)
	for i := 0; i < 50; i++ {
		n := GenerateOrderNumber()
		assert.Regexp(t, pattern, n)
	}
}

func TestNewOrderDefaults(t *testing.T) {
	o, err := NewOrder(CheckoutInput{
		Items:         []CartItem{{ProductID: "p1", Quantity: 1}},
		CashReceived:  10,
		CustomerName:  "Ali",
		CustomerPhone: "0300-1234567",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, PaymentCash, o.PaymentMethod)
	assert.Equal(t, "Ali", o.CustomerName)
	assert.Equal(t, "0300-1234567", o.CustomerPhone)
	assert.False(t, o.OrderDate.IsZero())
	assert.False(t, o.CreatedAt.IsZero())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Product not found: abc", ProductNotFoundError{ID: "abc"}.Error())
	assert.Equal(t, "Insufficient stock for Sugar. Available: 1",
		InsufficientStockError{ProductName: "Sugar", Available: 1}.Error())
}
