package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/likeam/mernpos/internal/domain/order"
)

func sampleOrder() *order.Order {
	return &order.Order{
		ID:          "o-1",
		OrderNumber: "ORD-1700000000000-042",
		Items: []order.Item{
			{ID: "i-1", ProductID: "p-1", ProductName: "Sugar", ProductNameUrdu: "چینی", Quantity: 2, Price: 50, Total: 100},
			{ID: "i-2", ProductID: "p-2", ProductName: "Flour", Quantity: 1, Price: 100, Total: 100},
		},
		Subtotal:      200,
		Tax:           10,
		Discount:      5,
		Total:         205,
		PaymentMethod: order.PaymentCash,
		CashReceived:  250,
		Change:        45,
		CustomerName:  "Ali",
		CustomerPhone: "0300-1234567",
		OrderDate:     time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local),
	}
}

func TestRenderContainsOrderFields(t *testing.T) {
	html, err := Render(sampleOrder())
	require.NoError(t, err)

	assert.Contains(t, html, "ORD-1700000000000-042")
	assert.Contains(t, html, "15/03/2024, 14:30")
	assert.Contains(t, html, "Ali")
	assert.Contains(t, html, "0300-1234567")
	assert.Contains(t, html, "200.00")
	assert.Contains(t, html, "205.00")
	assert.Contains(t, html, "250.00")
	assert.Contains(t, html, "45.00")
}

func TestRenderPrefersUrduName(t *testing.T) {
	html, err := Render(sampleOrder())
	require.NoError(t, err)

	// first item has an Urdu name, second one falls back to English
	assert.Contains(t, html, "چینی")
	assert.NotContains(t, html, "Sugar")
	assert.Contains(t, html, "Flour")
}

func TestRenderOmitsZeroTaxAndDiscount(t *testing.T) {
	o := sampleOrder()
	o.Tax = 0
	o.Discount = 0
	o.Total = 200
	o.Change = 50

	html, err := Render(o)
	require.NoError(t, err)

	assert.NotContains(t, html, "ٹیکس")
	assert.NotContains(t, html, "ڈسکاؤنٹ")
}
