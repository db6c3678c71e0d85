package dto

import (
	"time"

	"github.com/likeam/mernpos/internal/domain/order"
)

// OrderItemRequest is one cart line of a checkout request. Prices are
// never accepted from the client; they are resolved server-side.
type OrderItemRequest struct {
	Product  string `json:"product" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// OrderRequest is the checkout payload.
type OrderRequest struct {
	Items         []OrderItemRequest `json:"items" binding:"required"`
	Tax           float64            `json:"tax"`
	Discount      float64            `json:"discount"`
	CashReceived  *float64           `json:"cashReceived" binding:"required"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
}

// ToCheckoutInput converts the request to the domain checkout input.
func (r OrderRequest) ToCheckoutInput() order.CheckoutInput {
	items := make([]order.CartItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = order.CartItem{ProductID: it.Product, Quantity: it.Quantity}
	}
	var cash float64
	if r.CashReceived != nil {
		cash = *r.CashReceived
	}
	return order.CheckoutInput{
		Items:         items,
		Tax:           r.Tax,
		Discount:      r.Discount,
		CashReceived:  cash,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
	}
}

// OrderItemResponse is one immutable line of a persisted order.
type OrderItemResponse struct {
	ID              string  `json:"id"`
	Product         string  `json:"product"`
	ProductName     string  `json:"productName"`
	ProductNameUrdu string  `json:"productNameUrdu"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	Total           float64 `json:"total"`
}

// OrderResponse is the order view returned by the API.
type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      float64             `json:"subtotal"`
	Tax           float64             `json:"tax"`
	Discount      float64             `json:"discount"`
	Total         float64             `json:"total"`
	PaymentMethod string              `json:"paymentMethod"`
	CashReceived  float64             `json:"cashReceived"`
	Change        float64             `json:"change"`
	CustomerName  string              `json:"customerName,omitempty"`
	CustomerPhone string              `json:"customerPhone,omitempty"`
	OrderDate     time.Time           `json:"orderDate"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// OrderListResponse wraps an order listing with its count.
type OrderListResponse struct {
	Data  []OrderResponse `json:"data"`
	Count int             `json:"count"`
}

// TodayOrdersResponse is the daily summary: today's orders plus the sum
// of their totals.
type TodayOrdersResponse struct {
	Data       []OrderResponse `json:"data"`
	Count      int             `json:"count"`
	TotalSales float64         `json:"totalSales"`
}

// ToOrderResponse converts a domain order to its DTO.
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ID:              it.ID,
			Product:         it.ProductID,
			ProductName:     it.ProductName,
			ProductNameUrdu: it.ProductNameUrdu,
			Quantity:        it.Quantity,
			Price:           it.Price,
			Total:           it.Total,
		}
	}
	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		Items:         items,
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Discount:      o.Discount,
		Total:         o.Total,
		PaymentMethod: string(o.PaymentMethod),
		CashReceived:  o.CashReceived,
		Change:        o.Change,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		OrderDate:     o.OrderDate,
		CreatedAt:     o.CreatedAt,
	}
}

// ToOrderListResponse converts an order slice to the list DTO.
func ToOrderListResponse(orders []*order.Order) OrderListResponse {
	items := make([]OrderResponse, len(orders))
	for i, o := range orders {
		items[i] = ToOrderResponse(o)
	}
	return OrderListResponse{Data: items, Count: len(items)}
}

// ToTodayOrdersResponse converts today's orders to the summary DTO.
func ToTodayOrdersResponse(orders []*order.Order) TodayOrdersResponse {
	items := make([]OrderResponse, len(orders))
	var totalSales float64
	for i, o := range orders {
		items[i] = ToOrderResponse(o)
		totalSales += o.Total
	}
	return TodayOrdersResponse{Data: items, Count: len(items), TotalSales: totalSales}
}
