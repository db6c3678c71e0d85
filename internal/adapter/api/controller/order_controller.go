package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/likeam/mernpos/internal/adapter/api/dto"
	"github.com/likeam/mernpos/internal/adapter/repository"
	orderdomain "github.com/likeam/mernpos/internal/domain/order"
	"github.com/likeam/mernpos/pkg/billing"
	"github.com/likeam/mernpos/pkg/logger"
)

// OrderController handles checkout and order lookups.
type OrderController struct {
	orderRepo orderdomain.Repository
	logger    logger.Logger
}

// NewOrderController creates a new OrderController.
func NewOrderController(orderRepo orderdomain.Repository, logger logger.Logger) *OrderController {
	return &OrderController{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Create runs the checkout: validates the cart, decrements stock and
// persists the order, all-or-nothing
// @Summary Create order (checkout)
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.OrderRequest true "Checkout data"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	draft, err := orderdomain.NewOrder(req.ToCheckoutInput())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error creating order", err.Error()))
		return
	}

	if err := c.orderRepo.Create(ctx, draft, req.ToCheckoutInput().Items); err != nil {
		var notFound orderdomain.ProductNotFoundError
		var shortStock orderdomain.InsufficientStockError
		switch {
		case errors.As(err, &notFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, notFound.Error(), ""))
		case errors.As(err, &shortStock):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, shortStock.Error(), ""))
		case errors.Is(err, orderdomain.ErrInsufficientPayment):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Insufficient cash received", ""))
		case errors.Is(err, orderdomain.ErrDuplicateOrderNumber):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error creating order", err.Error()))
		default:
			c.logger.Error("failed to create order", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error creating order", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(draft))
}

// List returns orders, optionally within a date range
// @Summary List orders
// @Tags orders
// @Produce json
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end, inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.OrderListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	var from, to time.Time

	startDate := ctx.Query("startDate")
	endDate := ctx.Query("endDate")
	if startDate != "" && endDate != "" {
		start, err := parseDate(startDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid startDate", err.Error()))
			return
		}
		end, err := parseDate(endDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid endDate", err.Error()))
			return
		}
		from = start
		// the end date is inclusive: extend to the end of that day
		to = end.AddDate(0, 0, 1)
	}

	orders, err := c.orderRepo.List(ctx, from, to)
	if err != nil {
		c.logger.Error("failed to list orders", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error listing orders", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders))
}

// Today returns today's orders and the aggregate total sales
// @Summary Today's orders
// @Tags orders
// @Produce json
// @Success 200 {object} dto.TodayOrdersResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/today [get]
func (c *OrderController) Today(ctx *gin.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	orders, err := c.orderRepo.List(ctx, from, to)
	if err != nil {
		c.logger.Error("failed to list today's orders", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error listing orders", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTodayOrdersResponse(orders))
}

// Get returns an order by id
// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	order, err := c.orderRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Order not found", ""))
			return
		}
		c.logger.Error("failed to find order", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error finding order", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// GetByNumber returns an order by its order number (bill reprint)
// @Summary Get order by number
// @Tags orders
// @Produce json
// @Param orderNumber path string true "Order number"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/number/{orderNumber} [get]
func (c *OrderController) GetByNumber(ctx *gin.Context) {
	order, err := c.orderRepo.FindByNumber(ctx, ctx.Param("orderNumber"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Order not found", ""))
			return
		}
		c.logger.Error("failed to find order by number", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error finding order", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// PrintBill renders the printable Urdu receipt of an order
// @Summary Print bill
// @Tags orders
// @Produce html
// @Param id path string true "Order id"
// @Success 200 {string} string "Bill HTML"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id}/bill [get]
func (c *OrderController) PrintBill(ctx *gin.Context) {
	order, err := c.orderRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Order not found", ""))
			return
		}
		c.logger.Error("failed to find order", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error finding order", err.Error()))
		return
	}

	html, err := billing.Render(order)
	if err != nil {
		c.logger.Error("failed to render bill", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error rendering bill", err.Error()))
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// parseDate accepts plain dates and RFC3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
