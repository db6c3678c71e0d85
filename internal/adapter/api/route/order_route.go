package route

import (
	"github.com/gin-gonic/gin"
	"github.com/likeam/mernpos/internal/adapter/api/controller"
)

// SetupOrderRoutes wires the checkout and order lookup endpoints.
func SetupOrderRoutes(router *gin.RouterGroup, orderController *controller.OrderController) {
	orderRouter := router.Group("/orders")
	{
		orderRouter.POST("", orderController.Create)
		orderRouter.GET("", orderController.List)
		orderRouter.GET("/today", orderController.Today)
		orderRouter.GET("/number/:orderNumber", orderController.GetByNumber)
		orderRouter.GET("/:id", orderController.Get)
		orderRouter.GET("/:id/bill", orderController.PrintBill)
	}
}
