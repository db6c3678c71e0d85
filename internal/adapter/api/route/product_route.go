package route

import (
	"github.com/gin-gonic/gin"
	"github.com/likeam/mernpos/internal/adapter/api/controller"
)

// SetupProductRoutes wires the product endpoints.
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	productRouter := router.Group("/products")
	{
		productRouter.POST("", productController.Create)
		productRouter.GET("", productController.List)
		productRouter.GET("/barcode/:barcode", productController.GetByBarcode)
		productRouter.GET("/:id", productController.Get)
		productRouter.PUT("/:id", productController.Update)
		productRouter.PATCH("/:id/stock", productController.UpdateStock)
		productRouter.DELETE("/:id", productController.Delete)
	}
}
