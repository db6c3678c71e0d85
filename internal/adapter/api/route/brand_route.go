package route

import (
	"github.com/gin-gonic/gin"
	"github.com/likeam/mernpos/internal/adapter/api/controller"
)

// SetupBrandRoutes wires the brand endpoints.
func SetupBrandRoutes(router *gin.RouterGroup, brandController *controller.BrandController) {
	brandRouter := router.Group("/brands")
	{
		brandRouter.POST("", brandController.Create)
		brandRouter.GET("", brandController.List)
		brandRouter.GET("/:id", brandController.Get)
		brandRouter.PUT("/:id", brandController.Update)
		brandRouter.DELETE("/:id", brandController.Delete)
	}
}
