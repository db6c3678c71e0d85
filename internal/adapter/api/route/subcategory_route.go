package route

import (
	"github.com/gin-gonic/gin"
	"github.com/likeam/mernpos/internal/adapter/api/controller"
)

// SetupSubcategoryRoutes wires the subcategory endpoints.
func SetupSubcategoryRoutes(router *gin.RouterGroup, subcategoryController *controller.SubcategoryController) {
	subcategoryRouter := router.Group("/subcategories")
	{
		subcategoryRouter.POST("", subcategoryController.Create)
		subcategoryRouter.GET("", subcategoryController.List)
		subcategoryRouter.GET("/category/:categoryId", subcategoryController.ListByCategory)
		subcategoryRouter.GET("/:id", subcategoryController.Get)
		subcategoryRouter.PUT("/:id", subcategoryController.Update)
		subcategoryRouter.DELETE("/:id", subcategoryController.Delete)
	}
}
