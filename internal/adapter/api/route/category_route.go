package route

import (
	"github.com/gin-gonic/gin"
	"github.com/likeam/mernpos/internal/adapter/api/controller"
)

// SetupCategoryRoutes wires the category endpoints.
func SetupCategoryRoutes(router *gin.RouterGroup, categoryController *controller.CategoryController) {
	categoryRouter := router.Group("/categories")
	{
		categoryRouter.POST("", categoryController.Create)
		categoryRouter.GET("", categoryController.List)
		categoryRouter.GET("/:id", categoryController.Get)
		categoryRouter.PUT("/:id", categoryController.Update)
		categoryRouter.DELETE("/:id", categoryController.Delete)
	}
}
