package main

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/likeam/mernpos/docs"
	"github.com/likeam/mernpos/internal/adapter/api/controller"
	"github.com/likeam/mernpos/internal/adapter/api/route"
	"github.com/likeam/mernpos/internal/adapter/repository"
	"github.com/likeam/mernpos/internal/infrastructure/database"
	"github.com/likeam/mernpos/pkg/logger"
)

// App holds the application and its dependencies.
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp wires the database, repositories, controllers and routes.
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	categoryRepo := repository.NewCategoryRepository(db)
	subcategoryRepo := repository.NewSubcategoryRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db, sellInactiveFromEnv())

	categoryController := controller.NewCategoryController(categoryRepo, log)
	subcategoryController := controller.NewSubcategoryController(subcategoryRepo, categoryRepo, log)
	brandController := controller.NewBrandController(brandRepo, log)
	productController := controller.NewProductController(productRepo, categoryRepo, subcategoryRepo, brandRepo, log)
	orderController := controller.NewOrderController(orderRepo, log)

	router := gin.Default()
	router.Use(cors.Default())

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.SetupCategoryRoutes(api, categoryController)
	route.SetupSubcategoryRoutes(api, subcategoryController)
	route.SetupBrandRoutes(api, brandController)
	route.SetupProductRoutes(api, productController)
	route.SetupOrderRoutes(api, orderController)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Run starts the HTTP server on PORT (default 5000).
func (a *App) Run() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	a.logger.Info("starting server", "port", port)
	return a.router.Run(":" + port)
}

// Close releases the application resources.
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// sellInactiveFromEnv reads POS_SELL_INACTIVE. Inactive products stay
// purchasable unless the flag is explicitly set to false.
func sellInactiveFromEnv() bool {
	v := os.Getenv("POS_SELL_INACTIVE")
	if v == "" {
		return true
	}
	sell, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return sell
}
