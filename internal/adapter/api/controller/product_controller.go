package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/likeam/mernpos/internal/adapter/api/dto"
	"github.com/likeam/mernpos/internal/adapter/repository"
	branddomain "github.com/likeam/mernpos/internal/domain/brand"
	categorydomain "github.com/likeam/mernpos/internal/domain/category"
	productdomain "github.com/likeam/mernpos/internal/domain/product"
	subcategorydomain "github.com/likeam/mernpos/internal/domain/subcategory"
	"github.com/likeam/mernpos/pkg/logger"
)

// ProductController handles product requests.
type ProductController struct {
	productRepo     productdomain.Repository
	categoryRepo    categorydomain.Repository
	subcategoryRepo subcategorydomain.Repository
	brandRepo       branddomain.Repository
	logger          logger.Logger
}

// NewProductController creates a new ProductController.
func NewProductController(
	productRepo productdomain.Repository,
	categoryRepo categorydomain.Repository,
	subcategoryRepo subcategorydomain.Repository,
	brandRepo branddomain.Repository,
	logger logger.Logger,
) *ProductController {
	return &ProductController{
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		brandRepo:       brandRepo,
		logger:          logger,
	}
}

// checkReferences verifies the referenced category/subcategory/brand rows
// exist, mirroring the reference checks the catalog always made.
func (c *ProductController) checkReferences(ctx *gin.Context, categoryID, subcategoryID, brandID string) bool {
	exists, err := c.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		c.logger.Error("failed to check category", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error checking category", err.Error()))
		return false
	}
	if !exists {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Category not found", ""))
		return false
	}

	if subcategoryID != "" {
		exists, err := c.subcategoryRepo.Exists(ctx, subcategoryID)
		if err != nil {
			c.logger.Error("failed to check subcategory", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error checking subcategory", err.Error()))
			return false
		}
		if !exists {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Subcategory not found", ""))
			return false
		}
	}

	if brandID != "" {
		exists, err := c.brandRepo.Exists(ctx, brandID)
		if err != nil {
			c.logger.Error("failed to check brand", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error checking brand", err.Error()))
			return false
		}
		if !exists {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Brand not found", ""))
			return false
		}
	}

	return true
}

// Create creates a new product
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Product data"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	if !c.checkReferences(ctx, req.Category, req.Subcategory, req.Brand) {
		return
	}

	product, err := productdomain.NewProduct(
		req.Name, req.NameUrdu, req.Barcode, req.Price, req.CostPrice, req.Stock,
		req.Category, req.Subcategory, req.Brand, productdomain.Unit(req.Unit))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error creating product", err.Error()))
		return
	}

	if err := c.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateKey) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error creating product", err.Error()))
			return
		}
		c.logger.Error("failed to save product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error saving product", err.Error()))
		return
	}

	created, err := c.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		created = product
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(created))
}

// List returns active products, optionally filtered
// @Summary List products
// @Tags products
// @Produce json
// @Param category query string false "Category id"
// @Param subcategory query string false "Subcategory id"
// @Param brand query string false "Brand id"
// @Param search query string false "Search over name, urdu name and barcode"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	filter := productdomain.Filter{
		CategoryID:    ctx.Query("category"),
		SubcategoryID: ctx.Query("subcategory"),
		BrandID:       ctx.Query("brand"),
		Search:        ctx.Query("search"),
	}

	products, err := c.productRepo.List(ctx, filter)
	if err != nil {
		c.logger.Error("failed to list products", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error listing products", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// Get returns a product by id
// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	product, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Product not found", ""))
			return
		}
		c.logger.Error("failed to find product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error finding product", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// GetByBarcode returns an active product by barcode
// @Summary Get product by barcode
// @Tags products
// @Produce json
// @Param barcode path string true "Barcode"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/barcode/{barcode} [get]
func (c *ProductController) GetByBarcode(ctx *gin.Context) {
	product, err := c.productRepo.FindByBarcode(ctx, ctx.Param("barcode"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Product not found", ""))
			return
		}
		c.logger.Error("failed to find product by barcode", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error finding product", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// Update updates a product
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product id"
// @Param product body dto.ProductRequest true "Product data"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	if !c.checkReferences(ctx, req.Category, req.Subcategory, req.Brand) {
		return
	}

	product, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Product not found", ""))
			return
		}
		c.logger.Error("failed to find product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error finding product", err.Error()))
		return
	}

	if err := product.Update(
		req.Name, req.NameUrdu, req.Barcode, req.Price, req.CostPrice, req.Stock,
		req.Category, req.Subcategory, req.Brand, productdomain.Unit(req.Unit), req.Active()); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error updating product", err.Error()))
		return
	}

	if err := c.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateKey) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error updating product", err.Error()))
			return
		}
		c.logger.Error("failed to update product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error updating product", err.Error()))
		return
	}

	updated, err := c.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		updated = product
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(updated))
}

// Delete soft-deletes a product
// @Summary Delete product
// @Tags products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.productRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Product not found", ""))
			return
		}
		c.logger.Error("failed to delete product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error deleting product", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Product deleted successfully"))
}

// UpdateStock sets the absolute stock quantity of a product
// @Summary Update product stock
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product id"
// @Param stock body dto.StockRequest true "New stock quantity"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/stock [patch]
func (c *ProductController) UpdateStock(ctx *gin.Context) {
	var req dto.StockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}
	if *req.Stock < 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error updating stock", productdomain.ErrInvalidStock.Error()))
		return
	}

	product, err := c.productRepo.UpdateStock(ctx, ctx.Param("id"), *req.Stock)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Product not found", ""))
			return
		}
		c.logger.Error("failed to update stock", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error updating stock", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(product))
}
