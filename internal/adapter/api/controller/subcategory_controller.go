package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/likeam/mernpos/internal/adapter/api/dto"
	"github.com/likeam/mernpos/internal/adapter/repository"
	categorydomain "github.com/likeam/mernpos/internal/domain/category"
	subcategorydomain "github.com/likeam/mernpos/internal/domain/subcategory"
	"github.com/likeam/mernpos/pkg/logger"
)

// SubcategoryController handles subcategory requests.
type SubcategoryController struct {
	subcategoryRepo subcategorydomain.Repository
	categoryRepo    categorydomain.Repository
	logger          logger.Logger
}

// NewSubcategoryController creates a new SubcategoryController.
func NewSubcategoryController(subcategoryRepo subcategorydomain.Repository, categoryRepo categorydomain.Repository, logger logger.Logger) *SubcategoryController {
	return &SubcategoryController{
		subcategoryRepo: subcategoryRepo,
		categoryRepo:    categoryRepo,
		logger:          logger,
	}
}

// Create creates a new subcategory
// @Summary Create subcategory
// @Tags subcategories
// @Accept json
// @Produce json
// @Param subcategory body dto.SubcategoryRequest true "Subcategory data"
// @Success 201 {object} dto.SubcategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /subcategories [post]
func (c *SubcategoryController) Create(ctx *gin.Context) {
	var req dto.SubcategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	exists, err := c.categoryRepo.Exists(ctx, req.Category)
	if err != nil {
		c.logger.Error("failed to check category", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error checking category", err.Error()))
		return
	}
	if !exists {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Category not found", ""))
		return
	}

	subcategory, err := subcategorydomain.NewSubcategory(req.Name, req.NameUrdu, req.Category)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error creating subcategory", err.Error()))
		return
	}

	if err := c.subcategoryRepo.Create(ctx, subcategory); err != nil {
		c.logger.Error("failed to save subcategory", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error saving subcategory", err.Error()))
		return
	}

	created, err := c.subcategoryRepo.FindByID(ctx, subcategory.ID)
	if err != nil {
		// fall back to the unpopulated view
		created = subcategory
	}

	ctx.JSON(http.StatusCreated, dto.ToSubcategoryResponse(created))
}

// List returns all active subcategories
// @Summary List subcategories
// @Tags subcategories
// @Produce json
// @Success 200 {object} dto.SubcategoryListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /subcategories [get]
func (c *SubcategoryController) List(ctx *gin.Context) {
	subcategories, err := c.subcategoryRepo.List(ctx)
	if err != nil {
		c.logger.Error("failed to list subcategories", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error listing subcategories", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubcategoryListResponse(subcategories))
}

// ListByCategory returns the active subcategories of a category
// @Summary List subcategories by category
// @Tags subcategories
// @Produce json
// @Param categoryId path string true "Category id"
// @Success 200 {object} dto.SubcategoryListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /subcategories/category/{categoryId} [get]
func (c *SubcategoryController) ListByCategory(ctx *gin.Context) {
	subcategories, err := c.subcategoryRepo.ListByCategory(ctx, ctx.Param("categoryId"))
	if err != nil {
		c.logger.Error("failed to list subcategories by category", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error listing subcategories", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubcategoryListResponse(subcategories))
}

// Get returns a subcategory by id
// @Summary Get subcategory
// @Tags subcategories
// @Produce json
// @Param id path string true "Subcategory id"
// @Success 200 {object} dto.SubcategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /subcategories/{id} [get]
func (c *SubcategoryController) Get(ctx *gin.Context) {
	subcategory, err := c.subcategoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSubcategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Subcategory not found", ""))
			return
		}
		c.logger.Error("failed to find subcategory", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error finding subcategory", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubcategoryResponse(subcategory))
}

// Update updates a subcategory
// @Summary Update subcategory
// @Tags subcategories
// @Accept json
// @Produce json
// @Param id path string true "Subcategory id"
// @Param subcategory body dto.SubcategoryRequest true "Subcategory data"
// @Success 200 {object} dto.SubcategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /subcategories/{id} [put]
func (c *SubcategoryController) Update(ctx *gin.Context) {
	var req dto.SubcategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	exists, err := c.categoryRepo.Exists(ctx, req.Category)
	if err != nil {
		c.logger.Error("failed to check category", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error checking category", err.Error()))
		return
	}
	if !exists {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Category not found", ""))
		return
	}

	subcategory, err := c.subcategoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSubcategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Subcategory not found", ""))
			return
		}
		c.logger.Error("failed to find subcategory", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error finding subcategory", err.Error()))
		return
	}

	if err := subcategory.Update(req.Name, req.NameUrdu, req.Category, req.Active()); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error updating subcategory", err.Error()))
		return
	}

	if err := c.subcategoryRepo.Update(ctx, subcategory); err != nil {
		c.logger.Error("failed to update subcategory", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error updating subcategory", err.Error()))
		return
	}

	updated, err := c.subcategoryRepo.FindByID(ctx, subcategory.ID)
	if err != nil {
		updated = subcategory
	}

	ctx.JSON(http.StatusOK, dto.ToSubcategoryResponse(updated))
}

// Delete soft-deletes a subcategory
// @Summary Delete subcategory
// @Tags subcategories
// @Produce json
// @Param id path string true "Subcategory id"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /subcategories/{id} [delete]
func (c *SubcategoryController) Delete(ctx *gin.Context) {
	if err := c.subcategoryRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrSubcategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Subcategory not found", ""))
			return
		}
		c.logger.Error("failed to delete subcategory", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error deleting subcategory", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Subcategory deleted successfully"))
}
