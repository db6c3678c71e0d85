package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/likeam/mernpos/internal/adapter/api/dto"
	"github.com/likeam/mernpos/internal/adapter/repository"
	categorydomain "github.com/likeam/mernpos/internal/domain/category"
	"github.com/likeam/mernpos/pkg/logger"
)

// CategoryController handles category requests.
type CategoryController struct {
	categoryRepo categorydomain.Repository
	logger       logger.Logger
}

// NewCategoryController creates a new CategoryController.
func NewCategoryController(categoryRepo categorydomain.Repository, logger logger.Logger) *CategoryController {
	return &CategoryController{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create creates a new category
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CategoryRequest true "Category data"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	category, err := categorydomain.NewCategory(req.Name, req.NameUrdu, req.Description)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error creating category", err.Error()))
		return
	}

	if err := c.categoryRepo.Create(ctx, category); err != nil {
		c.logger.Error("failed to save category", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error saving category", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// List returns all active categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		c.logger.Error("failed to list categories", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error listing categories", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}

// Get returns a category by id
// @Summary Get category
// @Tags categories
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	category, err := c.categoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Category not found", ""))
			return
		}
		c.logger.Error("failed to find category", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error finding category", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// Update updates a category
// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category id"
// @Param category body dto.CategoryRequest true "Category data"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	category, err := c.categoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Category not found", ""))
			return
		}
		c.logger.Error("failed to find category", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error finding category", err.Error()))
		return
	}

	if err := category.Update(req.Name, req.NameUrdu, req.Description, req.Active()); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error updating category", err.Error()))
		return
	}

	if err := c.categoryRepo.Update(ctx, category); err != nil {
		c.logger.Error("failed to update category", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error updating category", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// Delete soft-deletes a category
// @Summary Delete category
// @Tags categories
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	if err := c.categoryRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Category not found", ""))
			return
		}
		c.logger.Error("failed to delete category", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error deleting category", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Category deleted successfully"))
}
