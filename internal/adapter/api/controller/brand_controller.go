package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/likeam/mernpos/internal/adapter/api/dto"
	"github.com/likeam/mernpos/internal/adapter/repository"
	branddomain "github.com/likeam/mernpos/internal/domain/brand"
	"github.com/likeam/mernpos/pkg/logger"
)

// BrandController handles brand requests.
type BrandController struct {
	brandRepo branddomain.Repository
	logger    logger.Logger
}

// NewBrandController creates a new BrandController.
func NewBrandController(brandRepo branddomain.Repository, logger logger.Logger) *BrandController {
	return &BrandController{
		brandRepo: brandRepo,
		logger:    logger,
	}
}

// Create creates a new brand
// @Summary Create brand
// @Tags brands
// @Accept json
// @Produce json
// @Param brand body dto.BrandRequest true "Brand data"
// @Success 201 {object} dto.BrandResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands [post]
func (c *BrandController) Create(ctx *gin.Context) {
	var req dto.BrandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	brand, err := branddomain.NewBrand(req.Name, req.NameUrdu, req.Description)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error creating brand", err.Error()))
		return
	}

	if err := c.brandRepo.Create(ctx, brand); err != nil {
		c.logger.Error("failed to save brand", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error saving brand", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBrandResponse(brand))
}

// List returns all active brands
// @Summary List brands
// @Tags brands
// @Produce json
// @Success 200 {object} dto.BrandListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands [get]
func (c *BrandController) List(ctx *gin.Context) {
	brands, err := c.brandRepo.List(ctx)
	if err != nil {
		c.logger.Error("failed to list brands", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error listing brands", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandListResponse(brands))
}

// Get returns a brand by id
// @Summary Get brand
// @Tags brands
// @Produce json
// @Param id path string true "Brand id"
// @Success 200 {object} dto.BrandResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands/{id} [get]
func (c *BrandController) Get(ctx *gin.Context) {
	brand, err := c.brandRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Brand not found", ""))
			return
		}
		c.logger.Error("failed to find brand", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error finding brand", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandResponse(brand))
}

// Update updates a brand
// @Summary Update brand
// @Tags brands
// @Accept json
// @Produce json
// @Param id path string true "Brand id"
// @Param brand body dto.BrandRequest true "Brand data"
// @Success 200 {object} dto.BrandResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands/{id} [put]
func (c *BrandController) Update(ctx *gin.Context) {
	var req dto.BrandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	brand, err := c.brandRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Brand not found", ""))
			return
		}
		c.logger.Error("failed to find brand", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error finding brand", err.Error()))
		return
	}

	if err := brand.Update(req.Name, req.NameUrdu, req.Description, req.Active()); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error updating brand", err.Error()))
		return
	}

	if err := c.brandRepo.Update(ctx, brand); err != nil {
		c.logger.Error("failed to update brand", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error updating brand", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandResponse(brand))
}

// Delete soft-deletes a brand
// @Summary Delete brand
// @Tags brands
// @Produce json
// @Param id path string true "Brand id"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands/{id} [delete]
func (c *BrandController) Delete(ctx *gin.Context) {
	if err := c.brandRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Brand not found", ""))
			return
		}
		c.logger.Error("failed to delete brand", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error deleting brand", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Brand deleted successfully"))
}
