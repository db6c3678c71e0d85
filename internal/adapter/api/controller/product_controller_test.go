package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/likeam/mernpos/internal/adapter/api/controller"
	"github.com/likeam/mernpos/internal/adapter/api/dto"
	"github.com/likeam/mernpos/internal/adapter/api/route"
	"github.com/likeam/mernpos/internal/domain/category"
	"github.com/likeam/mernpos/internal/domain/product"
)

func newProductServer() (*gin.Engine, *fakeProductRepo) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	subcategories := newFakeSubcategoryRepo()
	brands := newFakeBrandRepo()

	categories.items["c1"] = &category.Category{ID: "c1", Name: "Grocery", NameUrdu: "گروسری", IsActive: true}

	router := gin.New()
	api := router.Group("/api")
	route.SetupProductRoutes(api, controller.NewProductController(
		products, categories, subcategories, brands, nopLogger{}))
	return router, products
}

func TestCreateProduct(t *testing.T) {
	router, _ := newProductServer()

	w := doJSON(router, http.MethodPost, "/api/products", `{
		"name": "Sugar", "nameUrdu": "چینی", "barcode": "123456",
		"price": 120, "costPrice": 100, "stock": 50, "category": "c1"
	}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Sugar", resp.Name)
	assert.Equal(t, "piece", resp.Unit)
	assert.Equal(t, 50, resp.Stock)
	assert.True(t, resp.IsActive)
	require.NotNil(t, resp.Category)
	assert.Equal(t, "c1", resp.Category.ID)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	router, _ := newProductServer()

	w := doJSON(router, http.MethodPost, "/api/products", `{
		"name": "Sugar", "nameUrdu": "چینی", "price": 120, "stock": 50, "category": "missing"
	}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Category not found")
}

func TestCreateProductInvalidUnit(t *testing.T) {
	router, _ := newProductServer()

	w := doJSON(router, http.MethodPost, "/api/products", `{
		"name": "Sugar", "nameUrdu": "چینی", "price": 120, "stock": 50,
		"category": "c1", "unit": "dozen"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductByBarcode(t *testing.T) {
	router, products := newProductServer()
	products.items["p1"] = &product.Product{
		ID: "p1", Name: "Sugar", NameUrdu: "چینی", Barcode: "123456",
		Price: 120, Stock: 50, CategoryID: "c1", Unit: product.UnitPiece, IsActive: true,
	}

	w := doJSON(router, http.MethodGet, "/api/products/barcode/123456", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"p1"`)

	w = doJSON(router, http.MethodGet, "/api/products/barcode/000000", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProductStock(t *testing.T) {
	router, products := newProductServer()
	products.items["p1"] = &product.Product{
		ID: "p1", Name: "Sugar", NameUrdu: "چینی", Price: 120, Stock: 50,
		CategoryID: "c1", Unit: product.UnitPiece, IsActive: true,
	}

	w := doJSON(router, http.MethodPatch, "/api/products/p1/stock", `{"stock": 7}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Stock)
	assert.Equal(t, 7, products.items["p1"].Stock)

	// zero is a valid correction
	w = doJSON(router, http.MethodPatch, "/api/products/p1/stock", `{"stock": 0}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPatch, "/api/products/p1/stock", `{"stock": -5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPatch, "/api/products/missing/stock", `{"stock": 3}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletedProductStaysResolvableByID(t *testing.T) {
	router, products := newProductServer()
	products.items["p1"] = &product.Product{
		ID: "p1", Name: "Sugar", NameUrdu: "چینی", Price: 120, Stock: 50,
		CategoryID: "c1", Unit: product.UnitPiece, IsActive: true,
	}

	w := doJSON(router, http.MethodDelete, "/api/products/p1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/products/p1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsActive)

	// but it no longer shows in listings
	w = doJSON(router, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.ProductListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Count)
}

func TestListProductsByCategory(t *testing.T) {
	router, products := newProductServer()
	products.items["p1"] = &product.Product{
		ID: "p1", Name: "Sugar", NameUrdu: "چینی", Price: 120, Stock: 50,
		CategoryID: "c1", Unit: product.UnitPiece, IsActive: true,
	}
	products.items["p2"] = &product.Product{
		ID: "p2", Name: "Milk", NameUrdu: "دودھ", Price: 200, Stock: 20,
		CategoryID: "c2", Unit: product.UnitLiter, IsActive: true,
	}

	w := doJSON(router, http.MethodGet, "/api/products?category=c1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.ProductListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "p1", list.Data[0].ID)
}
