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
)

func newSubcategoryServer() (*gin.Engine, *fakeSubcategoryRepo) {
	subcategories := newFakeSubcategoryRepo()
	categories := newFakeCategoryRepo()
	categories.items["c1"] = &category.Category{ID: "c1", Name: "Grocery", NameUrdu: "گروسری", IsActive: true}

	router := gin.New()
	api := router.Group("/api")
	route.SetupSubcategoryRoutes(api, controller.NewSubcategoryController(subcategories, categories, nopLogger{}))
	return router, subcategories
}

func TestCreateSubcategory(t *testing.T) {
	router, _ := newSubcategoryServer()

	w := doJSON(router, http.MethodPost, "/api/subcategories",
		`{"name": "Spices", "nameUrdu": "مصالحے", "category": "c1"}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.SubcategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Spices", resp.Name)
	assert.True(t, resp.IsActive)
}

func TestCreateSubcategoryUnknownCategory(t *testing.T) {
	router, _ := newSubcategoryServer()

	w := doJSON(router, http.MethodPost, "/api/subcategories",
		`{"name": "Spices", "nameUrdu": "مصالحے", "category": "missing"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Category not found")
}

func TestListSubcategoriesByCategory(t *testing.T) {
	router, _ := newSubcategoryServer()

	w := doJSON(router, http.MethodPost, "/api/subcategories",
		`{"name": "Spices", "nameUrdu": "مصالحے", "category": "c1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/api/subcategories/category/c1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.SubcategoryListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "Spices", list.Data[0].Name)

	w = doJSON(router, http.MethodGet, "/api/subcategories/category/other", "")
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Count)
}
