package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/likeam/mernpos/internal/adapter/api/controller"
	"github.com/likeam/mernpos/internal/adapter/api/dto"
	"github.com/likeam/mernpos/internal/adapter/api/route"
)

func newCategoryServer() (*gin.Engine, *fakeCategoryRepo) {
	repo := newFakeCategoryRepo()
	router := gin.New()
	api := router.Group("/api")
	route.SetupCategoryRoutes(api, controller.NewCategoryController(repo, nopLogger{}))
	return router, repo
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCategory(t *testing.T) {
	router, _ := newCategoryServer()

	w := doJSON(router, http.MethodPost, "/api/categories",
		`{"name": "Grocery", "nameUrdu": "گروسری", "description": "daily items"}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Grocery", resp.Name)
	assert.Equal(t, "گروسری", resp.NameUrdu)
	assert.True(t, resp.IsActive)
}

func TestCreateCategoryValidation(t *testing.T) {
	router, _ := newCategoryServer()

	w := doJSON(router, http.MethodPost, "/api/categories", `{"name": "Grocery"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/categories", `{"nameUrdu": "گروسری"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCategoriesExcludesDeleted(t *testing.T) {
	router, repo := newCategoryServer()

	w := doJSON(router, http.MethodPost, "/api/categories", `{"name": "Grocery", "nameUrdu": "گروسری"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(router, http.MethodPost, "/api/categories", `{"name": "Dairy", "nameUrdu": "ڈیری"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var deletedID string
	for id, c := range repo.items {
		if c.Name == "Dairy" {
			deletedID = id
		}
	}
	w = doJSON(router, http.MethodDelete, "/api/categories/"+deletedID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CategoryListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Grocery", resp.Data[0].Name)
}

func TestDeletedCategoryStaysResolvableByID(t *testing.T) {
	router, repo := newCategoryServer()

	w := doJSON(router, http.MethodPost, "/api/categories", `{"name": "Grocery", "nameUrdu": "گروسری"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var id string
	for k := range repo.items {
		id = k
	}

	w = doJSON(router, http.MethodDelete, "/api/categories/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Category deleted successfully")

	w = doJSON(router, http.MethodGet, "/api/categories/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsActive)
}

func TestUpdateCategory(t *testing.T) {
	router, repo := newCategoryServer()

	w := doJSON(router, http.MethodPost, "/api/categories", `{"name": "Grocery", "nameUrdu": "گروسری"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var id string
	for k := range repo.items {
		id = k
	}

	w = doJSON(router, http.MethodPut, "/api/categories/"+id,
		`{"name": "Groceries", "nameUrdu": "گروسری", "isActive": false}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Groceries", resp.Name)
	assert.False(t, resp.IsActive)
}

func TestCategoryNotFound(t *testing.T) {
	router, _ := newCategoryServer()

	w := doJSON(router, http.MethodGet, "/api/categories/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPut, "/api/categories/missing", `{"name": "X", "nameUrdu": "ی"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/categories/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
