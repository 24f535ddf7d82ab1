package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/memory"
	"github.com/Muneeb10/AK-Fashion/internal/usecase"
)

func newCatalogRouter(t *testing.T) (chi.Router, *usecase.CatalogUseCase) {
	t.Helper()

	log := logger.NewNop()
	catalog := usecase.NewCatalogUseCase(
		memory.NewProductRepositoryMemory(),
		memory.NewCategoryRepositoryMemory(),
		nullFileStore{},
		log,
	)

	router := chi.NewRouter()
	NewProductHandler(catalog, log).RegisterRoutes(router)
	NewCategoryHandler(catalog, log).RegisterRoutes(router)

	return router, catalog
}

func TestProductHandler_CreateAndFilter(t *testing.T) {
	router, catalog := newCatalogRouter(t)

	women, err := catalog.CreateCategory(context.Background(), "Women")
	assert.NoError(t, err)
	men, err := catalog.CreateCategory(context.Background(), "Men")
	assert.NoError(t, err)

	create := func(name, categoryID, price, colors string) {
		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		assert.NoError(t, mw.WriteField("name", name))
		assert.NoError(t, mw.WriteField("category", categoryID))
		assert.NoError(t, mw.WriteField("currentPrice", price))
		assert.NoError(t, mw.WriteField("stock", "10"))
		assert.NoError(t, mw.WriteField("colors", colors))
		assert.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/products/", body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	create("Embroidered Kurta", women.ID, "2500", `["Red","Blue"]`)
	create("Plain Shalwar", men.ID, "1200", "White, Black")

	list := func(query string) []map[string]interface{} {
		req := httptest.NewRequest(http.MethodGet, "/products/?"+query, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var out []map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		return out
	}

	assert.Len(t, list(""), 2)
	assert.Len(t, list("category=women"), 1)
	assert.Len(t, list("color=red"), 1)
	assert.Len(t, list("minPrice=2000"), 1)
	assert.Len(t, list("name=kurta&color=blue"), 1)
	assert.Len(t, list("name=kurta&color=white"), 0)

	got := list("categoryId=" + url.QueryEscape(men.ID))
	assert.Len(t, got, 1)
	assert.Equal(t, "Plain Shalwar", got[0]["name"])
	// The comma-separated colors field parses into a list.
	assert.Equal(t, []interface{}{"White", "Black"}, got[0]["colors"])
}

func TestProductHandler_List_BadQueryParam(t *testing.T) {
	router, _ := newCatalogRouter(t)

	for _, query := range []string{"minStock=abc", "maxPrice=expensive", "from=yesterday"} {
		req := httptest.NewRequest(http.MethodGet, "/products/?"+query, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q", query)
		assert.Contains(t, rec.Body.String(), "invalid query parameter")
	}
}

func TestProductHandler_Create_InvalidCategory(t *testing.T) {
	router, _ := newCatalogRouter(t)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	assert.NoError(t, mw.WriteField("name", "Kurta"))
	assert.NoError(t, mw.WriteField("category", "nope"))
	assert.NoError(t, mw.WriteField("currentPrice", "100"))
	assert.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/products/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid category")
}

func TestProductHandler_Delete(t *testing.T) {
	router, catalog := newCatalogRouter(t)
	ctx := context.Background()

	category, err := catalog.CreateCategory(ctx, "Women")
	assert.NoError(t, err)
	product, err := catalog.CreateProduct(ctx, usecase.CreateProductInput{
		Name:         "Kurta",
		CategoryID:   category.ID,
		CurrentPrice: 2500,
	})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/products/"+product.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), product.ID)

	req = httptest.NewRequest(http.MethodDelete, "/products/"+product.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryHandler_CRUD(t *testing.T) {
	router, _ := newCatalogRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/categories/", bytes.NewReader([]byte(`{"name":"Women"}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id, _ := created["id"].(string)
	assert.NotEmpty(t, id)

	req = httptest.NewRequest(http.MethodGet, "/categories/", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var categories []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Len(t, categories, 1)
	assert.Equal(t, "Women", categories[0]["name"])

	req = httptest.NewRequest(http.MethodPost, "/categories/", bytes.NewReader([]byte(`{"name":""}`)))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
