package rest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
	"github.com/Muneeb10/AK-Fashion/internal/usecase"
)

type ProductHandler struct {
	catalog *usecase.CatalogUseCase
	logger  *logger.Logger
}

func NewProductHandler(catalog *usecase.CatalogUseCase, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, logger: logger}
}

func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/{id}", h.get)
		r.Post("/", h.create)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		h.logger.Error("List products failed", "error", err)
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxOrderFormSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	input := usecase.CreateProductInput{
		Name:        r.FormValue("name"),
		Sku:         r.FormValue("sku"),
		CategoryID:  r.FormValue("category"),
		Description: r.FormValue("description"),
		Colors:      parseArrayField(r.FormValue("colors")),
		Sizes:       parseArrayField(r.FormValue("sizes")),
	}
	input.Stock, _ = strconv.Atoi(r.FormValue("stock"))
	input.Rating, _ = strconv.ParseFloat(r.FormValue("rating"), 64)
	input.CurrentPrice, _ = strconv.ParseFloat(r.FormValue("currentPrice"), 64)
	input.OriginalPrice, _ = strconv.ParseFloat(r.FormValue("originalPrice"), 64)

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			file, err := header.Open()
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid uploaded image")
				return
			}
			defer file.Close()
			input.Images = append(input.Images, usecase.FileUpload{
				Filename: header.Filename,
				Content:  file,
			})
		}
	}

	product, err := h.catalog.CreateProduct(r.Context(), input)
	if err != nil {
		h.logger.Error("Create product failed", "error", err)
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxOrderFormSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	values := url.Values{}
	if r.MultipartForm != nil {
		values = url.Values(r.MultipartForm.Value)
	}

	var input usecase.UpdateProductInput
	if v, ok := formValue(values, "name"); ok {
		input.Name = &v
	}
	if v, ok := formValue(values, "stock"); ok {
		if stock, err := strconv.Atoi(v); err == nil {
			input.Stock = &stock
		}
	}
	if v, ok := formValue(values, "category"); ok {
		input.CategoryID = &v
	}
	if v, ok := formValue(values, "rating"); ok {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			input.Rating = &rating
		}
	}
	if v, ok := formValue(values, "currentPrice"); ok {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			input.CurrentPrice = &price
		}
	}
	if v, ok := formValue(values, "originalPrice"); ok {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			input.OriginalPrice = &price
		}
	}
	if v, ok := formValue(values, "description"); ok {
		input.Description = &v
	}
	if v, ok := formValue(values, "colors"); ok {
		input.Colors = parseArrayField(v)
	}
	if v, ok := formValue(values, "sizes"); ok {
		input.Sizes = parseArrayField(v)
	}
	input.RemoveImages = values["removeImages"]

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			file, err := header.Open()
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid uploaded image")
				return
			}
			defer file.Close()
			input.NewImages = append(input.NewImages, usecase.FileUpload{
				Filename: header.Filename,
				Content:  file,
			})
		}
	}

	product, err := h.catalog.UpdateProduct(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Product deleted successfully",
		"data":    map[string]string{"id": id},
	})
}

func parseProductFilter(query url.Values) (*usecase.ProductFilter, error) {
	filter := &usecase.ProductFilter{
		CategoryID:   query.Get("categoryId"),
		CategoryName: query.Get("category"),
		Name:         query.Get("name"),
		Color:        query.Get("color"),
		Size:         query.Get("size"),
	}

	var err error
	if filter.MinStock, err = intParam(query, "minStock"); err != nil {
		return nil, err
	}
	if filter.MaxStock, err = intParam(query, "maxStock"); err != nil {
		return nil, err
	}
	if filter.MinPrice, err = floatParam(query, "minPrice"); err != nil {
		return nil, err
	}
	if filter.MaxPrice, err = floatParam(query, "maxPrice"); err != nil {
		return nil, err
	}
	if filter.CreatedFrom, err = dateParam(query, "from"); err != nil {
		return nil, err
	}
	if filter.CreatedTo, err = dateParam(query, "to"); err != nil {
		return nil, err
	}

	return filter, nil
}

func intParam(query url.Values, key string) (*int, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &paramError{key}
	}
	return &v, nil
}

func floatParam(query url.Values, key string) (*float64, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &paramError{key}
	}
	return &v, nil
}

func dateParam(query url.Values, key string) (*time.Time, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, &paramError{key}
	}
	return &v, nil
}

type paramError struct {
	key string
}

func (e *paramError) Error() string {
	return "invalid query parameter: " + e.key
}

func formValue(values url.Values, key string) (string, bool) {
	if vs, ok := values[key]; ok && len(vs) > 0 {
		return vs[0], true
	}
	return "", false
}

// parseArrayField accepts a JSON array, a comma-separated list, or a
// single value, matching what the admin form has sent over time.
func parseArrayField(raw string) []string {
	if raw == "" {
		return nil
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		return parsed
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
