package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Muneeb10/AK-Fashion/internal/domain/repositories"
	"github.com/Muneeb10/AK-Fashion/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// writeUsecaseError maps domain and usecase errors onto the HTTP taxonomy:
// validation 400, missing references 404, order-id collision 409,
// everything else a generic 500 that leaks nothing.
func writeUsecaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrEmptyItems),
		errors.Is(err, usecase.ErrInvalidItem),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrMissingAddressField),
		errors.Is(err, usecase.ErrMissingProductFields),
		errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrMissingCategoryName),
		errors.Is(err, usecase.ErrMissingContactFields):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, repositories.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, repositories.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, repositories.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, repositories.ErrCategoryNotFound):
		writeError(w, http.StatusNotFound, "Category not found")

	case errors.Is(err, repositories.ErrOrderIDTaken):
		writeError(w, http.StatusConflict, "Order id conflict, please retry")

	default:
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}
