package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
	"github.com/Muneeb10/AK-Fashion/internal/usecase"
)

// CustomerHandler serves the admin "Customers" projection. The list and
// detail endpoints return bare JSON bodies (no success envelope); the
// admin table consumes them directly.
type CustomerHandler struct {
	orders *usecase.OrderUseCase
	logger *logger.Logger
}

func NewCustomerHandler(orders *usecase.OrderUseCase, logger *logger.Logger) *CustomerHandler {
	return &CustomerHandler{orders: orders, logger: logger}
}

func (h *CustomerHandler) RegisterRoutes(r chi.Router) {
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/{orderId}", h.get)
	})
}

func (h *CustomerHandler) list(w http.ResponseWriter, r *http.Request) {
	customers, err := h.orders.ListCustomers(r.Context())
	if err != nil {
		h.logger.Error("List customers failed", "error", err)
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.orders.GetCustomer(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}
