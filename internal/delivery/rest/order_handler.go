package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Muneeb10/AK-Fashion/internal/domain/entities"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
	"github.com/Muneeb10/AK-Fashion/internal/usecase"
)

const maxOrderFormSize = 32 << 20

type OrderHandler struct {
	orders *usecase.OrderUseCase
	logger *logger.Logger
}

func NewOrderHandler(orders *usecase.OrderUseCase, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, logger: logger}
}

func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Get("/{id}", h.get)
		r.Patch("/{id}", h.updateStatus)
		r.Delete("/{id}", h.delete)
		r.Get("/user/{userId}", h.listByUser)
	})
}

// itemPayload mirrors the storefront cart line. The price field is parsed
// for compatibility but never trusted; pricing is re-derived from the
// catalog server-side.
type itemPayload struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxOrderFormSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	userID := r.FormValue("userId")
	itemsRaw := r.FormValue("items")
	paymentMethod := r.FormValue("paymentMethod")

	if userID == "" || itemsRaw == "" || paymentMethod == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: userId, items, paymentMethod")
		return
	}

	var payload []itemPayload
	if err := json.Unmarshal([]byte(itemsRaw), &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid items format. Expected JSON array.")
		return
	}

	items := make([]usecase.CartItem, len(payload))
	for i, p := range payload {
		items[i] = usecase.CartItem{ProductID: p.ProductID, Quantity: p.Quantity}
	}

	input := usecase.CreateOrderInput{
		UserID: userID,
		Items:  items,
		ShippingAddress: entities.ShippingAddress{
			Street:     r.FormValue("shippingAddress[street]"),
			City:       r.FormValue("shippingAddress[city]"),
			State:      r.FormValue("shippingAddress[state]"),
			PostalCode: r.FormValue("shippingAddress[postalCode]"),
			Country:    r.FormValue("shippingAddress[country]"),
		},
		PaymentMethod: paymentMethod,
	}

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["files"] {
			file, err := header.Open()
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid uploaded file")
				return
			}
			defer file.Close()
			input.ProofFiles = append(input.ProofFiles, usecase.FileUpload{
				Filename: header.Filename,
				Content:  file,
			})
		}
	}

	order, err := h.orders.CreateOrder(r.Context(), input)
	if err != nil {
		h.logger.Error("Create order failed", "error", err)
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Order created successfully",
		"order":   order,
	})
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("List orders failed", "error", err)
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(orders),
		"orders":  orders,
	})
}

func (h *OrderHandler) get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}

func (h *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OrderStatus string `json:"orderStatus"`
		Status      string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Either key is accepted; the admin panel has sent both over time.
	newStatus := body.OrderStatus
	if newStatus == "" {
		newStatus = body.Status
	}

	order, err := h.orders.UpdateOrderStatus(r.Context(), chi.URLParam(r, "id"), strings.ToLower(newStatus))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Order status updated",
		"order":   order,
	})
}

func (h *OrderHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Order deleted successfully",
	})
}

func (h *OrderHandler) listByUser(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrdersByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(orders),
		"orders":  orders,
	})
}
