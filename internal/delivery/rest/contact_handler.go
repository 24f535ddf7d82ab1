package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
	"github.com/Muneeb10/AK-Fashion/internal/usecase"
)

type ContactHandler struct {
	contact *usecase.ContactUseCase
	logger  *logger.Logger
}

func NewContactHandler(contact *usecase.ContactUseCase, logger *logger.Logger) *ContactHandler {
	return &ContactHandler{contact: contact, logger: logger}
}

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var payload contactPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	err := h.contact.SendContactMessage(r.Context(), payload.Name, payload.Email, payload.Phone, payload.Message)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingContactFields) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Please fill all required fields."})
			return
		}
		h.logger.Error("Contact mail failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Error sending email."})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Email sent successfully!"})
}
