package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Muneeb10/AK-Fashion/internal/domain/repositories"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
	"github.com/Muneeb10/AK-Fashion/internal/usecase"
)

// AuthHandler covers both back-office and storefront authentication.
// Responses use the bare {message, ...} shape the admin and storefront
// clients expect from these endpoints.
type AuthHandler struct {
	auth   *usecase.AuthUseCase
	logger *logger.Logger
}

func NewAuthHandler(auth *usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

func (h *AuthHandler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.adminSignup)
		r.Post("/signin", h.adminSignin)
		r.Post("/forgot-password", h.forgotPassword)
		r.Post("/reset-password/{token}", h.resetPassword)
	})
}

func (h *AuthHandler) RegisterUserRoutes(r chi.Router) {
	r.Route("/user-auth", func(r chi.Router) {
		r.Post("/register", h.registerUser)
		r.Post("/login", h.loginUser)
	})
}

type credentialsPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *AuthHandler) adminSignup(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	err := h.auth.AdminSignup(r.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrEmailTaken):
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Admin already exists"})
		case errors.Is(err, usecase.ErrMissingCredentials):
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Name, email and password are required"})
		default:
			h.logger.Error("Admin signup failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Admin registered successfully"})
}

func (h *AuthHandler) adminSignin(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	token, err := h.auth.AdminSignin(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid email or password"})
			return
		}
		h.logger.Error("Admin signin failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}

func (h *AuthHandler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	if payload.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Email is required"})
		return
	}

	if err := h.auth.ForgotPassword(r.Context(), payload.Email); err != nil {
		h.logger.Error("Forgot password failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
		return
	}

	// Same response whether or not the email exists.
	writeJSON(w, http.StatusOK, map[string]string{"message": "If this email exists, a reset link has been sent"})
}

func (h *AuthHandler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	err := h.auth.ResetPassword(r.Context(), chi.URLParam(r, "token"), payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidResetToken) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid or expired token"})
			return
		}
		h.logger.Error("Reset password failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Password reset successful"})
}

func (h *AuthHandler) registerUser(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	user, err := h.auth.RegisterUser(r.Context(), payload.Name, payload.Email, payload.Phone, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrEmailTaken):
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "User already exists"})
		case errors.Is(err, usecase.ErrMissingCredentials):
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Name, email and password are required"})
		default:
			h.logger.Error("User registration failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    user,
	})
}

func (h *AuthHandler) loginUser(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	token, user, err := h.auth.LoginUser(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid email or password"})
			return
		}
		h.logger.Error("User login failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}
