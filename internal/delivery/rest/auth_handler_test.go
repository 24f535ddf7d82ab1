package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/memory"
	"github.com/Muneeb10/AK-Fashion/internal/usecase"
)

type silentMailer struct{}

func (silentMailer) Send(context.Context, string, string, string) error { return nil }

func newAuthRouter(t *testing.T) (chi.Router, *usecase.AuthUseCase) {
	t.Helper()

	log := logger.NewNop()
	auth := usecase.NewAuthUseCase(
		memory.NewAdminRepositoryMemory(),
		memory.NewUserRepositoryMemory(),
		silentMailer{},
		"test-secret",
		"https://admin.example.com/reset-password",
		log,
	)

	router := chi.NewRouter()
	handler := NewAuthHandler(auth, log)
	handler.RegisterAdminRoutes(router)
	handler.RegisterUserRoutes(router)

	return router, auth
}

func postJSON(t *testing.T, router chi.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_AdminSignupSignin(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := postJSON(t, router, "/auth/signup", `{"name":"Admin","email":"admin@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin registered successfully")

	rec = postJSON(t, router, "/auth/signup", `{"name":"Admin","email":"admin@example.com","password":"other"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin already exists")

	rec = postJSON(t, router, "/auth/signin", `{"email":"admin@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp["message"])
	assert.NotEmpty(t, resp["token"])

	rec = postJSON(t, router, "/auth/signin", `{"email":"admin@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

func TestAuthHandler_ForgotPassword_NonRevealing(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := postJSON(t, router, "/auth/forgot-password", `{"email":"nobody@example.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "If this email exists")

	rec = postJSON(t, router, "/auth/forgot-password", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_ResetPassword_InvalidToken(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := postJSON(t, router, "/auth/reset-password/deadbeef", `{"password":"newpass"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthHandler_UserRegisterLogin(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := postJSON(t, router, "/user-auth/register",
		`{"name":"Ali","email":"ali@example.com","phone":"0300-1234567","password":"pw12345"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var registered struct {
		Message string `json:"message"`
		User    struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.Equal(t, "User registered successfully", registered.Message)
	assert.NotEmpty(t, registered.User.ID)
	// The password hash never leaves the server.
	assert.NotContains(t, rec.Body.String(), "pw12345")
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	rec = postJSON(t, router, "/user-auth/login", `{"email":"ali@example.com","password":"pw12345"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var loggedIn map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loggedIn))
	assert.NotEmpty(t, loggedIn["token"])
}

func TestAdminAuthMiddleware(t *testing.T) {
	_, auth := newAuthRouter(t)

	assert.NoError(t, auth.AdminSignup(context.Background(), "Admin", "admin@example.com", "s3cret"))
	token, err := auth.AdminSignin(context.Background(), "admin@example.com", "s3cret")
	assert.NoError(t, err)

	router := chi.NewRouter()
	router.With(AdminAuth(auth)).Get("/admin", func(w http.ResponseWriter, r *http.Request) {
		claims := AdminFromContext(r.Context())
		writeJSON(w, http.StatusOK, map[string]string{"email": claims.Email})
	})

	// No token at all.
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no token")

	// Garbage bearer token.
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token failed")

	// Valid token via Authorization header.
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@example.com")

	// Valid token via the access_token cookie.
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)

	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	// The burst is consumed, then requests from that IP are rejected.
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1234"))

	// A different IP has its own bucket.
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1234"))
}
