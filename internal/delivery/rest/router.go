package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
	"github.com/Muneeb10/AK-Fashion/internal/usecase"
)

// Auth endpoints get a strict per-IP budget; everything else rides on the
// framework defaults.
const (
	authRateLimit = rate.Limit(2)
	authRateBurst = 5
)

type RouterDeps struct {
	Logger         *logger.Logger
	Orders         *usecase.OrderUseCase
	Catalog        *usecase.CatalogUseCase
	Auth           *usecase.AuthUseCase
	Contact        *usecase.ContactUseCase
	UploadDir      string
	AllowedOrigins []string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(RequestLogger(deps.Logger))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("App is running"))
	})

	orderHandler := NewOrderHandler(deps.Orders, deps.Logger)
	customerHandler := NewCustomerHandler(deps.Orders, deps.Logger)
	productHandler := NewProductHandler(deps.Catalog, deps.Logger)
	categoryHandler := NewCategoryHandler(deps.Catalog, deps.Logger)
	authHandler := NewAuthHandler(deps.Auth, deps.Logger)
	contactHandler := NewContactHandler(deps.Contact, deps.Logger)

	authLimiter := NewIPRateLimiter(authRateLimit, authRateBurst)

	r.Route("/api", func(api chi.Router) {
		orderHandler.RegisterRoutes(api)
		customerHandler.RegisterRoutes(api)
		productHandler.RegisterRoutes(api)
		categoryHandler.RegisterRoutes(api)

		api.Group(func(auth chi.Router) {
			auth.Use(authLimiter.Middleware)
			authHandler.RegisterAdminRoutes(auth)
			authHandler.RegisterUserRoutes(auth)
		})

		api.With(AdminAuth(deps.Auth)).Get("/admin", func(w http.ResponseWriter, r *http.Request) {
			claims := AdminFromContext(r.Context())
			writeJSON(w, http.StatusOK, map[string]string{
				"message": "Welcome Admin " + claims.Email,
			})
		})

		api.Post("/send-email", contactHandler.Send)
	})

	// Uploaded blobs are served as static content under /uploads.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	return r
}
