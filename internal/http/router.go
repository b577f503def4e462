package http

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/redmonkez12/bookmarks-api/internal/auth"
	"github.com/redmonkez12/bookmarks-api/internal/bookmark"
	"github.com/redmonkez12/bookmarks-api/internal/config"
	"github.com/redmonkez12/bookmarks-api/internal/httputil"
	"github.com/redmonkez12/bookmarks-api/internal/logging"
	"github.com/redmonkez12/bookmarks-api/internal/user"
)

// Handlers groups the endpoint handlers wired into the router
type Handlers struct {
	Auth     *auth.Handler
	User     *user.Handler
	Bookmark *bookmark.Handler
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, handlers Handlers, guard *auth.Middleware, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	// Global middleware
	r.Use(SecurityHeaders)               // Security headers on all responses
	r.Use(middleware.Recoverer)          // Recover from panics
	r.Use(middleware.RequestID)          // Add request ID
	r.Use(middleware.RealIP)             // Set RemoteAddr to real IP
	r.Use(logging.RequestLogger(logger)) // Structured logging with request context
	r.Use(middleware.Compress(5))        // Compress responses

	// Public routes
	r.Get("/health", handleHealth)

	// Swagger UI - only in development
	// Production builds will not have this route at all
	if cfg.Server.IsDevelopment() {
		log.Println("Swagger UI enabled at /swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	// Auth routes (public, they establish identity)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.Auth.Register)
		r.Post("/login", handlers.Auth.Login)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAuth)

		r.Route("/user", func(r chi.Router) {
			r.Get("/profile", handlers.User.GetProfile)
			r.Patch("/profile", handlers.User.UpdateProfile)
		})

		r.Route("/bookmark", func(r chi.Router) {
			r.Get("/", handlers.Bookmark.List)
			r.Post("/", handlers.Bookmark.Add)
			r.Get("/{id}", handlers.Bookmark.Get)
			r.Patch("/{id}", handlers.Bookmark.Update)
			r.Delete("/{id}", handlers.Bookmark.Delete)
		})
	})

	return r
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}
