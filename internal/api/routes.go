package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	canonhttp "github.com/nhalm/canonlog/http"
	chikitvalidate "github.com/nhalm/chikit/validate"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/yourorg/products-api/docs" // Generated Swagger docs
)

type RouteConfig struct {
	MaxBodyBytes  int64
	AllowedOrigin string
}

func DefaultRouteConfig() RouteConfig {
	return RouteConfig{
		MaxBodyBytes:  1048576,
		AllowedOrigin: "http://localhost:5173",
	}
}

func (h *Handler) Routes() http.Handler {
	return h.RoutesWithConfig(DefaultRouteConfig())
}

func (h *Handler) RoutesWithConfig(config RouteConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(assignRequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(canonhttp.ChiMiddleware(nil))
	r.Use(chikitvalidate.MaxBodySize(config.MaxBodyBytes))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(rejectForeignOrigin(config.AllowedOrigin))

	if config.AllowedOrigin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{config.AllowedOrigin},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader},
			MaxAge:         300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.With(ValidateInput(createProductRules)).Post("/", h.CreateProduct)
		r.With(ValidateInput(productIDRules)).Get("/{id}", h.GetProduct)
		r.With(ValidateInput(updateProductRules)).Put("/{id}", h.UpdateProduct)
		r.With(ValidateInput(productIDRules)).Patch("/{id}", h.UpdateAvailability)
		r.With(ValidateInput(productIDRules)).Delete("/{id}", h.DeleteProduct)
	})

	return r
}

// ParseAllowedOrigin normalizes the configured front-end origin. A trailing
// slash would never match a browser Origin header.
func ParseAllowedOrigin(origin string) string {
	return strings.TrimRight(strings.TrimSpace(origin), "/")
}
