package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"webcalc/internal/calculator"
	"webcalc/internal/config"
	"webcalc/internal/models"
	"webcalc/internal/web"
)

// SetupRouter настраивает маршруты API и страницы калькулятора
func SetupRouter(cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		SendErrorResponse(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		SendErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/health", HealthHandler)

	h := NewCalculatorHandler()
	r.Post("/calculate", h.Calculate)
	for _, op := range calculator.Operations() {
		r.Post("/"+string(op), h.Operation(op))
	}

	// Страница и статика
	page := web.NewRouter()
	r.Handle("/", page)
	r.Handle("/static/*", page)

	return r
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}
