package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/pos-backend/internal/api/handlers"
	"github.com/baharkarakas/pos-backend/internal/api/views"
	"github.com/baharkarakas/pos-backend/internal/auth"
	"github.com/baharkarakas/pos-backend/internal/config"
	"github.com/baharkarakas/pos-backend/internal/metrics"
	"github.com/baharkarakas/pos-backend/internal/middleware"
	"github.com/baharkarakas/pos-backend/internal/models"
	"github.com/baharkarakas/pos-backend/internal/services"
)

type RouterDeps struct {
	Cfg        config.Config
	Log        *slog.Logger
	Tokens     *auth.TokenManager
	Workers    *services.WorkerService
	Financials *services.FinancialsService
	Catalog    *services.CatalogService
}

func NewRouter(d RouterDeps) http.Handler {
	view := views.Renderer{Currency: d.Cfg.CurrencyPrefix}
	authH := handlers.NewAuthHandler(d.Tokens, d.Workers)
	workerH := &handlers.WorkerHandler{Workers: d.Workers, Financials: d.Financials, View: view}
	catalogH := &handlers.CatalogHandler{Catalog: d.Catalog, View: view}
	authMW := middleware.NewAuthMiddleware(d.Tokens)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RequestLogger(d.Log), middleware.HTTPMetrics)
	if d.Cfg.RateRPS > 0 {
		r.Use(middleware.RateLimit(d.Cfg.RateRPS))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id", "Content-Disposition"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// ---------- auth ----------
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/refresh", authH.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(authMW.Auth)

			// ---------- admin ----------
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleAdmin))

				r.Post("/workers", workerH.Add)
				r.Get("/workers", workerH.List)
				r.Get("/workers/report.xlsx", workerH.Report)
				r.Patch("/workers/{id}/toggle", workerH.Toggle)
				r.Delete("/workers/{id}", workerH.Delete)
				r.Get("/workers/{id}/balance", workerH.Balance)

				r.Post("/products", catalogH.AddProduct)
				r.Get("/products", catalogH.ListProducts)
				r.Put("/products/{id}", catalogH.UpdateProduct)
				r.Delete("/products/{id}", catalogH.DeleteProduct)

				r.Post("/services", catalogH.AddService)
				r.Get("/services", catalogH.ListServices)
				r.Put("/services/{id}", catalogH.UpdateService)
				r.Delete("/services/{id}", catalogH.DeleteService)
			})

			// ---------- shop floor ----------
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleWorker, models.RoleAdmin))

				r.Get("/catalog/products", catalogH.ListProducts)
				r.Post("/catalog/products", catalogH.AddProduct)
				r.Get("/catalog/services", catalogH.ListServices)
				r.Post("/catalog/services", catalogH.AddService)
			})

			// ---------- worker ----------
			r.With(middleware.RequireRole(models.RoleWorker)).Get("/me/balance", workerH.MyBalance)
		})
	})

	return r
}
