package server

import (
	"time"

	"github.com/Lutefd/estate-site/internal/commons"
	"github.com/Lutefd/estate-site/internal/handler"
	api_middleware "github.com/Lutefd/estate-site/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (s *Server) registerRoutes() {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	authMiddleware := api_middleware.NewAuthMiddleware(s.config.AdminAPIKey)
	adminLimit := api_middleware.NewRateLimitMiddleware(commons.AdminRPS, commons.AdminBurst)
	currencyHandler := handler.NewCurrencyHandler(s.rates, s.properties)
	propertyHandler := handler.NewPropertyHandler(s.properties, s.rates)

	router.Get("/healthz", handler.HandlerReadiness)
	router.Route("/api", func(r chi.Router) {
		r.Use(httprate.LimitByIP(commons.APIRequestsPerMinute, time.Minute))

		r.Route("/currency", func(r chi.Router) {
			r.Get("/rates", currencyHandler.GetRates)
			r.Get("/convert", currencyHandler.ConvertCurrency)
		})
		r.Route("/media", func(r chi.Router) {
			r.Get("/normalize", handler.HandlerNormalizeMedia)
			r.Get("/parse", handler.HandlerParseMedia)
		})
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", propertyHandler.ListProperties)
			r.Get("/{id}", propertyHandler.GetProperty)
		})
		r.Route("/admin", func(r chi.Router) {
			r.Use(adminLimit, authMiddleware.Authenticate)
			r.Post("/rates/refresh", currencyHandler.RefreshRates)
		})
	})
	s.router = router
}
