package api

import (
	_ "fxwidget/docs"
	favoritehandler "fxwidget/internal/favorite/handler"
	ratehandler "fxwidget/internal/rate/handler"
	sessionhandler "fxwidget/internal/widget/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(
	rateHandler *ratehandler.Handler,
	favoriteHandler *favoritehandler.Handler,
	sessionHandler *sessionhandler.Handler,
) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/currencies", rateHandler.GetCurrencies)
		r.Get("/convert", rateHandler.Convert)
		r.Get("/history/{base:[A-Za-z]{3}}/{target:[A-Za-z]{3}}", rateHandler.GetHistory)

		r.Get("/favorites", favoriteHandler.ListFavorites)
		r.Post("/favorites", favoriteHandler.AddFavorite)

		r.Post("/sessions", sessionHandler.CreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Patch("/", sessionHandler.UpdateSession)
			r.Post("/historical", sessionHandler.RequestHistorical)
			r.Post("/favorites", sessionHandler.SaveFavorite)
			r.Post("/favorites/{pair}/activate", sessionHandler.ActivateFavorite)
		})
	})
	return router
}
