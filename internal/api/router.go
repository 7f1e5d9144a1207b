package api

import (
	_ "fxdash/docs"
	"fxdash/internal/dashboard/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(h *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/rates", h.GetRates)
		r.Get("/rates/chart", h.GetChart)
		r.Get("/rates/table", h.GetTable)
		r.Get("/rates/table.csv", h.ExportTableCSV)
		r.Get("/rates/table.pdf", h.ExportTablePDF)
		r.Get("/currencies", h.GetCurrencies)

		r.Get("/preferences/{id}", h.GetPreferences)
		r.Put("/preferences/{id}", h.PutPreferences)
		r.Delete("/preferences/{id}", h.DeletePreferences)
	})
	return router
}
