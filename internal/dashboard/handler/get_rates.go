package handler

import (
	"fxdash/internal/dashboard"
	"net/http"
)

// GetRates godoc
// @Summary Dashboard view
// @Description Chart model, grid rows and header statistics for one base and its quotes
// @Tags Rates
// @Produce json
// @Param base query string false "Base currency" default(EUR)
// @Param symbols query string false "Comma separated quote currencies" default(USD,CAD)
// @Param range query string false "Date range" Enums(6m, 1y, 2y) default(1y)
// @Param start_date query string false "Start date (YYYY-MM-DD), overrides range"
// @Param end_date query string false "End date (YYYY-MM-DD), overrides range"
// @Param pairs query string false "Comma separated pair keys shown on the chart, e.g. EUR_USD,USD_EUR"
// @Success 200 {object} dashboard.View
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rates [get]
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	view, err := h.service.Dashboard(r.Context(), q, dashboard.ParsePairKeys(r.URL.Query().Get("pairs")))
	if err != nil {
		writeFetchError(w, err, "GetRates", q)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
