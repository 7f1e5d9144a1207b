package handler

import (
	"fxdash/internal/dashboard"
	"net/http"
)

// GetChart godoc
// @Summary Chart model
// @Description Forward and inverse line series, one label per observation date
// @Tags Rates
// @Produce json
// @Param base query string false "Base currency" default(EUR)
// @Param symbols query string false "Comma separated quote currencies" default(USD,CAD)
// @Param range query string false "Date range" Enums(6m, 1y, 2y) default(1y)
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param pairs query string false "Comma separated pair keys to keep"
// @Success 200 {object} series.ChartModel
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /rates/chart [get]
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	model, err := h.service.Chart(r.Context(), q, dashboard.ParsePairKeys(r.URL.Query().Get("pairs")))
	if err != nil {
		writeFetchError(w, err, "GetChart", q)
		return
	}
	writeJSON(w, http.StatusOK, model)
}
