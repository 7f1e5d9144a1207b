package handler

import (
	"net/http"
)

// GetCurrencies godoc
// @Summary List supported currencies
// @Description Currency code to name map of everything accepted as base or quote
// @Tags Currencies
// @Produce json
// @Success 200 {object} map[string]string
// @Router /currencies [get]
func (h *Handler) GetCurrencies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.validator.Currencies())
}
