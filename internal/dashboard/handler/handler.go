package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fxdash/internal/dashboard"
	"fxdash/internal/domain"
	"fxdash/internal/series"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Validator interface {
	ValidateQuery(q dashboard.Query) error
	Currencies() map[string]string
}

type Service interface {
	Dashboard(ctx context.Context, q dashboard.Query, selected []string) (dashboard.View, error)
	Chart(ctx context.Context, q dashboard.Query, selected []string) (series.ChartModel, error)
	Table(ctx context.Context, q dashboard.Query) ([]series.TableRow, error)
}

type PreferencesService interface {
	Get(ctx context.Context, profileID uuid.UUID) (domain.Preferences, error)
	Save(ctx context.Context, profileID uuid.UUID, prefs domain.Preferences) (domain.Preferences, error)
	Delete(ctx context.Context, profileID uuid.UUID) error
}

type Handler struct {
	validator Validator
	service   Service
	prefs     PreferencesService
	defaults  dashboard.Defaults
	now       func() time.Time
}

func NewHandler(service Service, validator Validator, prefs PreferencesService, defaults dashboard.Defaults) *Handler {
	return &Handler{
		validator: validator,
		service:   service,
		prefs:     prefs,
		defaults:  defaults,
		now:       time.Now,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// parseQuery reads and validates the rate query parameters; on failure it
// has already written the 400 response.
func (h *Handler) parseQuery(w http.ResponseWriter, r *http.Request) (dashboard.Query, bool) {
	q, err := dashboard.ParseQuery(r.URL.Query(), h.defaults, h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return dashboard.Query{}, false
	}
	if err = h.validator.ValidateQuery(q); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return dashboard.Query{}, false
	}
	return q, true
}

// writeFetchError maps a service failure to 502 when the upstream is at fault
// and to 500 otherwise.
func writeFetchError(w http.ResponseWriter, err error, handlerName string, q dashboard.Query) {
	fields := logrus.Fields{"handler": handlerName, "base": q.Base, "quotes": q.Quotes}
	if errors.Is(err, domain.ErrUpstreamUnavailable) {
		logrus.WithError(err).WithFields(fields).Warn("upstream request failed")
		writeError(w, http.StatusBadGateway, domain.ErrUpstreamUnavailable.Error())
		return
	}
	msg := "ups, couldn't build exchange rates this time"
	logrus.WithError(err).WithFields(fields).Error(msg)
	writeError(w, http.StatusInternalServerError, msg)
}
