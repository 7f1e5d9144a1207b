package handler

import (
	"encoding/json"
	"errors"
	"fxdash/internal/domain"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxPreferencesBody = 64 << 10

func profileID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile ID format")
		return uuid.Nil, false
	}
	return id, true
}

// GetPreferences godoc
// @Summary Get dashboard preferences
// @Description Stored preferences of a profile, defaults when nothing valid is stored
// @Tags Preferences
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} domain.Preferences
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /preferences/{id} [get]
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	prefs, err := h.prefs.Get(r.Context(), id)
	if err != nil {
		msg := "ups, couldn't load preferences this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetPreferences", "profile_id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// PutPreferences godoc
// @Summary Save dashboard preferences
// @Description Replaces the stored preferences; grid column sizing is not kept
// @Tags Preferences
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param preferences body domain.Preferences true "Preferences"
// @Success 200 {object} domain.Preferences
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /preferences/{id} [put]
func (h *Handler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPreferencesBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req domain.Preferences
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.DateRange = strings.ToLower(strings.TrimSpace(req.DateRange))

	saved, err := h.prefs.Save(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPreferences) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		msg := "failed to save preferences"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "PutPreferences", "profile_id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// DeletePreferences godoc
// @Summary Reset dashboard preferences
// @Tags Preferences
// @Param id path string true "Profile ID"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /preferences/{id} [delete]
func (h *Handler) DeletePreferences(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	if err := h.prefs.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPreferencesNotFound) {
			writeError(w, http.StatusNotFound, "preferences not found")
			return
		}
		msg := "failed to delete preferences"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeletePreferences", "profile_id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
